package services

import (
	"errors"
	"testing"
	"time"

	"exam-platform-backend/internal/models"

	"github.com/google/uuid"
)

func TestRetrieveOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	bank := seedBank(t, db, 3)
	scoring := NewScoringService(db, false, 0)

	answers := []SubmittedAnswer{
		{QuestionID: bank[0].ID, SelectedAnswer: bank[0].CorrectIndex},
		{QuestionID: bank[1].ID, SelectedAnswer: 3},
	}
	summary, err := scoring.Grade(1, "", answers, 120)
	if err != nil {
		t.Fatal(err)
	}

	detail, err := scoring.Retrieve(summary.ResultID, 1)
	if err != nil {
		t.Fatalf("owner retrieve failed: %v", err)
	}
	if detail.Score != 1 || detail.TotalQuestions != 2 || detail.Percentage != 50 {
		t.Errorf("detail = %d/%d (%d%%), want 1/2 (50%%)", detail.Score, detail.TotalQuestions, detail.Percentage)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("detail has %d questions, want 2", len(detail.Questions))
	}
	first := detail.Questions[0]
	if first.Question != bank[0].Text || len(first.Options) != 4 {
		t.Errorf("detail question not enriched: %+v", first)
	}
	if first.CorrectAnswer != bank[0].CorrectIndex || !first.IsCorrect {
		t.Errorf("correct answer not revealed to owner: %+v", first)
	}

	_, missingErr := scoring.Retrieve(uuid.NewString(), 1)
	if !errors.Is(missingErr, ErrNotFound) {
		t.Fatalf("missing id: got %v, want ErrNotFound", missingErr)
	}

	_, otherErr := scoring.Retrieve(summary.ResultID, 2)
	if !errors.Is(otherErr, ErrNotFound) {
		t.Fatalf("other user's id: got %v, want ErrNotFound", otherErr)
	}

	// A result owned by someone else must be indistinguishable from a
	// missing one.
	if missingErr.Error() != otherErr.Error() {
		t.Errorf("errors distinguishable: %q vs %q", missingErr, otherErr)
	}
}

func TestGradeAttemptTokenIdempotent(t *testing.T) {
	db := newTestDB(t)
	bank := seedBank(t, db, 3)
	scoring := NewScoringService(db, false, 0)

	attempt := models.Attempt{
		Token:     uuid.NewString(),
		UserID:    1,
		TimeLimit: 1800,
		IssuedAt:  time.Now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatal(err)
	}

	answers := []SubmittedAnswer{
		{QuestionID: bank[0].ID, SelectedAnswer: bank[0].CorrectIndex},
	}
	first, err := scoring.Grade(1, attempt.Token, answers, 100)
	if err != nil {
		t.Fatal(err)
	}

	// Retry with the same token: the stored result comes back, even
	// though the answers differ.
	retry, err := scoring.Grade(1, attempt.Token, nil, 900)
	if err != nil {
		t.Fatalf("retried submit failed: %v", err)
	}
	if retry.ResultID != first.ResultID {
		t.Errorf("retry created result %s, want stored %s", retry.ResultID, first.ResultID)
	}
	if retry.Score != first.Score || retry.TimeSpent != first.TimeSpent {
		t.Errorf("retry summary %+v differs from stored %+v", retry, first)
	}

	var count int64
	if err := db.Model(&models.Result{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("%d results stored, want 1", count)
	}
}

func TestGradeRejectsForeignOrUnknownToken(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, 1)
	scoring := NewScoringService(db, false, 0)

	attempt := models.Attempt{
		Token:     uuid.NewString(),
		UserID:    1,
		TimeLimit: 1800,
		IssuedAt:  time.Now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := scoring.Grade(1, uuid.NewString(), nil, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown token: got %v, want ErrInvalidInput", err)
	}
	if _, err := scoring.Grade(2, attempt.Token, nil, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("another user's token: got %v, want ErrInvalidInput", err)
	}
}

func TestGradeDeadlineEnforcement(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, 1)

	expired := models.Attempt{
		Token:     uuid.NewString(),
		UserID:    1,
		TimeLimit: 600,
		IssuedAt:  time.Now().Add(-20 * time.Minute),
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatal(err)
	}

	enforcing := NewScoringService(db, true, 30*time.Second)
	if _, err := enforcing.Grade(1, expired.Token, nil, 1200); !errors.Is(err, ErrDeadlineExceeded) {
		t.Errorf("late submit with enforcement: got %v, want ErrDeadlineExceeded", err)
	}

	// Default configuration trusts the client's elapsed time.
	trusting := NewScoringService(db, false, 30*time.Second)
	if _, err := trusting.Grade(1, expired.Token, nil, 1200); err != nil {
		t.Errorf("late submit without enforcement failed: %v", err)
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	scoring := NewScoringService(db, false, 0)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		result := models.Result{
			ID:             uuid.NewString(),
			UserID:         1,
			Score:          i,
			TotalQuestions: 3,
			Percentage:     percentage(i, 3),
			TimeSpent:      60,
			CompletedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&result).Error; err != nil {
			t.Fatal(err)
		}
	}
	other := models.Result{
		ID: uuid.NewString(), UserID: 2, TotalQuestions: 3, CompletedAt: base,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}

	results, err := scoring.ListForUser(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("listed %d results, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].CompletedAt.After(results[i-1].CompletedAt) {
			t.Errorf("results not newest first at index %d", i)
		}
	}
	for _, r := range results {
		if r.UserID != 1 {
			t.Errorf("listed another user's result %s", r.ID)
		}
		if len(r.Questions) != 0 {
			t.Errorf("history leaked per-question detail for %s", r.ID)
		}
	}
}
