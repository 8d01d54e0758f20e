package services

import (
	"errors"
	"testing"

	"exam-platform-backend/internal/models"
)

func TestIssueExamEmptyBank(t *testing.T) {
	db := newTestDB(t)
	exam := NewExamService(db, 10, 1800)

	if _, err := exam.IssueExam(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty bank: got %v, want ErrNotFound", err)
	}
}

func TestIssueExamStampsAttempt(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, 4)
	exam := NewExamService(db, 10, 1800)

	paper, err := exam.IssueExam(7)
	if err != nil {
		t.Fatal(err)
	}

	// A bank smaller than the configured count is a valid outcome.
	if paper.TotalQuestions != 4 || len(paper.Questions) != 4 {
		t.Errorf("issued %d questions from a bank of 4, want 4", len(paper.Questions))
	}
	if paper.TimeLimit != 1800 {
		t.Errorf("time limit = %d, want 1800", paper.TimeLimit)
	}
	for _, q := range paper.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
	}

	var attempt models.Attempt
	if err := db.First(&attempt, "token = ?", paper.AttemptToken).Error; err != nil {
		t.Fatalf("attempt not stamped: %v", err)
	}
	if attempt.UserID != 7 || attempt.TimeLimit != 1800 {
		t.Errorf("attempt = %+v", attempt)
	}
	if attempt.IssuedAt.IsZero() || attempt.UsedAt != nil || attempt.ResultID != nil {
		t.Errorf("fresh attempt not pristine: %+v", attempt)
	}

	second, err := exam.IssueExam(7)
	if err != nil {
		t.Fatal(err)
	}
	if second.AttemptToken == paper.AttemptToken {
		t.Error("two issues share an attempt token")
	}
}
