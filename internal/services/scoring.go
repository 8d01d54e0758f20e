package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"exam-platform-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScoringService struct {
	db              *gorm.DB
	enforceDeadline bool
	grace           time.Duration
}

func NewScoringService(db *gorm.DB, enforceDeadline bool, grace time.Duration) *ScoringService {
	return &ScoringService{db: db, enforceDeadline: enforceDeadline, grace: grace}
}

type SubmittedAnswer struct {
	QuestionID     uint `json:"question_id"`
	SelectedAnswer int  `json:"selected_answer"`
}

type ResultSummary struct {
	ResultID       string `json:"result_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	TimeSpent      int    `json:"time_spent"`
}

type GradedQuestionView struct {
	QuestionID     uint     `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedAnswer int      `json:"selected_answer"`
	CorrectAnswer  int      `json:"correct_answer"`
	IsCorrect      bool     `json:"is_correct"`
}

type ResultDetail struct {
	ID             string               `json:"id"`
	UserID         uint                 `json:"user_id"`
	Questions      []GradedQuestionView `json:"questions"`
	Score          int                  `json:"score"`
	TotalQuestions int                  `json:"total_questions"`
	Percentage     int                  `json:"percentage"`
	TimeSpent      int                  `json:"time_spent"`
	CompletedAt    time.Time            `json:"completed_at"`
}

// Grade scores a submission against the authoritative answer key and
// persists the result. Answers for unknown questions are skipped
// entirely: they contribute to neither score nor total. With a valid
// attempt token the operation is idempotent; a reused token returns the
// already-stored result.
func (s *ScoringService) Grade(userID uint, attemptToken string, answers []SubmittedAnswer, timeSpent int) (*ResultSummary, error) {
	var attempt *models.Attempt
	if attemptToken != "" {
		var a models.Attempt
		err := s.db.Where("token = ? AND user_id = ?", attemptToken, userID).First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidInput
		}
		if err != nil {
			return nil, fmt.Errorf("loading attempt: %w", err)
		}
		if a.ResultID != nil {
			return s.summaryByID(*a.ResultID)
		}
		if s.enforceDeadline {
			deadline := a.IssuedAt.Add(time.Duration(a.TimeLimit)*time.Second + s.grace)
			if time.Now().After(deadline) {
				return nil, ErrDeadlineExceeded
			}
		}
		attempt = &a
	}

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}

	questions := map[uint]models.Question{}
	if len(ids) > 0 {
		var rows []models.Question
		if err := s.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("loading answer key: %w", err)
		}
		for _, q := range rows {
			questions[q.ID] = q
		}
	}

	graded, score := gradeAnswers(answers, questions)

	result := models.Result{
		ID:             uuid.NewString(),
		UserID:         userID,
		Questions:      graded,
		Score:          score,
		TotalQuestions: len(graded),
		Percentage:     percentage(score, len(graded)),
		TimeSpent:      timeSpent,
		CompletedAt:    time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		if attempt != nil {
			now := time.Now()
			updates := map[string]interface{}{"used_at": now, "result_id": result.ID}
			res := tx.Model(&models.Attempt{}).
				Where("token = ? AND result_id IS NULL", attempt.Token).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			// Lost the race against a concurrent submit with the same
			// token: roll back, the winner's result stands.
			if res.RowsAffected == 0 {
				return errAttemptUsed
			}
		}
		return nil
	})
	if errors.Is(err, errAttemptUsed) {
		var a models.Attempt
		if err := s.db.Where("token = ?", attempt.Token).First(&a).Error; err == nil && a.ResultID != nil {
			return s.summaryByID(*a.ResultID)
		}
		return nil, ErrInvalidInput
	}
	if err != nil {
		return nil, fmt.Errorf("storing result: %w", err)
	}

	return &ResultSummary{
		ResultID:       result.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		TimeSpent:      result.TimeSpent,
	}, nil
}

var errAttemptUsed = errors.New("attempt token already used")

// Retrieve returns the full graded breakdown, correct answers included,
// but only to the owner. A result belonging to someone else looks
// exactly like a missing one.
func (s *ScoringService) Retrieve(resultID string, userID uint) (*ResultDetail, error) {
	var result models.Result
	err := s.db.Where("id = ? AND user_id = ?", resultID, userID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading result: %w", err)
	}

	ids := make([]uint, 0, len(result.Questions))
	for _, rq := range result.Questions {
		ids = append(ids, rq.QuestionID)
	}
	questions := map[uint]models.Question{}
	if len(ids) > 0 {
		var rows []models.Question
		err := s.db.Where("id IN ?", ids).
			Preload("Options", func(db *gorm.DB) *gorm.DB {
				return db.Order("order_num ASC")
			}).
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("loading questions: %w", err)
		}
		for _, q := range rows {
			questions[q.ID] = q
		}
	}

	detail := &ResultDetail{
		ID:             result.ID,
		UserID:         result.UserID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		TimeSpent:      result.TimeSpent,
		CompletedAt:    result.CompletedAt,
	}
	for _, rq := range result.Questions {
		view := GradedQuestionView{
			QuestionID:     rq.QuestionID,
			SelectedAnswer: rq.SelectedAnswer,
			IsCorrect:      rq.IsCorrect,
		}
		if q, ok := questions[rq.QuestionID]; ok {
			view.Question = q.Text
			view.Options = q.OptionTexts()
			view.CorrectAnswer = q.CorrectIndex
		}
		detail.Questions = append(detail.Questions, view)
	}
	return detail, nil
}

// ListForUser returns result summaries newest first. Per-question
// detail is omitted to keep the history payload small.
func (s *ScoringService) ListForUser(userID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}
	return results, nil
}

func (s *ScoringService) summaryByID(resultID string) (*ResultSummary, error) {
	var result models.Result
	if err := s.db.First(&result, "id = ?", resultID).Error; err != nil {
		return nil, fmt.Errorf("loading result: %w", err)
	}
	return &ResultSummary{
		ResultID:       result.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		TimeSpent:      result.TimeSpent,
	}, nil
}

// gradeAnswers compares submitted answers against the answer key.
// Answers without a matching question are dropped. An out-of-range
// selected index is simply incorrect.
func gradeAnswers(answers []SubmittedAnswer, questions map[uint]models.Question) ([]models.ResultQuestion, int) {
	var graded []models.ResultQuestion
	score := 0
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			continue
		}
		isCorrect := a.SelectedAnswer == q.CorrectIndex
		if isCorrect {
			score++
		}
		graded = append(graded, models.ResultQuestion{
			QuestionID:     a.QuestionID,
			OrderNum:       len(graded),
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}
	return graded, score
}

// percentage is round(100*score/total), defined as 0 for an empty
// submission.
func percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
