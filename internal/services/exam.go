package services

import (
	"fmt"
	"math/rand"
	"time"

	"exam-platform-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamService struct {
	db            *gorm.DB
	questionCount int
	timeLimit     int
}

func NewExamService(db *gorm.DB, questionCount, timeLimitSeconds int) *ExamService {
	return &ExamService{db: db, questionCount: questionCount, timeLimit: timeLimitSeconds}
}

// ExamQuestion is the exam-taking view of a question. It carries no
// answer key.
type ExamQuestion struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

type ExamPaper struct {
	Questions      []ExamQuestion `json:"questions"`
	TotalQuestions int            `json:"total_questions"`
	TimeLimit      int            `json:"time_limit"`
	AttemptToken   string         `json:"attempt_token"`
}

// IssueExam draws a randomized question set from the bank and stamps an
// attempt for the user. An empty bank is ErrNotFound; a bank smaller
// than the configured count returns everything available.
func (s *ExamService) IssueExam(userID uint) (*ExamPaper, error) {
	var bank []models.Question
	err := s.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Find(&bank).Error
	if err != nil {
		return nil, fmt.Errorf("loading question bank: %w", err)
	}
	if len(bank) == 0 {
		return nil, ErrNotFound
	}

	selected := sampleQuestionSet(bank, s.questionCount, nil)

	attempt := models.Attempt{
		Token:     uuid.NewString(),
		UserID:    userID,
		TimeLimit: s.timeLimit,
		IssuedAt:  time.Now(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	paper := &ExamPaper{
		Questions:      selected,
		TotalQuestions: len(selected),
		TimeLimit:      s.timeLimit,
		AttemptToken:   attempt.Token,
	}
	return paper, nil
}

// BankSize reports the number of questions currently seeded.
func (s *ExamService) BankSize() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return count, nil
}

// sampleQuestionSet picks up to n questions without replacement using a
// Fisher-Yates shuffle. A nil rng uses the global math/rand source.
func sampleQuestionSet(bank []models.Question, n int, rng *rand.Rand) []ExamQuestion {
	idx := make([]int, len(bank))
	for i := range idx {
		idx[i] = i
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	if n > len(idx) {
		n = len(idx)
	}

	selected := make([]ExamQuestion, 0, n)
	for _, i := range idx[:n] {
		q := bank[i]
		selected = append(selected, ExamQuestion{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.OptionTexts(),
			Category:   q.Category,
			Difficulty: q.Difficulty,
		})
	}
	return selected
}
