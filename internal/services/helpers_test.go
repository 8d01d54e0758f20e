package services

import (
	"fmt"
	"testing"

	"exam-platform-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database. A single
// connection keeps the memory database alive and shared across the
// pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Option{},
		&models.Attempt{},
		&models.Result{},
		&models.ResultQuestion{},
	)
	if err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

// seedBank inserts n four-option questions with CorrectIndex i%4.
func seedBank(t *testing.T, db *gorm.DB, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			Text:         fmt.Sprintf("question %d", i+1),
			CorrectIndex: i % 4,
			Category:     models.CategoryGeneral,
			Difficulty:   models.DifficultyEasy,
		}
		for j := 0; j < 4; j++ {
			q.Options = append(q.Options, models.Option{OrderNum: j, Text: fmt.Sprintf("option %d", j+1)})
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seeding question: %v", err)
		}
		questions = append(questions, q)
	}
	return questions
}
