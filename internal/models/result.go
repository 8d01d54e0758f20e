package models

import "time"

type Result struct {
	ID             string           `gorm:"size:36;primaryKey" json:"id"`
	UserID         uint             `gorm:"not null;index" json:"user_id"`
	Questions      []ResultQuestion `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Score          int              `gorm:"not null" json:"score"`
	TotalQuestions int              `gorm:"not null" json:"total_questions"`
	Percentage     int              `gorm:"not null" json:"percentage"`
	TimeSpent      int              `gorm:"not null" json:"time_spent"`
	CompletedAt    time.Time        `gorm:"not null;index" json:"completed_at"`
}

type ResultQuestion struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ResultID       string `gorm:"size:36;not null;index" json:"result_id"`
	QuestionID     uint   `gorm:"not null" json:"question_id"`
	OrderNum       int    `gorm:"not null" json:"order_num"`
	SelectedAnswer int    `gorm:"not null" json:"selected_answer"`
	IsCorrect      bool   `gorm:"not null" json:"is_correct"`
}
