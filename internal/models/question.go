package models

import "time"

const (
	CategoryReact    = "react"
	CategoryAPI      = "api"
	CategoryDatabase = "database"
	CategoryGeneral  = "general"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// CorrectIndex is never serialized; exam payloads are built from
// response structs and the only place the key is revealed is the
// owner-scoped result detail view.
type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Options      []Option  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CorrectIndex int       `gorm:"not null" json:"-"`
	Category     string    `gorm:"size:20;not null;index" json:"category"`
	Difficulty   string    `gorm:"size:20;not null;default:'medium'" json:"difficulty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	OrderNum   int    `gorm:"not null" json:"order_num"`
	Text       string `gorm:"size:500;not null" json:"text"`
}

// OptionTexts returns the option strings in display order.
func (q *Question) OptionTexts() []string {
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}
	return texts
}
