package models

import "time"

// Attempt is stamped when a question set is issued. The token is
// single-use: the first successful submit stores the result id here and
// retries with the same token get that result back instead of a
// duplicate row.
type Attempt struct {
	Token     string     `gorm:"size:36;primaryKey" json:"token"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	TimeLimit int        `gorm:"not null" json:"time_limit"`
	IssuedAt  time.Time  `gorm:"not null" json:"issued_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ResultID  *string    `gorm:"size:36" json:"result_id,omitempty"`
}
