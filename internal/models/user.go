package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"size:255;not null" json:"-"`
	RegistrationNumber string    `gorm:"size:100;uniqueIndex;not null" json:"registration_number"`
	CreatedAt          time.Time `json:"created_at"`
}
