package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	QuizID uint   `json:"quiz_id" gorm:"not null;index"`
	Text   string `json:"text" gorm:"type:text;not null"`
	// CorrectOption is the authoritative answer key. It must never be
	// serialized to clients.
	CorrectOption string         `json:"-" gorm:"not null"`
	Options       []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
