package model

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress is append-only: every submission inserts a new row, repeated
// attempts at the same quiz are all retained.
type UserProgress struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	Score     int            `json:"score" gorm:"not null"`
	Completed bool           `json:"completed" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
