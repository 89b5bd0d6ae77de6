package repository

import (
	"github.com/lshigami/Sables/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(progress *model.UserProgress) error
	FindAllByUserID(userID uint) ([]model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create appends a new progress row. Rows are never updated or deduplicated.
func (r *progressRepository) Create(progress *model.UserProgress) error {
	return r.db.Create(progress).Error
}

func (r *progressRepository) FindAllByUserID(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
