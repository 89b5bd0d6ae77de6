package repository

import (
	"github.com/lshigami/Sables/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByQuizIDWithOptions(quizID uint) ([]model.Question, error)
	FindByIDAndQuizID(id uint, quizID uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByQuizIDWithOptions(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("Options").Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByIDAndQuizID returns gorm.ErrRecordNotFound when the question does not
// exist or belongs to a different quiz. Callers grading submissions rely on
// that to skip cross-quiz answers.
func (r *questionRepository) FindByIDAndQuizID(id uint, quizID uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Where("id = ? AND quiz_id = ?", id, quizID).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}
