package repository

import (
	"github.com/lshigami/Sables/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindAll() ([]model.Quiz, error)
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates nested questions and options when they are populated on
	// the quiz, keeping question->quiz and option->question references valid.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).Preload("Questions.Options").First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
