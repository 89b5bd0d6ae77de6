package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService is the read-only catalog view. It never mutates state and never
// exposes a question's correct option.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizQuestions(quizID uint) ([]dto.QuestionDTO, error)
}

type quizService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
}

func NewQuizService(quizRepo repository.QuizRepository, questionRepo repository.QuestionRepository) QuizService {
	return &quizService{quizRepo: quizRepo, questionRepo: questionRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	if err := copier.Copy(&dtos, &quizzes); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz models to summary DTOs")
		return nil, fmt.Errorf("error preparing quiz list response: %w", err)
	}
	return dtos, nil
}

func (s *quizService) GetQuizQuestions(quizID uint) ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindByQuizIDWithOptions(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get questions from repository")
		return nil, fmt.Errorf("error fetching questions for quiz %d: %w", quizID, err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, o.Text)
		}
		dtos = append(dtos, dto.QuestionDTO{
			ID:      q.ID,
			Text:    q.Text,
			Options: options,
		})
	}
	return dtos, nil
}
