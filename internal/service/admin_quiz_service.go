package service

import (
	"fmt"

	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

// CreateQuiz creates a quiz together with its questions and options in one
// write, so every question references the new quiz and every option its
// question. The correct option of each question must be one of its listed
// option texts.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	var questions []model.Question
	for i, qDto := range req.Questions {
		found := false
		options := make([]model.Option, 0, len(qDto.Options))
		for _, oDto := range qDto.Options {
			if oDto.Text == qDto.CorrectOption {
				found = true
			}
			options = append(options, model.Option{Text: oDto.Text})
		}
		if !found {
			return nil, fmt.Errorf("question %d: correct_option %q is not among its options", i+1, qDto.CorrectOption)
		}
		questions = append(questions, model.Question{
			Text:          qDto.Text,
			CorrectOption: qDto.CorrectOption,
			Options:       options,
		})
	}

	quiz := model.Quiz{
		Title:     req.Title,
		Questions: questions,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to reload newly created quiz for response")
		return &dto.QuizDetailDTO{ID: quiz.ID, Title: quiz.Title, CreatedAt: quiz.CreatedAt}, nil
	}

	resp := dto.QuizDetailDTO{
		ID:        created.ID,
		Title:     created.Title,
		CreatedAt: created.CreatedAt,
	}
	for _, q := range created.Questions {
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, o.Text)
		}
		resp.Questions = append(resp.Questions, dto.QuestionDTO{ID: q.ID, Text: q.Text, Options: options})
	}
	return &resp, nil
}
