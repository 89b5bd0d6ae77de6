package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	SubmitQuiz(user *model.User, quizID uint, answers []dto.AnswerSubmitDTO) (*dto.SubmitResultDTO, error)
	GetUserProgress(userID uint) ([]dto.ProgressDTO, error)
}

type submissionService struct {
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
}

func NewSubmissionService(questionRepo repository.QuestionRepository, progressRepo repository.ProgressRepository) SubmissionService {
	return &submissionService{questionRepo: questionRepo, progressRepo: progressRepo}
}

// SubmitQuiz grades answers against the authoritative correct options and
// appends a progress record. Grading rules:
//   - each answer is looked up by (question_id, quiz_id); answers referencing
//     questions from another quiz are silently ignored
//   - an answer scores 1 iff selected_option exactly equals the question's
//     correct option
//   - duplicate question_ids are each graded independently, so a repeated
//     correct answer counts more than once
//
// A progress row with Completed=true is written unconditionally, even for a
// zero score or an unknown quiz id.
func (s *submissionService) SubmitQuiz(user *model.User, quizID uint, answers []dto.AnswerSubmitDTO) (*dto.SubmitResultDTO, error) {
	score := 0
	for _, ans := range answers {
		question, err := s.questionRepo.FindByIDAndQuizID(ans.QuestionID, quizID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().Uint("questionID", ans.QuestionID).Uint("quizID", quizID).Msg("SubmitQuiz: answer references a question outside this quiz, skipping")
				continue
			}
			log.Error().Err(err).Uint("questionID", ans.QuestionID).Msg("SubmitQuiz: question lookup failed")
			return nil, fmt.Errorf("error fetching question %d: %w", ans.QuestionID, err)
		}
		if question.CorrectOption == ans.SelectedOption {
			score++
		}
	}

	progress := model.UserProgress{
		UserID:    user.ID,
		QuizID:    quizID,
		Score:     score,
		Completed: true,
	}
	if err := s.progressRepo.Create(&progress); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Uint("quizID", quizID).Msg("SubmitQuiz: failed to persist progress record")
		return nil, fmt.Errorf("error saving progress: %w", err)
	}

	log.Info().Uint("userID", user.ID).Uint("quizID", quizID).Int("score", score).Int("answerCount", len(answers)).Msg("Quiz submission graded")
	return &dto.SubmitResultDTO{Score: score}, nil
}

func (s *submissionService) GetUserProgress(userID uint) ([]dto.ProgressDTO, error) {
	records, err := s.progressRepo.FindAllByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to get progress records from repository")
		return nil, fmt.Errorf("error fetching progress for user %d: %w", userID, err)
	}

	var dtos []dto.ProgressDTO
	if err := copier.Copy(&dtos, &records); err != nil {
		log.Error().Err(err).Msg("Failed to copy progress models to DTOs")
		return nil, fmt.Errorf("error preparing progress response: %w", err)
	}
	return dtos, nil
}
