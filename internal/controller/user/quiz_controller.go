package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/middleware"
	"github.com/lshigami/Sables/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
}

func NewQuizController(quizService service.QuizService, submissionService service.SubmissionService) *QuizController {
	return &QuizController{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

// GetQuizzes godoc
// @Summary List all quizzes
// @Description Get the id and title of every available quiz.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizQuestions godoc
// @Summary Get the questions of a quiz
// @Description Questions with their candidate options. The correct option is never included.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/{quiz_id}/questions [get]
func (c *QuizController) GetQuizQuestions(ctx *gin.Context) {
	quizIDStr := ctx.Param("quiz_id")
	quizID, err := strconv.ParseUint(quizIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz ID format"})
		return
	}

	questions, err := c.quizService.GetQuizQuestions(uint(quizID))
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuizQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Grades the submitted answers and records a progress entry. Answers referencing questions outside this quiz are ignored.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param answers body []dto.AnswerSubmitDTO true "Submitted answers"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID or request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/{quiz_id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	quizIDStr := ctx.Param("quiz_id")
	quizID, err := strconv.ParseUint(quizIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz ID format"})
		return
	}

	var answers []dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&answers); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
		return
	}

	result, err := c.submissionService.SubmitQuiz(user, uint(quizID), answers)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to process submission"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyProgress godoc
// @Summary List the authenticated user's progress records
// @Description Every graded submission, newest first. Repeated attempts at the same quiz appear as separate entries.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProgressDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /my-progress [get]
func (c *QuizController) GetMyProgress(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
		return
	}

	records, err := c.submissionService.GetUserProgress(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("GetMyProgress: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve progress"})
		return
	}
	ctx.JSON(http.StatusOK, records)
}
