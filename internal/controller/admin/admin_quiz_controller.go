package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Admin creates a quiz with its questions and options in one call. Each question's correct option must be one of its option texts.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz creation data including all questions and options"
// @Success 201 {object} dto.QuizDetailDTO "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quizResp, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to create quiz: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, quizResp)
}
