package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account with a username and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignupRequest true "New account credentials"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Signup: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.authService.Signup(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: service.ErrDuplicateUser.Error()})
			return
		}
		log.Error().Err(err).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create user"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created"})
}

// Token godoc
// @Summary Exchange credentials for a bearer token
// @Description Form-encoded login. Returns a signed access token on success.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Missing form fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Msg("Token: failed to bind form")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	signed, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: service.ErrInvalidCredentials.Error()})
			return
		}
		log.Error().Err(err).Msg("Token: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to log in"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{AccessToken: signed, TokenType: "bearer"})
}
