package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sables/config"
	"github.com/lshigami/Sables/database"
	_ "github.com/lshigami/Sables/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Sables/internal/controller/admin"
	authctrl "github.com/lshigami/Sables/internal/controller/auth"
	userctrl "github.com/lshigami/Sables/internal/controller/user"
	"github.com/lshigami/Sables/internal/logger"
	"github.com/lshigami/Sables/internal/middleware"
	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/lshigami/Sables/internal/security"
	"github.com/lshigami/Sables/internal/service"
	"github.com/lshigami/Sables/internal/token"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Service API
// @version 1.0
// @description Authenticated quiz service: signup, token login, quiz catalog, graded submissions with persisted progress.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewProgressRepository,
		),

		// Security primitives
		fx.Provide(
			security.NewPasswordHasher,
			token.NewService,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewSessionService,
			service.NewQuizService,
			service.NewSubmissionService,
			service.NewAdminQuizService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewQuizController,
			adminctrl.NewAdminQuizController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions service.SessionService,
	authCtrl *authctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	adminQuizCtrl *adminctrl.AdminQuizController,
) {
	// Public routes: account creation and token issuance.
	router.POST("/signup", authCtrl.Signup)
	router.POST("/token", authCtrl.Token)

	// Protected routes: everything behind the bearer-token trust boundary.
	protected := router.Group("")
	protected.Use(middleware.BearerAuth(sessions))
	{
		protected.GET("/quizzes", quizCtrl.GetQuizzes)
		protected.GET("/quiz/:quiz_id/questions", quizCtrl.GetQuizQuestions)
		protected.POST("/quiz/:quiz_id/submit", quizCtrl.SubmitQuiz)
		protected.GET("/my-progress", quizCtrl.GetMyProgress)

		adminGroup := protected.Group("/admin")
		adminGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz service starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.UserProgress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
