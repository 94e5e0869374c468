package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/embryolab/backend/docs"
	"github.com/embryolab/backend/internal/handlers"
	"github.com/embryolab/backend/internal/repositories"
	"github.com/embryolab/backend/internal/services"
	"github.com/embryolab/backend/internal/storage"
	"github.com/embryolab/backend/libs/auth"
	authMiddleware "github.com/embryolab/backend/libs/auth/middleware"
	authService "github.com/embryolab/backend/libs/auth/service"
	"github.com/embryolab/backend/libs/config"
	"github.com/embryolab/backend/libs/logger"
	loggerMiddleware "github.com/embryolab/backend/libs/logger/middleware"
	sharedMiddleware "github.com/embryolab/backend/libs/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 50 * 1024 * 1024 // 50MB for model file uploads

// @title EmbryoLab API
// @version 1.0
// @description API for managing 3D anatomical models, quizzes and learning activity
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer "
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting EmbryoLab Backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db, cfg.MigrationsPath); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator (for auth middleware)
	tokenGenerator := authService.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
	)

	// Initialize upload storage
	store, err := storage.NewLocalStorage(cfg.UploadBasePath, cfg.UploadBaseURL)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize upload storage", zap.Error(err))
	}

	// Initialize repositories
	modelRepo := repositories.NewModel3DRepository(db)
	fileRepo := repositories.NewModelFileRepository(db)
	mediaRepo := repositories.NewModelMediaRepository(db)
	quizRepo := repositories.NewQuizRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	attemptRepo := repositories.NewAttemptRepository(db)
	answerRepo := repositories.NewAttemptAnswerRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	eventRepo := repositories.NewEventLogRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	modelService := services.NewModel3DService(modelRepo)
	fileService := services.NewModelFileService(fileRepo, modelRepo, store, logger.Logger)
	mediaService := services.NewModelMediaService(mediaRepo, modelRepo)
	quizService := services.NewQuizService(quizRepo, modelRepo)
	questionService := services.NewQuestionService(questionRepo, quizRepo)
	attemptService := services.NewAttemptService(attemptRepo, answerRepo, quizRepo, questionRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	eventService := services.NewEventLogService(eventRepo)
	statsService := services.NewStatsService(modelRepo, quizRepo, userRepo)

	// Initialize middleware
	authMw := authMiddleware.AuthMiddleware(tokenGenerator)
	roleMw := authMiddleware.RoleMiddleware(tokenGenerator, auth.RoleStudent, auth.RoleProfessor)
	professorMw := authMiddleware.RoleMiddleware(tokenGenerator, auth.RoleProfessor)

	// Initialize handlers
	modelHandler := handlers.NewModel3DHandler(modelService, logger.Logger)
	fileHandler := handlers.NewModelFileHandler(fileService, logger.Logger)
	mediaHandler := handlers.NewModelMediaHandler(mediaService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	questionHandler := handlers.NewQuestionHandler(questionService, logger.Logger)
	attemptHandler := handlers.NewAttemptHandler(attemptService, logger.Logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger.Logger)
	eventHandler := handlers.NewEventLogHandler(eventService, logger.Logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Serve uploaded model files
	uploadPrefix := "/" + strings.Trim(cfg.UploadBaseURL, "/")
	r.Handle(uploadPrefix+"/*", http.StripPrefix(uploadPrefix+"/", http.FileServer(http.Dir(cfg.UploadBasePath))))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		modelHandler.RegisterRoutes(r, authMw, roleMw)
		fileHandler.RegisterRoutes(r, roleMw)
		mediaHandler.RegisterRoutes(r, roleMw, professorMw)
		quizHandler.RegisterRoutes(r, roleMw)
		questionHandler.RegisterRoutes(r, roleMw)
		attemptHandler.RegisterRoutes(r, authMw, roleMw)
		notificationHandler.RegisterRoutes(r, authMw, roleMw)
		eventHandler.RegisterRoutes(r, authMw, professorMw)
		statsHandler.RegisterRoutes(r, roleMw)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // Longer timeout for file uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, sourceURL string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "embryolab_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
