package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hiring-pipeline/config"
	_ "go-hiring-pipeline/docs" // Important for Swagger
	v1 "go-hiring-pipeline/internal/delivery/http/v1"
	"go-hiring-pipeline/internal/repository/postgres"
	"go-hiring-pipeline/internal/usecase"
	"go-hiring-pipeline/pkg/auth"
	"go-hiring-pipeline/pkg/database"
	"go-hiring-pipeline/pkg/email"
	"go-hiring-pipeline/pkg/logger"
	"go-hiring-pipeline/pkg/redis"
	"go-hiring-pipeline/pkg/storage"
	"go-hiring-pipeline/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Hiring Pipeline API
// @version         1.0
// @description     Candidate lifecycle and submission pipeline backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hiring pipeline backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Blob Store
	blobStore, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	onboardingRepo := postgres.NewOnboardingRepository(dbPool)
	poRepo := postgres.NewPurchaseOrderRepository(dbPool)
	positionRepo := postgres.NewPositionRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notification emails will be skipped")
	}

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	pipelineUC := usecase.NewPipelineUsecase(candidateRepo, applicationRepo, onboardingRepo, positionRepo, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, blobStore)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, candidateRepo, positionRepo, userRepo, notificationRepo, emailService, validate)
	onboardingUC := usecase.NewOnboardingUsecase(onboardingRepo)
	poUC := usecase.NewPurchaseOrderUsecase(poRepo, validate)
	positionUC := usecase.NewPositionUsecase(positionRepo, validate)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	// 9. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.AuthJWKSURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PipelineUC:      pipelineUC,
		ResumeUC:        resumeUC,
		InterviewUC:     interviewUC,
		OnboardingUC:    onboardingUC,
		PurchaseOrderUC: poUC,
		PositionUC:      positionUC,
		NotificationUC:  notificationUC,
		JWKSProvider:    jwksProvider,
		Config:          cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
