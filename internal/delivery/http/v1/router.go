package v1

import (
	"net/http"
	"time"

	"go-hiring-pipeline/config"
	"go-hiring-pipeline/internal/delivery/http/middleware"
	"go-hiring-pipeline/internal/delivery/http/response"
	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	PipelineUC      domain.PipelineUsecase
	ResumeUC        domain.ResumeUsecase
	InterviewUC     domain.InterviewUsecase
	OnboardingUC    domain.OnboardingUsecase
	PurchaseOrderUC domain.PurchaseOrderUsecase
	PositionUC      domain.PositionUsecase
	NotificationUC  domain.NotificationUsecase
	JWKSProvider    *auth.Provider
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	protected.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	{
		uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

		NewCandidateHandler(protected, deps.PipelineUC)
		NewApplicationHandler(protected, deps.PipelineUC)
		NewResumeHandler(protected, deps.ResumeUC, uploadLimit)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewOnboardingHandler(protected, deps.OnboardingUC)
		NewPurchaseOrderHandler(protected, deps.PurchaseOrderUC)
		NewPositionHandler(protected, deps.PositionUC)
		NewNotificationHandler(protected, deps.NotificationUC)
	}

	return r
}
