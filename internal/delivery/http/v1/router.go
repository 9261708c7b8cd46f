package v1

import (
	"careers-api/config"
	"careers-api/internal/delivery/http/middleware"
	"careers-api/internal/delivery/http/response"
	"careers-api/internal/domain"
	"careers-api/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ApplicationUC  domain.ApplicationUsecase
	Validate       *validator.Validate
	RateLimitStore ratelimit.Store
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Multipart uploads buffer to memory up to this amount; the resume cap
	// is 5 MiB so 8 MiB keeps valid uploads off disk.
	r.MaxMultipartMemory = 8 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.SiteURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Application intake: origin guard and rate limiter apply to this route only
	originGuard := middleware.OriginGuard(deps.Config.SiteURL, deps.Config.IsProduction())
	rateLimiter := middleware.RateLimitMiddleware(
		deps.RateLimitStore,
		middleware.ApplyRateLimitConfig(deps.Config.RateLimitMaxRequests, deps.Config.RateLimitWindow()),
	)
	NewApplyHandler(api, deps.ApplicationUC, deps.Validate, originGuard, rateLimiter)

	return r
}
