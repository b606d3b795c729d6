package handler

import (
	"marketplace-seller-service/internal/adapter/http/middleware"
	redisStore "marketplace-seller-service/internal/adapter/storage/redis"
	"marketplace-seller-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OnboardingSvc  ports.OnboardingService
	DocumentSvc    ports.DocumentService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MaxUploadBytes int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	// Room for the largest document plus multipart overhead.
	bodyLimit := deps.MaxUploadBytes + (1 << 20)
	if deps.MaxUploadBytes <= 0 {
		bodyLimit = 6 << 20
	}
	r.Use(middleware.MaxBodySize(bodyLimit))

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")

	// --- Public catalog routes (no auth) ---
	catalogHandler := NewCatalogHandler()
	catalog := api.Group("/catalog")
	{
		catalog.GET("/categories", rl("catalog"), catalogHandler.Categories)
		catalog.GET("/business-types", rl("catalog"), catalogHandler.BusinessTypes)
		catalog.GET("/document-types", rl("catalog"), catalogHandler.DocumentTypes)
	}

	// --- JWT-authenticated seller routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	sellerHandler := NewSellerHandler(deps.OnboardingSvc)
	documentHandler := NewDocumentHandler(deps.DocumentSvc)

	seller := api.Group("/seller", jwtAuth)
	{
		seller.POST("/register", rl("register"), sellerHandler.Register)
		seller.GET("/profile", rl("profile"), sellerHandler.GetProfile)

		seller.GET("/register/draft", rl("draft"), sellerHandler.GetDraft)
		seller.PUT("/register/draft", rl("draft"), sellerHandler.UpdateDraft)
		seller.DELETE("/register/draft", rl("draft"), sellerHandler.DiscardDraft)

		seller.POST("/documents", rl("documents"), documentHandler.Upload)
		seller.GET("/documents", rl("documents"), documentHandler.List)
		seller.POST("/documents/submit", rl("documents"), documentHandler.Submit)
	}

	return r
}
