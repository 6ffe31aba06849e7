package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/cmd/docs"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const (
	defaultLoginRate  = "5-M"
	defaultImportRate = "10-M"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, cfg, services.Auth, middleware.RateLimit(limiterOrDefault(cfg.LoginRateLimit, defaultLoginRate)))

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerSubscriptionRoutes(v1, services)
	registerVendorRoutes(v1, services)
	registerAssetRoutes(v1, services)
	registerImportRoutes(v1, services, cfg.ImportMaxBytes,
		middleware.RateLimitByUser(limiterOrDefault(cfg.ImportRateLimit, defaultImportRate)))
	registerDashboardRoutes(v1, services)
	registerAttachmentRoutes(v1, services.Attachment, cfg.AttachmentMaxBytes)
	registerLayoutRoutes(v1, services)
	registerModuleRoutes(v1, services.Modules)
	registerExchangeRateRoutes(v1, services.Rates)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func limiterOrDefault(formatted, fallback string) *limiter.Limiter {
	l, err := middleware.NewMemoryLimiter(formatted)
	if err != nil {
		slog.Warn("Invalid rate limit, using default", slog.String("rate", formatted), slog.String("default", fallback), slog.String("error", err.Error()))
		l, _ = middleware.NewMemoryLimiter(fallback)
	}
	return l
}
