package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "corrispettivi/docs"
	"corrispettivi/internal/config"
	"corrispettivi/internal/handler"
	"corrispettivi/internal/middleware"
	"corrispettivi/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	registerH *handler.RegisterHandler,
	exportH *handler.ExportHandler,
	settingsH *handler.SettingsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Register routes
	register := protected.Group("/register")
	register.GET("", registerH.Get)
	register.GET("/months", registerH.Months)
	register.GET("/export", exportH.Export)
	register.POST("/archive", exportH.Archive)
	register.POST("/email", exportH.Email)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("/statuses", settingsH.GetStatuses)
	settings.PUT("/statuses", settingsH.PutStatuses)
	settings.GET("/nonce", settingsH.GetNonce)
	settings.POST("/notice/dismiss", settingsH.DismissNotice)

	return r
}
