package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/config"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/http/handlers"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/http/middleware"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/metrics"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
)

type Dependencies struct {
	Config         *config.Config
	Logger         *slog.Logger
	Sessions       *services.SessionManager
	AuthService    *services.AuthService
	ProjectService *services.ProjectService
	ResumeService  *services.ResumeService
	ContactService *services.ContactService
	Metrics        *metrics.Collector
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))
	router.Use(middleware.ErrorHandler(deps.Logger, !deps.Config.IsProd()))

	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.Sessions, deps.Config.IsProd())
	projectHandler := handlers.NewProjectHandler(deps.ProjectService)
	resumeHandler := handlers.NewResumeHandler(deps.ResumeService, deps.Config.MaxUploadBytes)
	contactHandler := handlers.NewContactHandler(deps.ContactService)
	requireAuth := middleware.SessionAuth(deps.Sessions)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Portfolio Backend Server is running...")
	})
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/api/health", handlers.Health)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if deps.Config.ResumeStorage == "disk" {
		router.Static("/uploads", deps.Config.UploadDir)
	}

	auth := router.Group("/api/auth")
	auth.Use(deps.RateLimiter.Middleware())
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/status", authHandler.Status)
		auth.PUT("/profile", requireAuth, authHandler.Profile)
	}

	projects := router.Group("/api/projects")
	{
		projects.GET("", projectHandler.List)
		projects.POST("", requireAuth, projectHandler.Create)
		projects.PUT("/:id", requireAuth, projectHandler.Update)
		projects.DELETE("/:id", requireAuth, projectHandler.Delete)
	}

	resume := router.Group("/api/resume")
	{
		resume.GET("", resumeHandler.Get)
		resume.GET("/view", resumeHandler.View)
		resume.POST("/upload", requireAuth, resumeHandler.Upload)
	}

	router.POST("/api/contact", contactHandler.Submit)

	return router
}
