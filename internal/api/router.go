package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lexserve/case-console/internal/api/handler"
	"github.com/lexserve/case-console/internal/api/middleware"
	"github.com/lexserve/case-console/internal/api/view"
	"github.com/lexserve/case-console/internal/core/domain"
	"github.com/lexserve/case-console/internal/core/service"
	"github.com/lexserve/case-console/internal/infrastructure/backend"
	redisinfra "github.com/lexserve/case-console/internal/infrastructure/db/redis"
	"github.com/lexserve/case-console/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *service.SessionManager) {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Dependencies ---
	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, log)
	manager := service.NewSessionManager(backendClient, log)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.Window, cfg.Login.MaxFailures)

	authHandler := handler.NewAuthHandler(manager, limiter, log)
	dashboardHandler := handler.NewDashboardHandler(backendClient)

	// --- Session pages ---
	// The session middleware is scoped to the pages so health probes and
	// metrics scrapes never mint console sessions.
	pages := e.Group("", middleware.Session(manager, cfg.SessionSecret))

	pages.GET("/", authHandler.Home)
	pages.GET("/login", authHandler.LoginPage)
	pages.POST("/login", authHandler.Login)
	pages.GET("/register", authHandler.RegisterPage)
	pages.POST("/register", authHandler.Register)
	pages.POST("/logout", authHandler.Logout)

	// --- Role-scoped dashboards ---
	admin := pages.Group("/admin", middleware.Guard(domain.RoleAdmin))
	admin.GET("", dashboardHandler.Admin)

	advocate := pages.Group("/advocate", middleware.Guard(domain.RoleAdvocate))
	advocate.GET("", dashboardHandler.Advocate)
	advocate.POST("/verification", dashboardHandler.SubmitVerification)

	junior := pages.Group("/junior_advocate", middleware.Guard(domain.RoleJuniorAdvocate))
	junior.GET("", dashboardHandler.JuniorAdvocate)

	client := pages.Group("/client", middleware.Guard(domain.RoleClient))
	client.GET("", dashboardHandler.Client)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, manager
}
