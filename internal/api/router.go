package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ongesperanza/ngo-system/internal/api/handler"
	"github.com/ongesperanza/ngo-system/internal/api/middleware"
	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/service"
	"github.com/ongesperanza/ngo-system/internal/infrastructure/config"
	mongodb "github.com/ongesperanza/ngo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/ongesperanza/ngo-system/internal/infrastructure/db/redis"
	"github.com/ongesperanza/ngo-system/internal/infrastructure/http/handlers"
	"github.com/ongesperanza/ngo-system/internal/seed"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ngo"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	store := redisdb.NewCollectionStore(rdb, cfg.StoreLatency)
	volunteerRepo := redisdb.NewVolunteerRepository(store, seed.Volunteers())
	projectRepo := redisdb.NewProjectRepository(store, seed.Projects())
	donationRepo := redisdb.NewDonationRepository(store, seed.Donations())
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	volunteerService := service.NewVolunteerService(volunteerRepo, log)
	projectService := service.NewProjectService(projectRepo, donationRepo, log)
	donationService := service.NewDonationService(donationRepo, log)
	reportService := service.NewReportService(volunteerRepo, projectRepo, donationRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	volunteerHandler := handler.NewVolunteerHandler(volunteerService)
	projectHandler := handler.NewProjectHandler(projectService)
	donationHandler := handler.NewDonationHandler(donationService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleCoordinator)

	v1.POST("/auth/logout", authHandler.Logout)

	v1.GET("/volunteers", volunteerHandler.List)
	v1.POST("/volunteers", volunteerHandler.Register, staff)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create, staff)

	v1.GET("/donations", donationHandler.List)
	v1.POST("/donations", donationHandler.Create, staff)

	v1.GET("/dashboard", reportHandler.Dashboard)
	v1.GET("/reports", reportHandler.Funding)

	return e
}
