package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/esdoorn/practice-api/internal/api/handler"
	"github.com/esdoorn/practice-api/internal/api/middleware"
	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
	"github.com/esdoorn/practice-api/internal/core/service"
	"github.com/esdoorn/practice-api/internal/infrastructure/config"
	pg "github.com/esdoorn/practice-api/internal/infrastructure/db/postgres"
	redisdb "github.com/esdoorn/practice-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, images ports.ImageStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("practice"))

	// --- Dependencies ---
	userRepo := pg.NewUserRepository(db)
	doctorRepo := pg.NewDoctorRepository(db)
	holidayRepo := pg.NewHolidayRepository(db)
	siteBlockRepo := pg.NewSiteBlockRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	doctorService := service.NewDoctorService(doctorRepo, images, log)
	holidayService := service.NewHolidayService(holidayRepo, log)
	siteBlockService := service.NewSiteBlockService(siteBlockRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	holidayHandler := handler.NewHolidayHandler(holidayService)
	welcomeHandler := handler.NewSiteBlockHandler(siteBlockService, domain.BlockWelcome)
	urgencyHandler := handler.NewSiteBlockHandler(siteBlockService, domain.BlockUrgency)

	authn := middleware.Auth(tokens, userRepo)
	admin := middleware.RBAC(domain.RoleAdmin)
	loginLimit := middleware.LoginRateLimit(
		redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window), log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, loginLimit)
	e.POST("/auth/register", authHandler.Register, authn, admin)

	// --- Doctors ---
	doctors := e.Group("/doctors", authn)
	doctors.GET("", doctorHandler.List)
	doctors.GET("/doctors-with-holidays", doctorHandler.WithHolidays)
	doctors.GET("/:id", doctorHandler.Get)
	doctors.POST("", doctorHandler.Create, admin)
	doctors.PUT("/:id", doctorHandler.Update, admin)
	doctors.DELETE("/:id", doctorHandler.Delete, admin)

	// --- Holidays (admin for every verb) ---
	holidays := e.Group("/holidays", authn, admin)
	holidays.GET("", holidayHandler.List)
	holidays.GET("/:id", holidayHandler.Get)
	holidays.POST("", holidayHandler.Create)
	holidays.PUT("/:id", holidayHandler.Update)
	holidays.DELETE("/:id", holidayHandler.Delete)

	// --- Site blocks ---
	e.GET("/welcome", welcomeHandler.Get, authn)
	e.PUT("/welcome", welcomeHandler.Put, authn, admin)
	e.GET("/urgency", urgencyHandler.Get, authn)
	e.PUT("/urgency", urgencyHandler.Put, authn, admin)

	// --- Users ---
	users := e.Group("/users", authn, admin)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)

	// --- Uploaded avatars (file storage mode only) ---
	if cfg.Images.Mode == "file" {
		e.Static("/uploads", cfg.Images.UploadDir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Info)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
