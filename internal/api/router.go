package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/socialpulse/feed-system/docs"
	"github.com/socialpulse/feed-system/internal/api/handler"
	"github.com/socialpulse/feed-system/internal/api/middleware"
	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/service"
	"github.com/socialpulse/feed-system/internal/core/session"
	"github.com/socialpulse/feed-system/internal/infrastructure/config"
	mongodb "github.com/socialpulse/feed-system/internal/infrastructure/db/mongo"
	"github.com/socialpulse/feed-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	dispatcher *queue.Dispatcher,
	sessions *session.Manager,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("socialpulse"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, 24*time.Hour, cfg.SimulatedLatency, log)
	feedService := service.NewFeedService(postRepo, userRepo, dispatcher, cfg.SimulatedLatency, log)
	profileService := service.NewProfileService(userRepo, sessions, cfg.SimulatedLatency, log)

	authHandler := handler.NewAuthHandler(authService)
	feedHandler := handler.NewFeedHandler(feedService)
	profileHandler := handler.NewProfileHandler(profileService)
	sessionHandler := handler.NewSessionHandler(sessions)
	activityHandler := handler.NewActivityHandler(activityRepo)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	v1.GET("/posts", feedHandler.List)
	v1.POST("/posts", feedHandler.Create)
	v1.DELETE("/posts/:id", feedHandler.Delete)
	v1.POST("/posts/:id/like", feedHandler.ToggleLike)
	v1.POST("/posts/:id/comments", feedHandler.AddComment)
	v1.GET("/posts/:id/activity", activityHandler.ListByPost, middleware.RBAC(domain.RoleAdmin))

	v1.GET("/profile", profileHandler.Get)
	v1.PUT("/profile", profileHandler.Update)

	v1.GET("/session", sessionHandler.Get)
	v1.DELETE("/session", sessionHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
