// Package server contains the HTTP handlers for the classifieds API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "simpleadvert/docs" // swagger docs
	"simpleadvert/internal/auth"
	"simpleadvert/internal/config"
	"simpleadvert/internal/middleware"
	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
	"simpleadvert/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	auth           *middleware.Auth
	adverts        *service.AdvertService
	feedback       *service.FeedbackService
	complaints     *service.ComplaintService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil; write rate limits then fail open.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}

	uow := repository.NewUnitOfWork(db)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("simpleadvert-api"),
		auth:           middleware.NewAuth(tokens, repository.NewUserRepository(db)),
		adverts:        service.NewAdvertService(uow),
		feedback:       service.NewFeedbackService(uow),
		complaints:     service.NewComplaintService(uow),
	}, nil
}

// NewApp returns a Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: s.config.AppTitle,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	// Tracing runs first so the trace ID reaches the log context
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected browser requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	// Global per-IP limit; writes carry an additional Redis-backed per-user limit.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/swagger/*", swagger.HandlerDefault)

	required := s.auth.Required()
	writeLimit := middleware.RateLimit(s.redis, s.config.RateLimitMax,
		time.Duration(s.config.RateLimitWindowSeconds)*time.Second, s.config.Env, "write")

	adverts := api.Group("/adverts")
	adverts.Post("/", required, writeLimit, s.CreateAdvert)
	adverts.Get("/", s.ListAdverts)
	// Specific /:id/:resource routes before the generic /:id routes
	adverts.Get("/:id/feedback", s.ListAdvertFeedback)
	adverts.Get("/:id/complaints", required, s.ListAdvertComplaints)
	adverts.Get("/:id", s.GetAdvert)
	adverts.Patch("/:id", required, s.UpdateAdvert)
	adverts.Delete("/:id", required, s.DeleteAdvert)

	feedback := api.Group("/feedback")
	feedback.Post("/", required, writeLimit, s.CreateFeedback)
	feedback.Get("/", s.ListFeedback)
	feedback.Get("/:id", s.GetFeedback)
	feedback.Patch("/:id", required, s.UpdateFeedback)
	feedback.Delete("/:id", required, s.DeleteFeedback)

	// Every complaint route needs an identity; reads are further restricted to superusers.
	complaints := api.Group("/complaints", required)
	complaints.Post("/", writeLimit, s.CreateComplaint)
	complaints.Get("/", s.ListComplaints)
	complaints.Get("/:id", s.GetComplaint)
	complaints.Patch("/:id", s.UpdateComplaint)
	complaints.Delete("/:id", s.DeleteComplaint)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
// Redis only degrades readiness when it was configured.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	switch {
	case s.redis != nil:
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	case s.config.RedisURL != "":
		redisStatus = "unavailable"
	default:
		redisStatus = "disabled"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" || redisStatus == "unavailable" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app and blocks serving on the configured port.
func (s *Server) Start() error {
	s.app = s.NewApp()
	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
