package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"kinograph/internal/cache"
	"kinograph/internal/config"
	"kinograph/internal/database"
	"kinograph/internal/middleware"
	"kinograph/internal/models"
	"kinograph/internal/repository"
	"kinograph/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
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

	userRepo       repository.UserRepository
	filmRepo       repository.FilmRepository
	friendshipRepo repository.FriendshipRepository
	reviewRepo     repository.ReviewRepository
	feedRepo       repository.FeedRepository

	userService           *service.UserService
	filmService           *service.FilmService
	friendService         *service.FriendService
	reviewService         *service.ReviewService
	recommendationService *service.RecommendationService
	feedService           *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	feedRepo := repository.NewFeedRepository(db)

	middleware.InitMiddleware(cfg)
	prom := middleware.InitMetrics("kinograph-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		filmRepo:       filmRepo,
		friendshipRepo: friendshipRepo,
		reviewRepo:     reviewRepo,
		feedRepo:       feedRepo,
	}

	server.userService = service.NewUserService(userRepo)
	server.filmService = service.NewFilmService(filmRepo, userRepo, feedRepo)
	server.friendService = service.NewFriendService(friendshipRepo, userRepo, feedRepo)
	server.reviewService = service.NewReviewService(reviewRepo, userRepo, filmRepo, feedRepo)
	server.recommendationService = service.NewRecommendationService(filmRepo, userRepo)
	server.feedService = service.NewFeedService(feedRepo, userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Distributed tracing (after requestid so the span can carry it)
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on errors.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Kinograph Metrics Dashboard",
	}))

	// User routes
	users := api.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.GetUsers)
	// Specific /:id/:resource routes BEFORE generic /:id route
	users.Put("/:id/friends/:friendId", middleware.RateLimit(
		s.redis, 30, time.Minute, "add_friend"), s.AddFriend)
	users.Delete("/:id/friends/:friendId", s.DeleteFriend)
	users.Get("/:id/friends/common/:otherId", s.GetCommonFriends)
	users.Get("/:id/friends", s.GetFriends)
	users.Get("/:id/recommendations", s.GetRecommendations)
	users.Get("/:id/feed", s.GetFeed)
	users.Put("/:id", s.UpdateUser)
	// account/catalog deletion requires a token
	users.Delete("/:id", middleware.AuthRequired, s.DeleteUser)
	users.Get("/:id", s.GetUser)

	// Film routes
	films := api.Group("/films")
	films.Post("/", s.CreateFilm)
	films.Get("/", s.GetFilms)
	// Specific routes before generic /:id
	films.Get("/popular", s.GetPopularFilms)
	films.Get("/common", s.GetCommonFilms)
	films.Get("/search", s.SearchFilms)
	films.Get("/director/:directorId", s.GetFilmsByDirector)
	films.Put("/:id/like/:userId", middleware.RateLimit(
		s.redis, 60, time.Minute, "like_film"), s.LikeFilm)
	films.Delete("/:id/like/:userId", s.UnlikeFilm)
	films.Put("/:id", s.UpdateFilm)
	films.Delete("/:id", middleware.AuthRequired, s.DeleteFilm)
	films.Get("/:id", s.GetFilm)

	// Review routes
	reviews := api.Group("/reviews")
	reviews.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_review"), s.CreateReview)
	reviews.Get("/", s.GetReviews)
	reviews.Put("/:id/like/:userId", s.LikeReview)
	reviews.Put("/:id/dislike/:userId", s.DislikeReview)
	reviews.Delete("/:id/like/:userId", s.RemoveReviewLike)
	reviews.Delete("/:id/dislike/:userId", s.RemoveReviewDislike)
	reviews.Put("/:id", s.UpdateReview)
	reviews.Delete("/:id", s.DeleteReview)
	reviews.Get("/:id", s.GetReview)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API degrades to uncached reads without Redis.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Kinograph API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
