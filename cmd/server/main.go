package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	activityapp "github.com/wanderplan/backend/internal/application/activity"
	budgetapp "github.com/wanderplan/backend/internal/application/budget"
	geoapp "github.com/wanderplan/backend/internal/application/geo"
	identityapp "github.com/wanderplan/backend/internal/application/identity"
	tripapp "github.com/wanderplan/backend/internal/application/trip"
	weatherapp "github.com/wanderplan/backend/internal/application/weather"
	domainweather "github.com/wanderplan/backend/internal/domain/weather"
	"github.com/wanderplan/backend/internal/infrastructure/auth"
	"github.com/wanderplan/backend/internal/infrastructure/cache"
	"github.com/wanderplan/backend/internal/infrastructure/config"
	"github.com/wanderplan/backend/internal/infrastructure/logger"
	"github.com/wanderplan/backend/internal/infrastructure/persistence"
	"github.com/wanderplan/backend/internal/infrastructure/weather"
	"github.com/wanderplan/backend/internal/interfaces/http/handler"
	"github.com/wanderplan/backend/internal/interfaces/http/middleware"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Wanderplan Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	tripRepo := persistence.NewGormTripRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)

	// Weather provider and optional Redis-backed response cache
	weatherProvider, err := weather.NewOpenWeatherAdapter(&weather.Config{
		APIKey:         cfg.Weather.APIKey,
		BaseURL:        cfg.Weather.BaseURL,
		TimeoutSeconds: cfg.Weather.TimeoutSeconds,
	})
	if err != nil {
		log.Fatal("Failed to initialize weather provider", zap.Error(err))
	}

	var weatherCache domainweather.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisWeatherCache(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		weatherCache = redisCache
		log.Info("Weather cache enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Duration("ttl", cfg.Weather.CacheTTL),
		)
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	tripService := tripapp.NewTripService(tripRepo, log)
	budgetService := budgetapp.NewBudgetService(budgetRepo, tripRepo, log)
	locationService := geoapp.NewLocationService(locationRepo, log)
	weatherService := weatherapp.NewWeatherService(weatherProvider, weatherCache, cfg.Weather.CacheTTL, log)
	recommendationService := activityapp.NewRecommendationService(log)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	locationHandler := handler.NewLocationHandler(locationService)
	weatherHandler := handler.NewWeatherHandler(weatherService)
	activityHandler := handler.NewActivityHandler(recommendationService)
	healthHandler := handler.NewHealthHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Probes: liveness outside the API prefix, readiness inside it
	engine.GET("/healthz", healthHandler.Liveness)
	engine.GET("/api/health", healthHandler.Readiness)

	// Setup API routes
	r := router.NewRouter(engine)

	// JWT authentication for API routes, with public endpoints skipped
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/users/register",
			"/api/users/login",
			"/api/health",
		},
		SkipPathPrefixes: []string{
			"/api/trips/public/",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	r.Register(
		userHandler.Routes(),
		tripHandler.Routes(),
		budgetHandler.Routes(),
		locationHandler.Routes(),
		weatherHandler.Routes(),
		activityHandler.Routes(),
	)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
