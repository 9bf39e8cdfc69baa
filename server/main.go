package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventease/api/routes"
	"eventease/internal/bookings"
	"eventease/internal/notifications"
	"eventease/internal/shared/config"
	"eventease/internal/shared/database"
	"eventease/pkg/cache"
	"eventease/pkg/logger"
	"eventease/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// The cache package holds the shared Redis client the services use
	// for cache-aside reads.
	if err := cache.InitWithRedisConfig(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Addr:     cfg.Redis.Addr,
	}); err != nil {
		appLogger.Error("failed to initialize cache", slog.Any("error", err))
		os.Exit(1)
	}
	defer cache.Close()

	rateLimiter := ratelimit.NewLimiter(db.GetRedisClient(), &ratelimit.Config{
		Enabled:         cfg.RateLimit.Enabled,
		WindowDuration:  cfg.RateLimit.WindowDuration,
		DefaultRequests: cfg.RateLimit.DefaultRequests,
		PublicRequests:  cfg.RateLimit.PublicRequests,
		AuthRequests:    cfg.RateLimit.AuthRequests,
		BookingRequests: cfg.RateLimit.BookingRequests,
		EditorRequests:  cfg.RateLimit.EditorRequests,
		AdminRequests:   cfg.RateLimit.AdminRequests,
	})
	appLogger.Info("Rate limiter initialized",
		slog.Bool("enabled", cfg.RateLimit.Enabled),
		slog.Duration("window", cfg.RateLimit.WindowDuration),
	)

	// Booking notifications flow through Kafka when enabled. The
	// booking service tolerates a nil notifier.
	var notifier bookings.Notifier
	if cfg.Kafka.Enabled {
		producer, err := notifications.NewProducer(
			notifications.DefaultProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.BookingsTopic))
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer, continuing without notifications",
				slog.Any("error", err))
		} else {
			notifier = producer
			defer producer.Close()

			consumer, err := notifications.NewConsumer(
				notifications.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup,
					[]string{cfg.Kafka.BookingsTopic}),
				emailSender(cfg, appLogger))
			if err != nil {
				appLogger.Error("Failed to initialize Kafka consumer", slog.Any("error", err))
			} else {
				consumerCtx, consumerCancel := context.WithCancel(context.Background())
				defer consumerCancel()
				if err := consumer.Start(consumerCtx); err != nil {
					appLogger.Error("Failed to start notification consumer", slog.Any("error", err))
				} else {
					defer consumer.Stop()
				}
			}
		}
	}

	router := setupRouter(cfg, db, rateLimiter, notifier)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", cfg.APIVersion),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func emailSender(cfg *config.Config, appLogger *logger.Logger) notifications.EmailSender {
	sender, err := notifications.NewSMTPEmailSender(cfg.Email)
	if err != nil {
		appLogger.Info("SMTP not configured, logging notification emails instead")
		return notifications.NewLogEmailSender()
	}
	return sender
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.Limiter, notifier bookings.Notifier) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRouter := routes.NewRouter(cfg, db, rateLimiter, notifier)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
