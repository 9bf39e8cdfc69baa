package routes

import (
	"net/http"
	"time"

	"eventease/internal/auth"
	"eventease/internal/bookings"
	"eventease/internal/editor"
	"eventease/internal/events"
	"eventease/internal/halls"
	"eventease/internal/shared/config"
	"eventease/internal/shared/database"
	"eventease/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	limiter  *ratelimit.Limiter
	notifier bookings.Notifier
}

// NewRouter creates a new router instance. The notifier may be nil when
// Kafka is disabled.
func NewRouter(cfg *config.Config, db *database.DB, limiter *ratelimit.Limiter, notifier bookings.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		limiter:  limiter,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	editor.RegisterValidators()

	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth
		authRepo := auth.NewRepository(r.db.GetPostgreSQL())
		authService := auth.NewService(authRepo, r.config)
		auth.SetupAuthRoutes(api, auth.NewController(authService))

		// Halls and their layouts
		hallRepo := halls.NewRepository(r.db.GetPostgreSQL())
		hallService := halls.NewService(hallRepo)
		halls.SetupHallRoutes(api, halls.NewController(hallService))

		// Layout editor sessions live in Redis; persisting a session
		// writes back through the hall service.
		editorStore := editor.NewStore(r.db.GetRedisClient())
		editorService := editor.NewService(editorStore, hallService)
		editor.SetupEditorRoutes(api, editor.NewController(editorService))

		// Events reference a hall for their seat map
		eventRepo := events.NewRepository(r.db.GetPostgreSQL())
		eventService := events.NewService(eventRepo, hallService)
		events.SetupEventRoutes(api, events.NewController(eventService))

		// Bookings resolve seat maps and prices through the event service
		bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
		bookingService := bookings.NewService(bookingRepo, eventService, r.notifier)
		bookings.SetupBookingRoutes(api, bookings.NewController(bookingService), r.limiter)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "eventease-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "eventease-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
