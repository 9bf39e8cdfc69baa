package bookings

import (
	"eventease/internal/shared/middleware"
	"eventease/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, limiter *ratelimit.Limiter) {
	// Booking flow is open to guests; an optional token binds the booking
	// to the caller's account. Creation is rate limited per client.
	events := rg.Group("/events")
	events.Use(middleware.OptionalAuth())
	{
		events.GET("/:id/seatmap", controller.GetSeatmap)
		events.POST("/:id/bookings/preview", controller.Preview)
		events.POST("/:id/bookings", ratelimit.Middleware(limiter), controller.Create)
	}

	adminEvents := rg.Group("/events")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminEvents.GET("/:id/bookings", controller.GetEventBookings)
	}

	my := rg.Group("/bookings")
	my.Use(middleware.JWTAuth())
	{
		my.GET("/my", controller.GetMyBookings)
		my.POST("/:id/cancel", controller.Cancel)
	}
}
