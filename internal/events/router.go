package events

import (
	"eventease/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public reads: the listing and detail pages need no account.
	public := rg.Group("/events")
	{
		public.GET("", controller.GetEvents)
		public.GET("/:id", controller.GetEvent)
	}

	admin := rg.Group("/admin/events")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateEvent)
		admin.PUT("/:id", controller.UpdateEvent)
		admin.DELETE("/:id", controller.DeleteEvent)
	}
}
