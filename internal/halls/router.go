package halls

import (
	"eventease/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupHallRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public reads: clients render the seat map when booking.
	public := rg.Group("/halls")
	{
		public.GET("", controller.GetHalls)
		public.GET("/:id", controller.GetHall)
		public.GET("/:id/layout", controller.GetLayout)
	}

	admin := rg.Group("/admin/halls")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateHall)
		admin.PUT("/:id", controller.UpdateHall)
		admin.DELETE("/:id", controller.DeleteHall)
		admin.GET("/templates", controller.GetTemplates)
		admin.POST("/:id/apply-template", controller.ApplyTemplate)
	}
}
