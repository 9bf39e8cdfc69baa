package editor

import (
	"eventease/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEditorRoutes(rg *gin.RouterGroup, controller *Controller) {
	sessions := rg.Group("/editor/sessions")
	sessions.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		sessions.POST("", controller.OpenSession)
		sessions.GET("/:id", controller.GetSession)
		sessions.DELETE("/:id", controller.CloseSession)
		sessions.POST("/:id/save", controller.SaveSession)

		sessions.PUT("/:id/tool", controller.SetTool)
		sessions.POST("/:id/rotate", controller.Rotate)
		sessions.POST("/:id/ghost", controller.Ghost)
		sessions.POST("/:id/click", controller.Click)
		sessions.PUT("/:id/selection", controller.SetSelection)

		sessions.POST("/:id/zones", controller.AddZone)
		sessions.POST("/:id/apply-zone", controller.ApplyZone)
		sessions.PUT("/:id/zones/:zoneId", controller.UpdateZone)
		sessions.DELETE("/:id/zones/:zoneId", controller.DeleteZone)
	}
}
