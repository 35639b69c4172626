package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts hotel endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageHotels gin.HandlerFunc) {
	group := g.Group("/hotels")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/by-public-id/:hotel_id", h.GetByPublicID)
		group.POST("", manageHotels, h.Create)
		group.PATCH("/:id", manageHotels, h.Update)
		group.DELETE("/:id", manageHotels, h.Deactivate)
	}
}
