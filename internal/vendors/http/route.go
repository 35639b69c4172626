package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts vendor endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageVendors gin.HandlerFunc) {
	group := g.Group("/vendors")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", manageVendors, h.Create)
		group.PATCH("/:id", manageVendors, h.Rename)
		group.DELETE("/:id", manageVendors, h.Deactivate)
	}
}
