package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts role endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageRoles gin.HandlerFunc) {
	roles := g.Group("/roles")
	roles.Use(authMiddleware)
	{
		roles.GET("", h.List)
		roles.GET("/:id", h.Get)
		roles.GET("/:id/permissions", h.Permissions)
		roles.POST("", manageRoles, h.Create)
		roles.POST("/reload", manageRoles, h.Reload)
	}
}
