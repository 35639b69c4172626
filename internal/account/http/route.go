package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts account endpoints under the given group. Login stays
// public; everything else sits behind authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageStaff gin.HandlerFunc) {
	g.POST("/auth/login", h.Login)

	accounts := g.Group("/accounts")
	accounts.Use(authMiddleware)
	{
		accounts.GET("/me/permissions", h.Permissions)
		accounts.GET("/parse/:account_id", h.Parse)
		accounts.GET("/:account_id", h.Get)
		accounts.GET("", h.List)
		accounts.POST("", manageStaff, h.Create)
		accounts.DELETE("/:account_id", manageStaff, h.Deactivate)
	}
}
