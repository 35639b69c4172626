package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts inventory endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageInventory gin.HandlerFunc) {
	rooms := g.Group("/rooms")
	rooms.Use(authMiddleware)
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.GET("/:id/beds", h.ListBeds)
		rooms.POST("", manageInventory, h.CreateRoom)
		rooms.PUT("/:id/status", manageInventory, h.SetRoomStatus)
		rooms.POST("/:id/beds", manageInventory, h.CreateBed)
	}

	beds := g.Group("/beds")
	beds.Use(authMiddleware)
	{
		beds.PUT("/:id/status", manageInventory, h.SetBedStatus)
	}
}
