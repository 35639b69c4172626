package http

import (
	"github.com/gin-gonic/gin"
)

// TransitionMiddlewares carries the per-transition capability guards. Each
// lifecycle step has its own capability, so each route gets its own guard.
type TransitionMiddlewares struct {
	Create     gin.HandlerFunc
	Confirm    gin.HandlerFunc
	CheckIn    gin.HandlerFunc
	CheckOut   gin.HandlerFunc
	Cancel     gin.HandlerFunc
	MarkNoShow gin.HandlerFunc
}

// RegisterRoutes mounts booking endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, mw TransitionMiddlewares) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.GET("/availability", h.CheckAvailability)
		bookings.GET("", h.List)
		bookings.GET("/:reference", h.Get)
		bookings.GET("/:reference/events", h.Events)

		bookings.POST("", mw.Create, h.Create)
		bookings.POST("/:reference/confirm", mw.Confirm, h.Confirm)
		bookings.POST("/:reference/check-in", mw.CheckIn, h.CheckIn)
		bookings.POST("/:reference/check-out", mw.CheckOut, h.CheckOut)
		bookings.POST("/:reference/cancel", mw.Cancel, h.Cancel)
		bookings.POST("/:reference/no-show", mw.MarkNoShow, h.MarkNoShow)
	}
}
