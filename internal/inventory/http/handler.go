package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/inventory"
	"hotel-pms-backend/internal/pkg/request"
	"hotel-pms-backend/internal/pkg/response"
)

// Handler serves room and bed inventory endpoints.
type Handler struct {
	service inventory.Service
}

// NewHandler creates a new inventory handler.
func NewHandler(service inventory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), inventory.CreateRoomRequest{
		HotelID:   req.HotelID,
		Number:    req.Number,
		Dormitory: req.Dormitory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewRoomResponse(room))
}

func (h *Handler) GetRoom(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewRoomResponse(room))
}

func (h *Handler) ListRooms(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	rooms, total, err := h.service.ListRooms(c.Request.Context(), inventory.RoomFilter{
		HotelID:  req.HotelID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}
	c.JSON(http.StatusOK, response.NewPage(items, total, req.Page, req.PageSize))
}

func (h *Handler) SetRoomStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetRoomStatus(c.Request.Context(), uri.ID, inventory.UnitStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateBed(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var req CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bed, err := h.service.CreateBed(c.Request.Context(), inventory.CreateBedRequest{
		RoomID: uri.ID,
		Label:  req.Label,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBedResponse(bed))
}

func (h *Handler) ListBeds(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	beds, err := h.service.ListBeds(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BedResponse, len(beds))
	for i, b := range beds {
		items[i] = NewBedResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) SetBedStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bed id"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetBedStatus(c.Request.Context(), uri.ID, inventory.UnitStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
