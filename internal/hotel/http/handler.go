package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/pkg/request"
	"hotel-pms-backend/internal/pkg/response"
)

// Handler serves hotel endpoints.
type Handler struct {
	service hotel.Service
}

// NewHandler creates a new hotel handler.
func NewHandler(service hotel.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), hotel.CreateRequest{
		Name:     req.Name,
		City:     req.City,
		VendorID: req.VendorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewHotelResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(found))
}

// GetByPublicID looks a hotel up by its 10-digit public identifier.
func (h *Handler) GetByPublicID(c *gin.Context) {
	found, err := h.service.GetByPublicID(c.Request.Context(), c.Param("hotel_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(found))
}

func (h *Handler) List(c *gin.Context) {
	var req ListHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	hotels, total, err := h.service.List(c.Request.Context(), hotel.Filter{
		VendorID: req.VendorID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, v := range hotels {
		items[i] = NewHotelResponse(v)
	}
	c.JSON(http.StatusOK, response.NewPage(items, total, req.Page, req.PageSize))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, hotel.UpdateRequest{
		Name:     req.Name,
		City:     req.City,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(updated))
}

func (h *Handler) Deactivate(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
