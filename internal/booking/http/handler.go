package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/booking"
	"hotel-pms-backend/internal/pkg/response"
)

// Handler serves booking lifecycle endpoints.
type Handler struct {
	service booking.Service
}

// NewHandler creates a new booking handler.
func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be a YYYY-MM-DD date"})
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be a YYYY-MM-DD date"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		HotelID:   req.HotelID,
		RoomID:    req.RoomID,
		BedID:     req.BedID,
		GuestName: req.GuestName,
		Guests:    req.Guests,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedBy: auth.GetAccountID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	bookings, total, err := h.service.List(c.Request.Context(), booking.Filter{
		HotelID:  req.HotelID,
		RoomID:   req.RoomID,
		Status:   req.Status,
		From:     req.From,
		To:       req.To,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPage(items, total, req.Page, req.PageSize))
}

// CheckAvailability probes a unit's availability without reserving anything.
func (h *Handler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	avail, err := h.service.CheckAvailability(c.Request.Context(), req.RoomID, req.BedID, req.CheckIn, req.CheckOut)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{
		Available: avail.Available,
		Conflicts: avail.Conflicts,
	})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, booking.StatusConfirmed, "", nil)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.transition(c, booking.StatusCheckedIn, "", nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.transition(c, booking.StatusCheckedOut, "", nil)
}

func (h *Handler) MarkNoShow(c *gin.Context) {
	h.transition(c, booking.StatusNoShow, "", nil)
}

// Cancel takes an optional reason and refund amount before transitioning.
func (h *Handler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	h.transition(c, booking.StatusCancelled, req.Reason, req.RefundCents)
}

func (h *Handler) Events(c *gin.Context) {
	events, err := h.service.Events(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = NewEventResponse(e)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) transition(c *gin.Context, target booking.Status, reason string, refundCents *int64) {
	b, err := h.service.Transition(c.Request.Context(), booking.TransitionRequest{
		Reference:   c.Param("reference"),
		Target:      target,
		Actor:       auth.GetAccountID(c),
		Reason:      reason,
		RefundCents: refundCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}
