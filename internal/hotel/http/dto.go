package http

import (
	"time"

	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/pkg/request"
)

// CreateHotelRequest defines the payload for onboarding a hotel.
type CreateHotelRequest struct {
	Name     string `json:"name" binding:"required"`
	City     string `json:"city"`
	VendorID *int64 `json:"vendor_id" binding:"omitempty,min=1"`
}

// UpdateHotelRequest defines the mutable fields of a hotel.
type UpdateHotelRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	IsActive *bool   `json:"is_active"`
}

// ListHotelsRequest defines query parameters for listing hotels.
type ListHotelsRequest struct {
	request.ListParams
	VendorID *int64 `form:"vendor_id" binding:"omitempty,min=1"`
}

// HotelResponse is the JSON shape of a hotel. HotelID is the immutable
// 10-digit public identifier.
type HotelResponse struct {
	ID        int64     `json:"id"`
	HotelID   string    `json:"hotel_id"`
	VendorID  *int64    `json:"vendor_id,omitempty"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHotelResponse builds a HotelResponse.
func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		HotelID:   h.PublicID,
		VendorID:  h.VendorID,
		Name:      h.Name,
		City:      h.City,
		IsActive:  h.IsActive,
		CreatedAt: h.CreatedAt,
	}
}
