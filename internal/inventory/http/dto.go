package http

import (
	"time"

	"hotel-pms-backend/internal/inventory"
	"hotel-pms-backend/internal/pkg/request"
)

// CreateRoomRequest defines the payload for adding a room.
type CreateRoomRequest struct {
	HotelID   int64  `json:"hotel_id" binding:"required,min=1"`
	Number    string `json:"number" binding:"required"`
	Dormitory bool   `json:"dormitory"`
}

// CreateBedRequest defines the payload for adding a bed.
type CreateBedRequest struct {
	Label string `json:"label" binding:"required"`
}

// SetStatusRequest defines the payload for changing a unit's static status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied maintenance out_of_order"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	HotelID int64  `form:"hotel_id" binding:"required,min=1"`
	Status  string `form:"status" binding:"omitempty,oneof=available occupied maintenance out_of_order"`
}

// RoomResponse is the JSON shape of a room.
type RoomResponse struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	Number    string    `json:"number"`
	Dormitory bool      `json:"dormitory"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRoomResponse builds a RoomResponse.
func NewRoomResponse(r *inventory.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Number:    r.Number,
		Dormitory: r.Dormitory,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// BedResponse is the JSON shape of a bed.
type BedResponse struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBedResponse builds a BedResponse.
func NewBedResponse(b *inventory.Bed) BedResponse {
	return BedResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Label:     b.Label,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
