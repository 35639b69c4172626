package http

import (
	"time"

	"hotel-pms-backend/internal/booking"
	"hotel-pms-backend/internal/pkg/request"
)

// dateLayout is the wire format for stay dates. Bookings are date-granular,
// so no time-of-day component crosses the API.
const dateLayout = "2006-01-02"

// CreateBookingRequest defines the payload for creating a booking.
type CreateBookingRequest struct {
	HotelID   int64  `json:"hotel_id" binding:"required,min=1"`
	RoomID    int64  `json:"room_id" binding:"required,min=1"`
	BedID     *int64 `json:"bed_id" binding:"omitempty,min=1"`
	GuestName string `json:"guest_name" binding:"required"`
	Guests    int    `json:"guests" binding:"required,min=1"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
}

// CancelBookingRequest defines the payload for cancelling a booking.
type CancelBookingRequest struct {
	Reason      string `json:"reason"`
	RefundCents *int64 `json:"refund_cents" binding:"omitempty,min=0"`
}

// AvailabilityRequest defines query parameters for the availability probe.
type AvailabilityRequest struct {
	RoomID   int64     `form:"room_id" binding:"required,min=1"`
	BedID    *int64    `form:"bed_id" binding:"omitempty,min=1"`
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	HotelID int64      `form:"hotel_id" binding:"required,min=1"`
	RoomID  int64      `form:"room_id" binding:"omitempty,min=1"`
	Status  string     `form:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled no_show"`
	From    *time.Time `form:"from" time_format:"2006-01-02"`
	To      *time.Time `form:"to" time_format:"2006-01-02"`
}

// BookingResponse is the JSON shape of a booking.
type BookingResponse struct {
	Reference     string `json:"reference"`
	HotelID       int64  `json:"hotel_id"`
	RoomID        int64  `json:"room_id"`
	BedID         *int64 `json:"bed_id,omitempty"`
	GuestName     string `json:"guest_name"`
	Guests        int    `json:"guests"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	CreatedBy     string `json:"created_by"`

	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedInBy  *string    `json:"checked_in_by,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CheckedOutBy *string    `json:"checked_out_by,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy  *string    `json:"cancelled_by,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	RefundCents  *int64     `json:"refund_cents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBookingResponse builds a BookingResponse.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		Reference:     b.Reference,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		BedID:         b.BedID,
		GuestName:     b.GuestName,
		Guests:        b.Guests,
		CheckIn:       b.CheckIn.Format(dateLayout),
		CheckOut:      b.CheckOut.Format(dateLayout),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedBy:     b.CreatedBy,
		ConfirmedAt:   b.ConfirmedAt,
		CheckedInAt:   b.CheckedInAt,
		CheckedInBy:   b.CheckedInBy,
		CheckedOutAt:  b.CheckedOutAt,
		CheckedOutBy:  b.CheckedOutBy,
		CancelledAt:   b.CancelledAt,
		CancelledBy:   b.CancelledBy,
		CancelReason:  b.CancelReason,
		RefundCents:   b.RefundCents,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// AvailabilityResponse answers the availability probe.
type AvailabilityResponse struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// EventResponse is the JSON shape of one audit-trail entry.
type EventResponse struct {
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEventResponse builds an EventResponse.
func NewEventResponse(e *booking.Event) EventResponse {
	return EventResponse{
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Actor:      e.Actor,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}
