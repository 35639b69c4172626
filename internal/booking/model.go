package booking

import (
	"net/http"
	"time"

	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, http.StatusNotFound, "booking not found")
	ErrInvalidInput        = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "invalid booking input")
	ErrInvalidDateRange    = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "check-out must be after check-in")
	ErrRoomNotAvailable    = apperror.New(apperror.KindNotAvailable, http.StatusConflict, "accommodation not available for the requested dates")
	ErrIllegalTransition   = apperror.New(apperror.KindIllegalTransition, http.StatusConflict, "illegal booking status transition")
	ErrGenerationExhausted = apperror.New(apperror.KindGenerationExhausted, http.StatusServiceUnavailable, "could not mint a unique booking reference")
	ErrUnitBusy            = apperror.New(apperror.KindUnavailable, http.StatusServiceUnavailable, "accommodation is busy, retry shortly")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Valid reports whether the status belongs to the closed enumeration.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// HoldsInventory reports whether a booking in this status blocks other
// reservations from the same unit for overlapping dates.
func (s Status) HoldsInventory() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

// legalTransitions is the complete transition table; everything absent here
// is illegal.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransitionTo reports whether target is a legal next status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PaymentStatus tracks payment independently of the lifecycle status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Valid reports whether the payment status belongs to the closed enumeration.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

// Booking is a reservation of an accommodation unit for a half-open
// [check_in, check_out) date range. Reference, hotel, unit and the original
// date range are immutable; date or unit changes are cancel + recreate.
// Bookings are never deleted, cancellation is a status transition.
type Booking struct {
	ID              int64
	Reference       string
	HotelID         int64
	RoomID          int64
	BedID           *int64
	AccommodationID int64
	GuestName       string
	Guests          int
	CheckIn         time.Time
	CheckOut        time.Time
	Status          Status
	PaymentStatus   PaymentStatus
	CreatedBy       string

	ConfirmedAt  *time.Time
	CheckedInAt  *time.Time
	CheckedInBy  *string
	CheckedOutAt *time.Time
	CheckedOutBy *string
	CancelledAt  *time.Time
	CancelledBy  *string
	CancelReason *string
	RefundCents  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is one audit-trail entry: who moved a booking between which
// statuses, and when.
type Event struct {
	ID         int64
	BookingID  int64
	FromStatus Status
	ToStatus   Status
	Actor      string
	Note       string
	CreatedAt  time.Time
}

// Filter defines filter options for listing bookings.
type Filter struct {
	HotelID int64
	RoomID  int64
	Status  string
	From    *time.Time
	To      *time.Time

	Page     int
	PageSize int
}
