package inventory

import (
	"net/http"
	"time"

	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrRoomNotFound    = apperror.New(apperror.KindNotFound, http.StatusNotFound, "room not found")
	ErrBedNotFound     = apperror.New(apperror.KindNotFound, http.StatusNotFound, "bed not found")
	ErrBedRoomMismatch = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "bed does not belong to room")
	ErrInvalidStatus   = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "invalid unit status")
	ErrNumberRequired  = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "room number is required")
	ErrDormitoryRoom   = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "dormitory rooms are booked per bed")
	ErrNotDormitory    = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "beds can only be added to dormitory rooms")
)

// UnitStatus is the static state of an accommodation unit. Whether a unit
// is booked for given dates is derived from reservations, never stored here.
type UnitStatus string

const (
	StatusAvailable   UnitStatus = "available"
	StatusOccupied    UnitStatus = "occupied"
	StatusMaintenance UnitStatus = "maintenance"
	StatusOutOfOrder  UnitStatus = "out_of_order"
)

// Valid reports whether the status is allowed for a room.
func (s UnitStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfOrder:
		return true
	}
	return false
}

// ValidForBed reports whether the status is allowed for a bed; beds have no
// out_of_order state.
func (s UnitStatus) ValidForBed() bool {
	return s.Valid() && s != StatusOutOfOrder
}

// Bookable reports whether the static status permits taking reservations.
func (s UnitStatus) Bookable() bool {
	return s == StatusAvailable || s == StatusOccupied
}

// Room is an inventory unit; a dormitory room is booked per bed.
type Room struct {
	ID        int64
	HotelID   int64
	Number    string
	Dormitory bool
	Status    UnitStatus
	CreatedAt time.Time
}

// Bed is an individually bookable unit inside a dormitory room.
type Bed struct {
	ID        int64
	RoomID    int64
	Label     string
	Status    UnitStatus
	CreatedAt time.Time
}

// Unit is the resolved accommodation a booking targets: a room, or a single
// bed within one. AccommodationID is the bed id when BedID is set, else the
// room id.
type Unit struct {
	AccommodationID int64
	HotelID         int64
	RoomID          int64
	BedID           *int64
	Status          UnitStatus
}

// RoomFilter defines filter options for listing rooms.
type RoomFilter struct {
	HotelID  int64
	Status   string
	Page     int
	PageSize int
}
