package inventory

import (
	"context"
	"strings"
)

// CreateRoomRequest defines fields for adding a room.
type CreateRoomRequest struct {
	HotelID   int64
	Number    string
	Dormitory bool
}

// CreateBedRequest defines fields for adding a bed to a dormitory room.
type CreateBedRequest struct {
	RoomID int64
	Label  string
}

// Service defines business logic for inventory units.
type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoom(ctx context.Context, id int64) (*Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error)
	SetRoomStatus(ctx context.Context, id int64, status UnitStatus) error

	CreateBed(ctx context.Context, req CreateBedRequest) (*Bed, error)
	ListBeds(ctx context.Context, roomID int64) ([]*Bed, error)
	SetBedStatus(ctx context.Context, id int64, status UnitStatus) error

	// ResolveUnit maps a (room, optional bed) target onto the accommodation
	// unit a booking would occupy. Dormitory rooms are booked per bed and
	// cannot be taken whole. A bed inherits unavailability from its room:
	// if the room is in maintenance, so is every bed in it.
	ResolveUnit(ctx context.Context, roomID int64, bedID *int64) (*Unit, error)
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		return nil, ErrNumberRequired
	}

	room := &Room{
		HotelID:   req.HotelID,
		Number:    req.Number,
		Dormitory: req.Dormitory,
		Status:    StatusAvailable,
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) GetRoom(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *service) ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, int, error) {
	return s.repo.ListRooms(ctx, filter)
}

func (s *service) SetRoomStatus(ctx context.Context, id int64, status UnitStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateRoomStatus(ctx, id, status)
}

func (s *service) CreateBed(ctx context.Context, req CreateBedRequest) (*Bed, error) {
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return nil, ErrNumberRequired
	}

	room, err := s.repo.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Dormitory {
		return nil, ErrNotDormitory
	}

	bed := &Bed{
		RoomID: req.RoomID,
		Label:  req.Label,
		Status: StatusAvailable,
	}
	if err := s.repo.CreateBed(ctx, bed); err != nil {
		return nil, err
	}
	return bed, nil
}

func (s *service) ListBeds(ctx context.Context, roomID int64) ([]*Bed, error) {
	return s.repo.ListBeds(ctx, roomID)
}

func (s *service) SetBedStatus(ctx context.Context, id int64, status UnitStatus) error {
	if !status.ValidForBed() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateBedStatus(ctx, id, status)
}

func (s *service) ResolveUnit(ctx context.Context, roomID int64, bedID *int64) (*Unit, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if bedID == nil {
		if room.Dormitory {
			return nil, ErrDormitoryRoom
		}
		return &Unit{
			AccommodationID: room.ID,
			HotelID:         room.HotelID,
			RoomID:          room.ID,
			Status:          room.Status,
		}, nil
	}

	bed, err := s.repo.GetBed(ctx, *bedID)
	if err != nil {
		return nil, err
	}
	if bed.RoomID != room.ID {
		return nil, ErrBedRoomMismatch
	}

	status := bed.Status
	if !room.Status.Bookable() {
		status = room.Status
	}
	return &Unit{
		AccommodationID: bed.ID,
		HotelID:         room.HotelID,
		RoomID:          room.ID,
		BedID:           &bed.ID,
		Status:          status,
	}, nil
}
