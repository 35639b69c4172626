package hotel

import (
	"context"
	"errors"
	"strings"

	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/vendors"
)

// CreateRequest defines fields for onboarding a hotel.
type CreateRequest struct {
	Name     string
	City     string
	VendorID *int64
}

// UpdateRequest defines the fields that can be updated after onboarding.
type UpdateRequest struct {
	Name     *string
	City     *string
	IsActive *bool
}

// Service defines business logic for hotels.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Hotel, error)
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	GetByPublicID(ctx context.Context, publicID string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Hotel, error)
	// Deactivate retires a hotel; hotels are never deleted.
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	repo          Repository
	vendorService vendors.Service
}

// NewService creates a new hotel service.
func NewService(repo Repository, vendorService vendors.Service) Service {
	return &service{repo: repo, vendorService: vendorService}
}

// Create onboards a hotel, minting its immutable 10-digit public id from
// the allocation sequence.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Hotel, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	if req.VendorID != nil {
		if _, err := s.vendorService.GetByID(ctx, *req.VendorID); err != nil {
			return nil, err
		}
	}

	seq, err := s.repo.NextPublicSeq(ctx)
	if err != nil {
		return nil, err
	}
	publicID, err := identity.FormatHotelID(seq)
	if err != nil {
		return nil, err
	}

	h := &Hotel{
		PublicID: publicID,
		VendorID: req.VendorID,
		Name:     req.Name,
		City:     strings.TrimSpace(req.City),
		IsActive: true,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByPublicID(ctx context.Context, publicID string) (*Hotel, error) {
	if !identity.ValidHotelID(publicID) {
		return nil, ErrNotFound
	}
	return s.repo.GetByPublicID(ctx, publicID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		h.Name = name
	}
	if req.City != nil {
		h.City = strings.TrimSpace(*req.City)
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !h.IsActive {
		return nil
	}
	h.IsActive = false
	err = s.repo.Update(ctx, h)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
