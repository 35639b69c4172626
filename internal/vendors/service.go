package vendors

import (
	"context"
	"strings"
)

// Service defines business logic for vendors.
type Service interface {
	Create(ctx context.Context, name string) (*Vendor, error)
	GetByID(ctx context.Context, id int64) (*Vendor, error)
	List(ctx context.Context, filter Filter) ([]*Vendor, int, error)
	Rename(ctx context.Context, id int64, name string) (*Vendor, error)
	// Deactivate retires a vendor; vendors are never deleted.
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new vendor service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	v := &Vendor{Name: name, IsActive: true}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Vendor, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Rename(ctx context.Context, id int64, name string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Name = name
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	v.IsActive = false
	return s.repo.Update(ctx, v)
}
