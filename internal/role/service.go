package role

import (
	"context"
	"strings"
	"sync"

	"hotel-pms-backend/internal/identity"
)

// CreateRequest defines fields for creating a sub-role.
type CreateRequest struct {
	Name              string
	Type              RoleType
	Code              identity.RoleCode
	ParentID          int64
	Permissions       []Capability
	Restrictions      []Capability
	CanCreateSubRoles bool
}

// Service owns the loaded role forest. Resolution is a pure function over
// the forest currently in memory; mutations reload it.
type Service interface {
	// Resolve computes the effective permission set for a role.
	Resolve(roleID int64) (CapabilitySet, error)
	// Get returns a role node from the loaded forest.
	Get(roleID int64) (*Role, error)
	List() []*Role
	Create(ctx context.Context, req CreateRequest) (*Role, error)
	// Reload re-reads the role graph from the store, rejecting an invalid
	// hierarchy without replacing the current forest.
	Reload(ctx context.Context) error
}

type service struct {
	repo Repository

	mu     sync.RWMutex
	forest *Forest
}

// NewService loads the role forest from the repository. An invalid
// hierarchy is fatal here, at load time, not at request time.
func NewService(ctx context.Context, repo Repository) (Service, error) {
	s := &service{repo: repo}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Reload(ctx context.Context) error {
	roles, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	forest, err := LoadForest(roles)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.forest = forest
	s.mu.Unlock()
	return nil
}

func (s *service) Resolve(roleID int64) (CapabilitySet, error) {
	s.mu.RLock()
	forest := s.forest
	s.mu.RUnlock()
	return forest.Resolve(roleID)
}

func (s *service) Get(roleID int64) (*Role, error) {
	s.mu.RLock()
	forest := s.forest
	s.mu.RUnlock()

	r, ok := forest.Get(roleID)
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *service) List() []*Role {
	s.mu.RLock()
	forest := s.forest
	s.mu.RUnlock()
	return forest.List()
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Role, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	parent, err := s.Get(req.ParentID)
	if err != nil {
		return nil, err
	}
	if !parent.CanCreateSubRoles {
		return nil, ErrSubRolesForbidden
	}

	if !req.Type.Valid() || !req.Code.Valid() {
		return nil, ErrInvalidRole
	}
	for _, c := range req.Permissions {
		if !c.Valid() {
			return nil, ErrUnknownCapability
		}
	}
	for _, c := range req.Restrictions {
		if c == CapAll || !c.Valid() {
			return nil, ErrUnknownCapability
		}
	}

	r := &Role{
		Name:              req.Name,
		Type:              req.Type,
		Code:              req.Code,
		ParentID:          &parent.ID,
		HierarchyLevel:    parent.HierarchyLevel + 1,
		Permissions:       req.Permissions,
		Restrictions:      req.Restrictions,
		CanCreateSubRoles: req.CanCreateSubRoles,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	// Fold the new role into the in-memory forest.
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}
