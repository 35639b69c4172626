package account

import (
	"context"
	"errors"
	"strings"

	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/role"
)

// CreateRequest defines fields for creating a staff account.
// CreatorAccountID is nil only for the system-generated first administrator
// of a hotel.
type CreateRequest struct {
	RoleID           int64
	AccountType      identity.AccountType
	HotelID          int64
	DisplayName      string
	Password         string
	CreatorAccountID *string
}

// Service defines business logic for staff accounts.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Account, error)
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	List(ctx context.Context, filter Filter) ([]*Account, int, error)
	// Authenticate verifies credentials and returns the account.
	Authenticate(ctx context.Context, accountID, password string) (*Account, error)
	// Permissions resolves the effective capability set of an account.
	Permissions(ctx context.Context, accountID string) (role.CapabilitySet, error)
	Deactivate(ctx context.Context, accountID string) error
}

type service struct {
	repo         Repository
	roleService  role.Service
	hotelService hotel.Service
	hasher       auth.PasswordHasher
}

// NewService creates a new account service.
func NewService(repo Repository, roleService role.Service, hotelService hotel.Service, hasher auth.PasswordHasher) Service {
	return &service{
		repo:         repo,
		roleService:  roleService,
		hotelService: hotelService,
		hasher:       hasher,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Account, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		return nil, ErrNameRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if !req.AccountType.Valid() {
		return nil, ErrInvalidAccountID
	}

	rl, err := s.roleService.Get(req.RoleID)
	if err != nil {
		return nil, err
	}

	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	if !h.IsActive {
		return nil, hotel.ErrInactive
	}

	if req.CreatorAccountID == nil {
		// System-generated bootstrap account: only the first administrator
		// of a hotel may be minted without a creator.
		if req.AccountType != identity.AccountTypePrimary || rl.Code != identity.RoleCodeHotelAdmin {
			return nil, ErrPermissionDenied
		}
	} else {
		creator, err := s.repo.GetByAccountID(ctx, *req.CreatorAccountID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrPermissionDenied
			}
			return nil, err
		}
		caps, err := s.roleService.Resolve(creator.RoleID)
		if err != nil {
			return nil, err
		}
		if !caps.Has(role.CapManageStaff) {
			return nil, ErrPermissionDenied
		}
	}

	seq, err := s.repo.NextSequence(ctx, rl.Code, h.PublicID)
	if err != nil {
		return nil, err
	}
	if seq > identity.MaxAccountSequence {
		return nil, ErrSequenceExhausted
	}

	accountID, err := identity.NewAccountID(rl.Code, req.AccountType, h.PublicID, seq)
	if err != nil {
		return nil, ErrInvalidAccountID
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	a := &Account{
		AccountID:     accountID.String(),
		RoleID:        rl.ID,
		RoleCode:      rl.Code,
		AccountType:   req.AccountType,
		HotelID:       h.ID,
		HotelPublicID: h.PublicID,
		Sequence:      seq,
		DisplayName:   req.DisplayName,
		PasswordHash:  hash,
		CreatedBy:     req.CreatorAccountID,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByAccountID(ctx context.Context, accountID string) (*Account, error) {
	if _, ok := identity.ParseAccountID(accountID); !ok {
		return nil, ErrInvalidAccountID
	}
	return s.repo.GetByAccountID(ctx, accountID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Account, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Authenticate(ctx context.Context, accountID, password string) (*Account, error) {
	if _, ok := identity.ParseAccountID(accountID); !ok {
		return nil, ErrInvalidCredential
	}

	a, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}
	if !a.IsActive {
		return nil, ErrInvalidCredential
	}
	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredential
	}
	return a, nil
}

func (s *service) Permissions(ctx context.Context, accountID string) (role.CapabilitySet, error) {
	a, err := s.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.roleService.Resolve(a.RoleID)
}

func (s *service) Deactivate(ctx context.Context, accountID string) error {
	a, err := s.GetByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	a.IsActive = false
	return s.repo.Update(ctx, a)
}
