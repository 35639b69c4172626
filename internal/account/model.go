package account

import (
	"net/http"
	"time"

	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(apperror.KindNotFound, http.StatusNotFound, "account not found")
	ErrInvalidAccountID  = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "malformed account id")
	ErrInvalidCredential = apperror.New(apperror.KindUnauthorized, http.StatusUnauthorized, "invalid account id or password")
	ErrPermissionDenied  = apperror.New(apperror.KindForbidden, http.StatusForbidden, "permission denied")
	ErrNameRequired      = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "display name is required")
	ErrPasswordRequired  = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "password is required")
	ErrSequenceExhausted = apperror.New(apperror.KindGenerationExhausted, http.StatusServiceUnavailable, "account sequence exhausted for role and hotel")
	ErrAlreadyExists     = apperror.New(apperror.KindConflict, http.StatusConflict, "account id already exists")
)

// Account is a staff login belonging to exactly one hotel. AccountID is the
// structured 18-digit identifier; CreatedBy is the creator's account id,
// nil for the system-generated first administrator.
type Account struct {
	ID            int64
	AccountID     string
	RoleID        int64
	RoleCode      identity.RoleCode
	AccountType   identity.AccountType
	HotelID       int64
	HotelPublicID string
	Sequence      int
	DisplayName   string
	PasswordHash  string
	CreatedBy     *string
	IsActive      bool
	CreatedAt     time.Time
}

// Filter defines filter options for listing accounts.
type Filter struct {
	HotelID  int64
	RoleCode string
	Page     int
	PageSize int
}
