package hotel

import (
	"net/http"
	"strconv"
	"time"

	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(apperror.KindNotFound, http.StatusNotFound, "hotel not found")
	ErrNameRequired = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "hotel name is required")
	ErrInactive     = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "hotel is deactivated")
)

// Hotel is a property. PublicID is the immutable 10-digit identifier minted
// at onboarding; hotels are deactivated, never deleted.
type Hotel struct {
	ID        int64
	PublicID  string
	VendorID  *int64
	Name      string
	City      string
	IsActive  bool
	CreatedAt time.Time
}

// EntityID is the ownership prefix for booking references of this hotel:
// the owning vendor's id if present, else the hotel's public id as a number.
func (h *Hotel) EntityID() int64 {
	if h.VendorID != nil {
		return *h.VendorID
	}
	n, _ := strconv.ParseInt(h.PublicID, 10, 64)
	return n
}

// Filter defines filter options for listing hotels.
type Filter struct {
	VendorID *int64
	Page     int
	PageSize int
}
