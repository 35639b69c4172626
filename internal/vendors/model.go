package vendors

import (
	"net/http"
	"time"

	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(apperror.KindNotFound, http.StatusNotFound, "vendor not found")
	ErrNameRequired = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "vendor name is required")
)

// Vendor is a property-owning company; a hotel optionally belongs to one.
type Vendor struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Filter defines filter options for listing vendors.
type Filter struct {
	Page     int
	PageSize int
}
