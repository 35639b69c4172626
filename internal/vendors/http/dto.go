package http

import (
	"time"

	"hotel-pms-backend/internal/pkg/request"
	"hotel-pms-backend/internal/vendors"
)

// CreateVendorRequest defines the payload for registering a vendor.
type CreateVendorRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameVendorRequest defines the payload for renaming a vendor.
type RenameVendorRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListVendorsRequest defines query parameters for listing vendors.
type ListVendorsRequest struct {
	request.ListParams
}

// VendorResponse is the JSON shape of a vendor.
type VendorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVendorResponse builds a VendorResponse.
func NewVendorResponse(v *vendors.Vendor) VendorResponse {
	return VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}
