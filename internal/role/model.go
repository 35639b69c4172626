package role

import (
	"net/http"
	"sort"
	"time"

	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(apperror.KindNotFound, http.StatusNotFound, "role not found")
	ErrInvalidHierarchy  = apperror.New(apperror.KindInvalidHierarchy, http.StatusInternalServerError, "invalid role hierarchy")
	ErrUnknownCapability = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "unknown capability token")
	ErrSubRolesForbidden = apperror.New(apperror.KindForbidden, http.StatusForbidden, "role may not create sub-roles")
	ErrNameRequired      = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "role name is required")
	ErrInvalidRole       = apperror.New(apperror.KindInvalidInput, http.StatusBadRequest, "invalid role type or code")
)

// RoleType places a role in one of the four root families.
type RoleType string

const (
	TypeSystem     RoleType = "system"
	TypeVendor     RoleType = "vendor"
	TypeHotelAdmin RoleType = "hotel_admin"
	TypeHotelStaff RoleType = "hotel_staff"
)

// Valid reports whether the role type belongs to the closed enumeration.
func (t RoleType) Valid() bool {
	switch t {
	case TypeSystem, TypeVendor, TypeHotelAdmin, TypeHotelStaff:
		return true
	}
	return false
}

// Capability is a single permission token. The set is closed so the
// resolver's set algebra stays statically checkable.
type Capability string

const (
	// CapAll is the wildcard: granting it short-circuits to every capability.
	CapAll Capability = "*"

	CapManageVendors   Capability = "vendors.manage"
	CapManageHotels    Capability = "hotels.manage"
	CapManageRoles     Capability = "roles.manage"
	CapManageStaff     Capability = "staff.manage"
	CapManageInventory Capability = "inventory.manage"
	CapCreateBooking   Capability = "bookings.create"
	CapConfirmBooking  Capability = "bookings.confirm"
	CapCheckIn         Capability = "bookings.check_in"
	CapCheckOut        Capability = "bookings.check_out"
	CapCancelBooking   Capability = "bookings.cancel"
	CapMarkNoShow      Capability = "bookings.no_show"
	CapViewReports     Capability = "reports.view"
)

// AllCapabilities enumerates every concrete capability (the wildcard is not
// itself a capability).
var AllCapabilities = []Capability{
	CapManageVendors,
	CapManageHotels,
	CapManageRoles,
	CapManageStaff,
	CapManageInventory,
	CapCreateBooking,
	CapConfirmBooking,
	CapCheckIn,
	CapCheckOut,
	CapCancelBooking,
	CapMarkNoShow,
	CapViewReports,
}

var capabilities = func() map[Capability]bool {
	m := make(map[Capability]bool, len(AllCapabilities))
	for _, c := range AllCapabilities {
		m[c] = true
	}
	return m
}()

// Valid reports whether c is a known concrete capability or the wildcard.
func (c Capability) Valid() bool {
	return c == CapAll || capabilities[c]
}

// CapabilitySet is the resolved set of capability tokens for a role.
type CapabilitySet map[Capability]struct{}

// Has reports whether the set grants the capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Add inserts a capability into the set.
func (s CapabilitySet) Add(c Capability) {
	s[c] = struct{}{}
}

// List returns the capabilities in stable sorted order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Role is a node in the role forest. HierarchyLevel is the depth from the
// root of its tree (roots sit at level 0).
type Role struct {
	ID                int64
	Name              string
	Type              RoleType
	Code              identity.RoleCode
	ParentID          *int64
	HierarchyLevel    int
	Permissions       []Capability
	Restrictions      []Capability
	CanCreateSubRoles bool
	CreatedAt         time.Time
}
