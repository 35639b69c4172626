package http

import (
	"time"

	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/role"
)

// CreateRoleRequest defines the payload for creating a sub-role.
type CreateRoleRequest struct {
	Name              string   `json:"name" binding:"required"`
	Type              string   `json:"type" binding:"required,oneof=system vendor hotel_admin hotel_staff"`
	Code              string   `json:"code" binding:"required,len=2"`
	ParentID          int64    `json:"parent_id" binding:"required,min=1"`
	Permissions       []string `json:"permissions"`
	Restrictions      []string `json:"restrictions"`
	CanCreateSubRoles bool     `json:"can_create_sub_roles"`
}

// RoleResponse is the JSON shape of a role node.
type RoleResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Code              string    `json:"code"`
	ParentID          *int64    `json:"parent_id,omitempty"`
	HierarchyLevel    int       `json:"hierarchy_level"`
	Permissions       []string  `json:"permissions"`
	Restrictions      []string  `json:"restrictions"`
	CanCreateSubRoles bool      `json:"can_create_sub_roles"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewRoleResponse builds a RoleResponse.
func NewRoleResponse(r *role.Role) RoleResponse {
	return RoleResponse{
		ID:                r.ID,
		Name:              r.Name,
		Type:              string(r.Type),
		Code:              string(r.Code),
		ParentID:          r.ParentID,
		HierarchyLevel:    r.HierarchyLevel,
		Permissions:       capStrings(r.Permissions),
		Restrictions:      capStrings(r.Restrictions),
		CanCreateSubRoles: r.CanCreateSubRoles,
		CreatedAt:         r.CreatedAt,
	}
}

func capStrings(caps []role.Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return out
}

func toCaps(tokens []string) []role.Capability {
	out := make([]role.Capability, len(tokens))
	for i, t := range tokens {
		out[i] = role.Capability(t)
	}
	return out
}

func toCreateRequest(req CreateRoleRequest) role.CreateRequest {
	return role.CreateRequest{
		Name:              req.Name,
		Type:              role.RoleType(req.Type),
		Code:              identity.RoleCode(req.Code),
		ParentID:          req.ParentID,
		Permissions:       toCaps(req.Permissions),
		Restrictions:      toCaps(req.Restrictions),
		CanCreateSubRoles: req.CanCreateSubRoles,
	}
}
