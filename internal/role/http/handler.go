package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/pkg/request"
	"hotel-pms-backend/internal/pkg/response"
	"hotel-pms-backend/internal/role"
)

// Handler serves role hierarchy endpoints.
type Handler struct {
	service role.Service
}

// NewHandler creates a new role handler.
func NewHandler(service role.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	r, err := h.service.Create(c.Request.Context(), toCreateRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewRoleResponse(r))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	r, err := h.service.Get(uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewRoleResponse(r))
}

func (h *Handler) List(c *gin.Context) {
	roles := h.service.List()
	items := make([]RoleResponse, len(roles))
	for i, r := range roles {
		items[i] = NewRoleResponse(r)
	}
	c.JSON(http.StatusOK, items)
}

// Permissions returns the effective capability set resolved through the
// role hierarchy.
func (h *Handler) Permissions(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	caps, err := h.service.Resolve(uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role_id": uri.ID, "permissions": caps.List()})
}

// Reload re-reads the role graph from storage.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.service.Reload(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
