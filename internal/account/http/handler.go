package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/account"
	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/pkg/response"
)

// Handler serves staff account endpoints.
type Handler struct {
	service    account.Service
	jwtManager *auth.JWTManager
}

// NewHandler creates a new account handler.
func NewHandler(service account.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{service: service, jwtManager: jwtManager}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := h.service.Authenticate(c.Request.Context(), req.AccountID, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(a.AccountID, a.RoleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Account:     NewAccountResponse(a),
	})
}

// Create registers a staff account. The authenticated caller is recorded as
// the creator and must hold the staff.manage capability.
func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	creator := auth.GetAccountID(c)

	a, err := h.service.Create(c.Request.Context(), account.CreateRequest{
		RoleID:           req.RoleID,
		AccountType:      identity.AccountType(req.AccountType),
		HotelID:          req.HotelID,
		DisplayName:      req.DisplayName,
		Password:         req.Password,
		CreatorAccountID: &creator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewAccountResponse(a))
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.GetByAccountID(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAccountResponse(a))
}

// Parse decodes an account id without touching storage. Malformed input is
// a validity answer, not an error.
func (h *Handler) Parse(c *gin.Context) {
	id, ok := identity.ParseAccountID(c.Param("account_id"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "parsed": NewParsedAccountIDResponse(id)})
}

func (h *Handler) List(c *gin.Context) {
	var req ListAccountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	accounts, total, err := h.service.List(c.Request.Context(), account.Filter{
		HotelID:  req.HotelID,
		RoleCode: req.RoleCode,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		items[i] = NewAccountResponse(a)
	}
	c.JSON(http.StatusOK, response.NewPage(items, total, req.Page, req.PageSize))
}

// Permissions returns the caller's effective capability set.
func (h *Handler) Permissions(c *gin.Context) {
	caps, err := h.service.Permissions(c.Request.Context(), auth.GetAccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": caps.List()})
}

func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("account_id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
