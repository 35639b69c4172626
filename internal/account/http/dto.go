package http

import (
	"time"

	"hotel-pms-backend/internal/account"
	"hotel-pms-backend/internal/identity"
	"hotel-pms-backend/internal/pkg/request"
)

// LoginRequest defines the credentials payload.
type LoginRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

// CreateAccountRequest defines the payload for creating a staff account.
type CreateAccountRequest struct {
	RoleID      int64  `json:"role_id" binding:"required,min=1"`
	AccountType int    `json:"account_type" binding:"required,min=1,max=3"`
	HotelID     int64  `json:"hotel_id" binding:"required,min=1"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// ListAccountsRequest defines query parameters for listing accounts.
type ListAccountsRequest struct {
	request.ListParams
	HotelID  int64  `form:"hotel_id" binding:"required,min=1"`
	RoleCode string `form:"role_code" binding:"omitempty,len=2"`
}

// AccountResponse is the JSON shape of a staff account. The password hash
// never leaves the service.
type AccountResponse struct {
	AccountID   string    `json:"account_id"`
	RoleID      int64     `json:"role_id"`
	RoleCode    string    `json:"role_code"`
	AccountType int       `json:"account_type"`
	HotelID     string    `json:"hotel_id"`
	Sequence    int       `json:"sequence"`
	DisplayName string    `json:"display_name"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAccountResponse builds an AccountResponse.
func NewAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		RoleID:      a.RoleID,
		RoleCode:    string(a.RoleCode),
		AccountType: int(a.AccountType),
		HotelID:     a.HotelPublicID,
		Sequence:    a.Sequence,
		DisplayName: a.DisplayName,
		CreatedBy:   a.CreatedBy,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ParsedAccountIDResponse is the decoded form of an account id.
type ParsedAccountIDResponse struct {
	RoleCode    string `json:"role_code"`
	AccountType int    `json:"account_type"`
	HotelID     string `json:"hotel_id"`
	Sequence    int    `json:"sequence"`
}

// NewParsedAccountIDResponse builds a ParsedAccountIDResponse.
func NewParsedAccountIDResponse(id identity.AccountID) ParsedAccountIDResponse {
	return ParsedAccountIDResponse{
		RoleCode:    string(id.RoleCode),
		AccountType: int(id.AccountType),
		HotelID:     id.HotelID,
		Sequence:    id.Sequence,
	}
}
