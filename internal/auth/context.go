package auth

import "github.com/gin-gonic/gin"

// GetAccountID returns the authenticated account's id or empty string.
func GetAccountID(c *gin.Context) string {
	if v, ok := c.Get("accountID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRoleID returns the authenticated account's role id or zero.
func GetRoleID(c *gin.Context) int64 {
	if v, ok := c.Get("roleID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
