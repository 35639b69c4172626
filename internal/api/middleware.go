package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/role"
)

// RequireCapability ensures the authenticated account's role resolves to the
// given capability. It MUST be used after auth.AuthRequired middleware.
func RequireCapability(roleService role.Service, cap role.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID := auth.GetRoleID(c)
		if roleID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		caps, err := roleService.Resolve(roleID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role not found"})
			return
		}

		if !caps.Has(cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: missing capability " + string(cap),
			})
			return
		}

		c.Next()
	}
}
