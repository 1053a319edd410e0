package middleware

import (
	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/shared/response"
)

// RequireEditor chặn viewer khỏi mọi write endpoint. Phải đứng SAU Auth.
func RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if !u.Role.CanEdit() {
			response.Forbidden(c, "Editor role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gate cho user management và audit export.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if u.Role != user.RoleAdmin {
			response.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
