package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/shared/response"
)

const userContextKey = "current_user"

// SessionResolver đổi opaque session token lấy user. user.Service implement
// interface này; middleware không cần biết gì thêm về auth flow.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*user.User, error)
}

// Auth đọc session token từ cookie hoặc Authorization header và gắn user
// vào request context. Thiếu token hoặc token hết hạn -> 401, request dừng.
func Auth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		u, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, user.ErrSessionExpired) {
				response.Unauthorized(c, "Session expired")
			} else {
				response.Unauthorized(c, "Invalid session")
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, u)
		c.Next()
	}
}

// CurrentUser lấy user đã được Auth middleware gắn vào. Nil nếu route
// không đi qua Auth.
func CurrentUser(c *gin.Context) *user.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}

func extractToken(c *gin.Context) string {
	// Cookie trước - browser client dùng cookie.
	if token, err := c.Cookie("session_token"); err == nil && token != "" {
		return token
	}
	// Bearer header cho API clients.
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
