package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/shared/response"
	"gogarvis-backend/pkg/logger"
)

// Recovery bắt panic từ handler, log và trả 500 thay vì drop connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", r))
				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
