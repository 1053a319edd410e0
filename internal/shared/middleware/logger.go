package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/pkg/logger"
)

// Logger ghi một structured log line cho mỗi request sau khi hoàn thành.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if id, ok := c.Get("request_id"); ok {
			fields["request_id"] = id
		}
		if u := CurrentUser(c); u != nil {
			fields["user_id"] = u.UserID
		}

		if c.Writer.Status() >= 500 {
			logger.Warn("request completed with server error", fields)
			return
		}
		logger.Info("request completed", fields)
	}
}
