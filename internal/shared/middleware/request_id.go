package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID gắn một ID duy nhất cho mỗi request để correlate logs.
// Tôn trọng ID do upstream proxy gửi sẵn.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
