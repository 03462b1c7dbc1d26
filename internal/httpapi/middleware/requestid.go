package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kimtth/chatroom-api/internal/common"
)

const RequestIDKey = "request_id"

// RequestID tags each request with a ULID, honoring one supplied by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			if generated, err := common.NewULID(); err == nil {
				id = generated
			}
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
