package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the key used to store the ID in the gin context
	RequestIDKey = "request_id"
)

// RequestID ensures each request has a request ID.
// An incoming X-Request-ID header is reused, otherwise a new UUID is generated.
// The ID is echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context, or "" if not set
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
