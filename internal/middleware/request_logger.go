package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"
)

// RequestID reuses an inbound X-Request-ID or generates a new one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID, or "" when the middleware is not installed.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// RequestLogger writes one access-log line per request.
func RequestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", GetRequestID(c),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Errorw("request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warnw("request rejected", fields...)
		default:
			logger.Infow("request served", fields...)
		}
	}
}
