package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	headerOwnerID   = "X-Owner-ID"

	ctxRequestID = "request_id"
	ctxOwnerID   = "owner_id"
)

// requestLogger tags every request with a request id and writes one access log line.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestID, requestID)
		c.Header(headerRequestID, requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			slog.String(ctxRequestID, requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

// owner resolves the cart owner from X-Owner-ID, defaulting to defaultOwnerID.
func owner(defaultOwnerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(headerOwnerID)
		if ownerID == "" {
			ownerID = defaultOwnerID
		}
		c.Set(ctxOwnerID, ownerID)
		c.Next()
	}
}
