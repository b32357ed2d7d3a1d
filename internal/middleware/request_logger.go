package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkup-dev/linkup/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and emits one structured log
// line on completion.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		logger.Info("request completed",
			"request_id", requestID,
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
