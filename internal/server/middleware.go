package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/internal/requestid"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

// keyExtractor pulls the caller-supplied API key from the request.
type keyExtractor func(c *gin.Context) string

// headerKeyExtractor reads the key from the Authorization header, stripping
// an optional "ApiKey" prefix the voice platform sends.
func headerKeyExtractor(c *gin.Context) string {
	raw := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.ReplaceAll(raw, "ApiKey", ""))
}

// queryKeyExtractor reads the key from the api_key query parameter, used by
// the browser-facing dashboard.
func queryKeyExtractor(c *gin.Context) string {
	return strings.TrimSpace(c.Query("api_key"))
}

// apiKeyAuth gates a route group on the configured shared secret. The order
// matters: a missing caller key is the caller's fault (401), a missing
// server-side secret is ours (500), and only then is the comparison made.
func (s *Server) apiKeyAuth(extract keyExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := extract(c)
		if supplied == "" {
			s.abortWithError(c, fmt.Errorf("%w: API Key is required. Add API-Key header.", apperrors.ErrUnauthorized))
			return
		}

		expected := strings.TrimSpace(s.cfg.Auth.APIKey)
		if expected == "" {
			s.abortWithError(c, fmt.Errorf("%w: API Key not configured on server", apperrors.ErrMisconfigured))
			return
		}

		if supplied != expected {
			s.abortWithError(c, fmt.Errorf("%w: Invalid API Key", apperrors.ErrUnauthorized))
			return
		}

		c.Next()
	}
}

// requestIDMiddleware assigns each request a UUID, propagated through the
// context so scoped loggers pick it up, and echoed in the response header.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := requestid.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware emits one structured log line per request and feeds the
// prometheus counters.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := utils.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		observer.ObserveHTTPRequest(c.Request.Method, route, status, duration)

		logFn := s.logger.Info
		if status >= http.StatusInternalServerError {
			logFn = s.logger.Error
		}
		logFn("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)
	}
}

// recoveryMiddleware converts panics into 500 responses with a logged stack.
func (s *Server) recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		s.logger.Error("[panic] Recovered from panic in handler",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	})
}
