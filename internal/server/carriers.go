package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleVerifyCarrier handles GET /carriers/find?mc=<id>. Upstream lookup
// failures come back as a FAIL result with 200, so the voice flow can react
// to the status instead of an error.
func (s *Server) handleVerifyCarrier(c *gin.Context) {
	result, err := s.service.VerifyCarrier(c.Request.Context(), c.Query("mc"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleValidateKey handles GET /auth/validate. Reaching the handler means
// the auth gate already accepted the key.
func (s *Server) handleValidateKey(c *gin.Context) {
	key := headerKeyExtractor(c)
	prefix := key
	if len(prefix) > 8 {
		prefix = prefix[:8] + "..."
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "valid",
		"message":        "API key is valid",
		"api_key_prefix": prefix,
	})
}
