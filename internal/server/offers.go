package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
)

// handleLogOffer handles POST /offers/log.
func (s *Server) handleLogOffer(c *gin.Context) {
	var req model.CarrierOfferLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}

	if err := s.service.LogOffer(c.Request.Context(), req); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.CarrierOfferLogResponse{
		Status:  http.StatusCreated,
		Message: "Offer logged successfully",
	})
}

// handleLogCallOutcome handles POST /offers/log-outcome. A run id that has
// already been logged gets a 409 and the original record stays untouched.
func (s *Server) handleLogCallOutcome(c *gin.Context) {
	var req model.CallOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}

	id, err := s.service.LogCallOutcome(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.CallOutcomeResponse{
		Status:    http.StatusCreated,
		Message:   "Call outcome logged successfully",
		CallLogID: id,
	})
}

// handleListLogs handles GET /offers/logs with optional limit and offset.
func (s *Server) handleListLogs(c *gin.Context) {
	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil {
		s.respondError(c, fmt.Errorf("%w: limit must be an integer", apperrors.ErrValidation))
		return
	}
	offset, err := parseOptionalInt(c.Query("offset"))
	if err != nil {
		s.respondError(c, fmt.Errorf("%w: offset must be an integer", apperrors.ErrValidation))
		return
	}

	logs, err := s.service.ListCallLogs(c.Request.Context(), limit, offset)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func parseOptionalInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
