package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonleinena/happyrobot-interview/internal/usecase"
)

// handleSearchLoads handles GET /loads with the optional filter query params.
func (s *Server) handleSearchLoads(c *gin.Context) {
	params := usecase.LoadSearchParams{
		OriginCity:      c.Query("origin_city"),
		DestinationCity: c.Query("destination_city"),
		EquipmentType:   c.Query("equipment_type"),
		PickupDate:      c.Query("pickup_date"),
		MaxWeight:       c.Query("max_weight"),
		MinRate:         c.Query("min_rate"),
		MaxRate:         c.Query("max_rate"),
		Limit:           c.Query("limit"),
	}

	loads, err := s.service.SearchLoads(c.Request.Context(), params)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loads)
}

// handleGetLoad handles GET /loads/:load_id.
func (s *Server) handleGetLoad(c *gin.Context) {
	load, err := s.service.GetLoad(c.Request.Context(), c.Param("load_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}
