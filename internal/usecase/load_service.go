package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

// pickupDateLayout is the calendar-day format accepted by the search filter.
const pickupDateLayout = "2006-01-02"

// LoadSearchParams carries the raw, still-unparsed filter values from the
// query string. Empty strings mean "not set".
type LoadSearchParams struct {
	OriginCity      string
	DestinationCity string
	EquipmentType   string
	PickupDate      string
	MaxWeight       string
	MinRate         string
	MaxRate         string
	Limit           string
}

// SearchLoads parses the raw filter parameters and returns matching loads.
// A malformed date or numeric filter fails with ErrValidation before any
// query runs.
func (s *Service) SearchLoads(ctx context.Context, params LoadSearchParams) ([]model.Load, error) {
	log := logger.FromContext(ctx)

	filter := model.LoadFilter{
		OriginCity:      params.OriginCity,
		DestinationCity: params.DestinationCity,
		EquipmentType:   params.EquipmentType,
	}

	if params.PickupDate != "" {
		day, err := time.ParseInLocation(pickupDateLayout, params.PickupDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pickup_date format, use YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.PickupDate = &day
	}

	var err error
	if filter.MaxWeight, err = parseOptionalFloat("max_weight", params.MaxWeight); err != nil {
		return nil, err
	}
	if filter.MinRate, err = parseOptionalFloat("min_rate", params.MinRate); err != nil {
		return nil, err
	}
	if filter.MaxRate, err = parseOptionalFloat("max_rate", params.MaxRate); err != nil {
		return nil, err
	}

	if params.Limit != "" {
		limit, err := strconv.Atoi(params.Limit)
		if err != nil {
			return nil, fmt.Errorf("%w: limit must be an integer", apperrors.ErrValidation)
		}
		filter.Limit = limit
	}

	loads, err := s.loadRepo.Search(ctx, filter)
	if err != nil {
		log.Error("Load search failed", zap.Error(err))
		return nil, err
	}

	log.Debug("Load search completed",
		zap.Int("results", len(loads)),
		zap.Int("limit", filter.EffectiveLimit()))
	return loads, nil
}

// GetLoad returns the load with the given business identifier, or ErrNotFound.
func (s *Service) GetLoad(ctx context.Context, loadID string) (*model.Load, error) {
	if loadID == "" {
		return nil, fmt.Errorf("%w: load_id is required", apperrors.ErrValidation)
	}
	return s.loadRepo.FindByLoadID(ctx, loadID)
}

// parseOptionalFloat parses a query value, returning 0 when unset and
// ErrValidation when malformed.
func parseOptionalFloat(name, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", apperrors.ErrValidation, name)
	}
	return f, nil
}
