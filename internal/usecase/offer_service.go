package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/internal/validator"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

// Call log listing limit bounds.
const (
	DefaultLogListLimit = 20
	MaxLogListLimit     = 100
)

// LogOffer validates and appends a carrier offer. The negotiation history is
// append-only; nothing is ever updated in place.
func (s *Service) LogOffer(ctx context.Context, req model.CarrierOfferLogRequest) error {
	log := logger.FromContext(ctx)

	if err := validator.Validate(req); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	offer := model.CarrierOffer{
		LoadID:       req.LoadID,
		MCNumber:     req.MCNumber,
		CarrierOffer: req.CarrierOffer,
		Notes:        req.Notes,
	}

	if err := s.offerRepo.Save(ctx, offer); err != nil {
		return err
	}

	log.Info("Carrier offer logged",
		zap.String("load_id", req.LoadID),
		zap.String("mc_number", req.MCNumber),
		zap.Float64("carrier_offer", req.CarrierOffer))
	return nil
}

// LogCallOutcome validates, coerces and persists one call-outcome record,
// returning the new record's ID. A run that already has a logged outcome is
// rejected with ErrDuplicate; the existing record is left untouched. The
// pre-check here is only a fast path; the unique constraint in storage is
// the guarantee under concurrent writers.
func (s *Service) LogCallOutcome(ctx context.Context, req model.CallOutcomeRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validator.Validate(req); err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	entry := model.CallLog{
		HappyRobotRunID:                req.HappyRobotRunID,
		MCNumber:                       req.MCNumber,
		SearchedLoadID:                 req.LoadID,
		AgreedRate:                     req.AgreedRate,
		CallOutcomeClassification:      req.CallOutcomeClassification,
		CarrierSentimentClassification: req.CarrierSentimentClassification,
		// Eligible only when the upstream status token is exactly ACTIVE
		FMCSAVerifiedEligible: req.FMCSAVerifiedEligible == string(model.StatusActive),
	}

	if req.InitialCarrierOffer != "" {
		offer, err := strconv.ParseFloat(req.InitialCarrierOffer, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: initial_carrier_offer must be a number", apperrors.ErrValidation)
		}
		entry.InitialCarrierOffer = &offer
	}
	if req.NegotiationRounds != "" {
		rounds, err := strconv.Atoi(req.NegotiationRounds)
		if err != nil {
			return 0, fmt.Errorf("%w: negotiation_rounds must be an integer", apperrors.ErrValidation)
		}
		entry.NegotiationRounds = &rounds
	}
	if req.RawExtractedData != nil {
		entry.RawExtractedDataJSON = datatypes.JSON(utils.MustMarshalJSON(req.RawExtractedData))
	}

	// Fast-path duplicate check before touching the insert path
	if _, err := s.callLogRepo.FindByRunID(ctx, req.HappyRobotRunID); err == nil {
		log.Warn("Duplicate call outcome rejected",
			zap.String("happyrobot_run_id", req.HappyRobotRunID))
		return 0, fmt.Errorf("%w: call outcome already logged for run %s", apperrors.ErrDuplicate, req.HappyRobotRunID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, err
	}

	id, err := s.callLogRepo.Save(ctx, entry)
	if err != nil {
		return 0, err
	}

	observer.IncCallOutcome(req.CallOutcomeClassification)
	log.Info("Call outcome logged",
		zap.Int64("call_log_id", id),
		zap.String("happyrobot_run_id", req.HappyRobotRunID),
		zap.String("classification", req.CallOutcomeClassification))
	return id, nil
}

// ListCallLogs returns the most recent call logs, newest first, with the
// limit clamped to [1, MaxLogListLimit].
func (s *Service) ListCallLogs(ctx context.Context, limit, offset int) ([]model.CallLog, error) {
	if limit <= 0 {
		limit = DefaultLogListLimit
	}
	if limit > MaxLogListLimit {
		limit = MaxLogListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.callLogRepo.FindRecent(ctx, limit, offset)
}

// DashboardData returns the aggregate stats plus the most recent call logs
// for the summary view.
func (s *Service) DashboardData(ctx context.Context, limit int) (model.CallStats, []model.CallLog, error) {
	stats, err := s.callLogRepo.Stats(ctx)
	if err != nil {
		return model.CallStats{}, nil, err
	}
	logs, err := s.ListCallLogs(ctx, limit, 0)
	if err != nil {
		return model.CallStats{}, nil, err
	}
	return stats, logs, nil
}
