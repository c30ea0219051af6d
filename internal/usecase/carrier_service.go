package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

// VerifyCarrier checks the carrier's eligibility against the FMCSA registry.
// Upstream failures are reflected in the result status, never as an error;
// the only error here is a missing MC number.
func (s *Service) VerifyCarrier(ctx context.Context, mcNumber string) (model.CarrierVerificationResponse, error) {
	if mcNumber == "" {
		return model.CarrierVerificationResponse{}, fmt.Errorf("%w: MC number is required", apperrors.ErrValidation)
	}

	result := s.verifier.VerifyCarrier(ctx, mcNumber)
	logger.FromContext(ctx).Info("Carrier verification completed",
		zap.String("mc_number", result.MCNumber),
		zap.String("status", string(result.Status)))
	return result, nil
}
