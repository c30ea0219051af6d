package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

// --- Carrier Offer Repository Methods ---

// SaveCarrierOffer appends a new offer record. Offers are append-only so the
// full negotiation history per load/carrier pair is preserved; there is no
// update path.
func (r *PostgresRepo) SaveCarrierOffer(ctx context.Context, offer model.CarrierOffer) error {
	loggerCtx := logger.FromContext(ctx)

	startTime := utils.Now()
	result := r.db.WithContext(ctx).Create(&offer)
	observer.ObserveDbOperationDuration("save", "carrier_offer", time.Since(startTime), result.Error)

	if result.Error != nil {
		loggerCtx.Error("Failed to save carrier offer",
			zap.String("load_id", offer.LoadID),
			zap.String("mc_number", offer.MCNumber),
			zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	return nil
}
