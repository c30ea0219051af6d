package storage

import (
	"context"

	"github.com/jonleinena/happyrobot-interview/internal/model"
)

// LoadRepo defines load storage operations. Loads are read-only from the API;
// Save exists for the seeder.
type LoadRepo interface {
	Search(ctx context.Context, filter model.LoadFilter) ([]model.Load, error)
	FindByLoadID(ctx context.Context, loadID string) (*model.Load, error)
	Save(ctx context.Context, load model.Load) error
}

// CallLogRepo defines call log storage operations
type CallLogRepo interface {
	Save(ctx context.Context, entry model.CallLog) (int64, error)
	FindByRunID(ctx context.Context, runID string) (*model.CallLog, error)
	FindRecent(ctx context.Context, limit, offset int) ([]model.CallLog, error)
	Stats(ctx context.Context) (model.CallStats, error)
}

// CarrierOfferRepo defines carrier offer storage operations
type CarrierOfferRepo interface {
	Save(ctx context.Context, offer model.CarrierOffer) error
}

// Pinger exposes database connectivity checks for the readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}
