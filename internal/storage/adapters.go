package storage

import (
	"context"

	"github.com/jonleinena/happyrobot-interview/internal/model"
)

// LoadRepoAdapter adapts the PostgresRepo to the LoadRepo interface
type LoadRepoAdapter struct {
	postgres *PostgresRepo
}

// NewLoadRepoAdapter creates a new load repository adapter
func NewLoadRepoAdapter(postgres *PostgresRepo) LoadRepo {
	return &LoadRepoAdapter{postgres: postgres}
}

// Search returns loads matching the filter
func (a *LoadRepoAdapter) Search(ctx context.Context, filter model.LoadFilter) ([]model.Load, error) {
	return a.postgres.SearchLoads(ctx, filter)
}

// FindByLoadID finds a load by its business identifier
func (a *LoadRepoAdapter) FindByLoadID(ctx context.Context, loadID string) (*model.Load, error) {
	return a.postgres.FindLoadByLoadID(ctx, loadID)
}

// Save inserts a new load
func (a *LoadRepoAdapter) Save(ctx context.Context, load model.Load) error {
	return a.postgres.SaveLoad(ctx, load)
}

// CallLogRepoAdapter adapts the PostgresRepo to the CallLogRepo interface
type CallLogRepoAdapter struct {
	postgres *PostgresRepo
}

// NewCallLogRepoAdapter creates a new call log repository adapter
func NewCallLogRepoAdapter(postgres *PostgresRepo) CallLogRepo {
	return &CallLogRepoAdapter{postgres: postgres}
}

// Save inserts a new call log and returns its ID
func (a *CallLogRepoAdapter) Save(ctx context.Context, entry model.CallLog) (int64, error) {
	return a.postgres.SaveCallLog(ctx, entry)
}

// FindByRunID finds a call log by the platform run identifier
func (a *CallLogRepoAdapter) FindByRunID(ctx context.Context, runID string) (*model.CallLog, error) {
	return a.postgres.FindCallLogByRunID(ctx, runID)
}

// FindRecent returns call logs newest first
func (a *CallLogRepoAdapter) FindRecent(ctx context.Context, limit, offset int) ([]model.CallLog, error) {
	return a.postgres.FindRecentCallLogs(ctx, limit, offset)
}

// Stats computes the dashboard aggregates
func (a *CallLogRepoAdapter) Stats(ctx context.Context) (model.CallStats, error) {
	return a.postgres.CallLogStats(ctx)
}

// CarrierOfferRepoAdapter adapts the PostgresRepo to the CarrierOfferRepo interface
type CarrierOfferRepoAdapter struct {
	postgres *PostgresRepo
}

// NewCarrierOfferRepoAdapter creates a new carrier offer repository adapter
func NewCarrierOfferRepoAdapter(postgres *PostgresRepo) CarrierOfferRepo {
	return &CarrierOfferRepoAdapter{postgres: postgres}
}

// Save appends a new offer record
func (a *CarrierOfferRepoAdapter) Save(ctx context.Context, offer model.CarrierOffer) error {
	return a.postgres.SaveCarrierOffer(ctx, offer)
}
