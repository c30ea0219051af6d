package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

// --- Load Repository Methods ---

// SearchLoads returns loads matching every set predicate in the filter,
// ordered by ascending pickup time then descending rate, truncated to the
// filter's effective limit.
func (r *PostgresRepo) SearchLoads(ctx context.Context, filter model.LoadFilter) ([]model.Load, error) {
	loggerCtx := logger.FromContext(ctx)

	query := r.db.WithContext(ctx).Model(&model.Load{})

	if filter.OriginCity != "" {
		query = query.Where("origin ILIKE ?", "%"+filter.OriginCity+"%")
	}
	if filter.DestinationCity != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.DestinationCity+"%")
	}
	if filter.EquipmentType != "" {
		query = query.Where("equipment_type ILIKE ?", "%"+filter.EquipmentType+"%")
	}
	if filter.PickupDate != nil {
		dayStart, dayEnd := utils.DayRange(*filter.PickupDate)
		query = query.Where("pickup_datetime >= ? AND pickup_datetime < ?", dayStart, dayEnd)
	}
	if filter.MaxWeight > 0 {
		query = query.Where("weight <= ?", filter.MaxWeight)
	}
	if filter.MinRate > 0 {
		query = query.Where("loadboard_rate >= ?", filter.MinRate)
	}
	if filter.MaxRate > 0 {
		query = query.Where("loadboard_rate <= ?", filter.MaxRate)
	}

	var loads []model.Load
	startTime := utils.Now()
	err := query.
		Order("pickup_datetime ASC").
		Order("loadboard_rate DESC").
		Limit(filter.EffectiveLimit()).
		Find(&loads).Error
	observer.ObserveDbOperationDuration("search", "load", time.Since(startTime), err)

	if err != nil {
		loggerCtx.Error("Failed to search loads",
			zap.String("origin_city", filter.OriginCity),
			zap.String("destination_city", filter.DestinationCity),
			zap.Error(err))
		return nil, checkConstraintViolation(err)
	}
	return loads, nil
}

// FindLoadByLoadID finds a load by its business identifier. Exact match only.
func (r *PostgresRepo) FindLoadByLoadID(ctx context.Context, loadID string) (*model.Load, error) {
	loggerCtx := logger.FromContext(ctx)

	var load model.Load
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("load_id = ?", loadID).First(&load).Error
	observer.ObserveDbOperationDuration("find_by_load_id", "load", time.Since(startTime), err)

	if err != nil {
		wrapped := checkConstraintViolation(err)
		if errors.Is(wrapped, apperrors.ErrNotFound) {
			return nil, wrapped
		}
		loggerCtx.Error("Failed to find load by load_id",
			zap.String("load_id", loadID),
			zap.Error(err))
		return nil, wrapped
	}
	return &load, nil
}

// SaveLoad inserts a new load record. Used by the seeder; the API surface is
// read-only for loads.
func (r *PostgresRepo) SaveLoad(ctx context.Context, load model.Load) error {
	loggerCtx := logger.FromContext(ctx)

	startTime := utils.Now()
	result := r.db.WithContext(ctx).Create(&load)
	observer.ObserveDbOperationDuration("save", "load", time.Since(startTime), result.Error)

	if result.Error != nil {
		loggerCtx.Error("Failed to save load",
			zap.String("load_id", load.LoadID),
			zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	return nil
}
