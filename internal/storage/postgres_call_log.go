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

// --- Call Log Repository Methods ---

// SaveCallLog inserts a new call log record and returns its assigned ID.
// The unique index on happyrobot_run_id is the real at-most-once guarantee;
// a concurrent duplicate insert surfaces here as ErrDuplicate even when the
// service-level pre-check passed.
func (r *PostgresRepo) SaveCallLog(ctx context.Context, entry model.CallLog) (int64, error) {
	loggerCtx := logger.FromContext(ctx)

	startTime := utils.Now()
	result := r.db.WithContext(ctx).Create(&entry)
	observer.ObserveDbOperationDuration("save", "call_log", time.Since(startTime), result.Error)

	if result.Error != nil {
		wrapped := checkConstraintViolation(result.Error)
		if errors.Is(wrapped, apperrors.ErrDuplicate) {
			loggerCtx.Warn("Duplicate call log rejected by unique constraint",
				zap.String("happyrobot_run_id", entry.HappyRobotRunID))
			return 0, wrapped
		}
		loggerCtx.Error("Failed to save call log",
			zap.String("happyrobot_run_id", entry.HappyRobotRunID),
			zap.Error(result.Error))
		return 0, wrapped
	}
	return entry.ID, nil
}

// FindCallLogByRunID finds a call log by the platform run identifier.
func (r *PostgresRepo) FindCallLogByRunID(ctx context.Context, runID string) (*model.CallLog, error) {
	loggerCtx := logger.FromContext(ctx)

	var entry model.CallLog
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("happyrobot_run_id = ?", runID).First(&entry).Error
	observer.ObserveDbOperationDuration("find_by_run_id", "call_log", time.Since(startTime), err)

	if err != nil {
		wrapped := checkConstraintViolation(err)
		if errors.Is(wrapped, apperrors.ErrNotFound) {
			return nil, wrapped
		}
		loggerCtx.Error("Failed to find call log by run id",
			zap.String("happyrobot_run_id", runID),
			zap.Error(err))
		return nil, wrapped
	}
	return &entry, nil
}

// FindRecentCallLogs returns call logs ordered newest first.
func (r *PostgresRepo) FindRecentCallLogs(ctx context.Context, limit, offset int) ([]model.CallLog, error) {
	loggerCtx := logger.FromContext(ctx)

	var entries []model.CallLog
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	observer.ObserveDbOperationDuration("find_recent", "call_log", time.Since(startTime), err)

	if err != nil {
		loggerCtx.Error("Failed to list recent call logs",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil, checkConstraintViolation(err)
	}
	return entries, nil
}

// CallLogStats computes the dashboard aggregates: total call count, count of
// outcomes containing "book" (case-insensitive), and the mean negotiation
// round count over rows where the field is present.
func (r *PostgresRepo) CallLogStats(ctx context.Context) (model.CallStats, error) {
	loggerCtx := logger.FromContext(ctx)

	var stats model.CallStats
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Model(&model.CallLog{}).
		Select(
			"COUNT(*) AS total_calls, " +
				"COUNT(*) FILTER (WHERE call_outcome_classification ILIKE '%book%') AS booked_calls, " +
				"COALESCE(AVG(negotiation_rounds), 0) AS avg_negotiation_rounds",
		).
		Scan(&stats).Error
	observer.ObserveDbOperationDuration("stats", "call_log", time.Since(startTime), err)

	if err != nil {
		loggerCtx.Error("Failed to compute call log stats", zap.Error(err))
		return model.CallStats{}, checkConstraintViolation(err)
	}
	return stats, nil
}
