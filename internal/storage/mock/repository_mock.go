package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonleinena/happyrobot-interview/internal/model"
)

// --- LoadRepo Mock ---

// LoadRepoMock mocks the LoadRepo interface
type LoadRepoMock struct {
	mock.Mock
}

// Search mocks the Search method
func (m *LoadRepoMock) Search(ctx context.Context, filter model.LoadFilter) ([]model.Load, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Load), args.Error(1)
}

// FindByLoadID mocks the FindByLoadID method
func (m *LoadRepoMock) FindByLoadID(ctx context.Context, loadID string) (*model.Load, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Load), args.Error(1)
}

// Save mocks the Save method
func (m *LoadRepoMock) Save(ctx context.Context, load model.Load) error {
	args := m.Called(ctx, load)
	return args.Error(0)
}

// --- CallLogRepo Mock ---

// CallLogRepoMock mocks the CallLogRepo interface
type CallLogRepoMock struct {
	mock.Mock
}

// Save mocks the Save method
func (m *CallLogRepoMock) Save(ctx context.Context, entry model.CallLog) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

// FindByRunID mocks the FindByRunID method
func (m *CallLogRepoMock) FindByRunID(ctx context.Context, runID string) (*model.CallLog, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CallLog), args.Error(1)
}

// FindRecent mocks the FindRecent method
func (m *CallLogRepoMock) FindRecent(ctx context.Context, limit, offset int) ([]model.CallLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CallLog), args.Error(1)
}

// Stats mocks the Stats method
func (m *CallLogRepoMock) Stats(ctx context.Context) (model.CallStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.CallStats), args.Error(1)
}

// --- CarrierOfferRepo Mock ---

// CarrierOfferRepoMock mocks the CarrierOfferRepo interface
type CarrierOfferRepoMock struct {
	mock.Mock
}

// Save mocks the Save method
func (m *CarrierOfferRepoMock) Save(ctx context.Context, offer model.CarrierOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

// --- Pinger Mock ---

// PingerMock mocks the Pinger interface
type PingerMock struct {
	mock.Mock
}

// Ping mocks the Ping method
func (m *PingerMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
