package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	storagemock "github.com/jonleinena/happyrobot-interview/internal/storage/mock"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

func init() {
	// Initialize logger for tests
	logger.Log = zap.NewNop()
}

func newTestService() (*Service, *storagemock.LoadRepoMock, *storagemock.CallLogRepoMock, *storagemock.CarrierOfferRepoMock, *MockVerifier) {
	loadRepo := new(storagemock.LoadRepoMock)
	callLogRepo := new(storagemock.CallLogRepoMock)
	offerRepo := new(storagemock.CarrierOfferRepoMock)
	verifier := new(MockVerifier)
	return NewService(loadRepo, callLogRepo, offerRepo, verifier), loadRepo, callLogRepo, offerRepo, verifier
}

// MockVerifier mocks the fmcsa.Verifier interface
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyCarrier(ctx context.Context, mcNumber string) model.CarrierVerificationResponse {
	args := m.Called(ctx, mcNumber)
	return args.Get(0).(model.CarrierVerificationResponse)
}

func TestSearchLoads_PassesParsedFilter(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	expected := []model.Load{{LoadID: "LOAD001", Origin: "Chicago, IL"}}
	loadRepo.On("Search", mock.Anything, mock.MatchedBy(func(f model.LoadFilter) bool {
		return f.OriginCity == "chicago" &&
			f.EquipmentType == "dry van" &&
			f.MinRate == 1500 &&
			f.MaxWeight == 46000 &&
			f.Limit == 5 &&
			f.PickupDate != nil &&
			f.PickupDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	})).Return(expected, nil)

	loads, err := service.SearchLoads(context.Background(), LoadSearchParams{
		OriginCity:    "chicago",
		EquipmentType: "dry van",
		PickupDate:    "2025-07-01",
		MinRate:       "1500",
		MaxWeight:     "46000",
		Limit:         "5",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, loads)
	loadRepo.AssertExpectations(t)
}

func TestSearchLoads_NoFilters(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	loadRepo.On("Search", mock.Anything, mock.MatchedBy(func(f model.LoadFilter) bool {
		return f == model.LoadFilter{}
	})).Return([]model.Load{}, nil)

	loads, err := service.SearchLoads(context.Background(), LoadSearchParams{})
	require.NoError(t, err)
	assert.Empty(t, loads)
	loadRepo.AssertExpectations(t)
}

func TestSearchLoads_MalformedDateFailsBeforeQuery(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	_, err := service.SearchLoads(context.Background(), LoadSearchParams{PickupDate: "07/01/2025"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	loadRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchLoads_MalformedNumericFilters(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	tests := []struct {
		name   string
		params LoadSearchParams
	}{
		{"bad max_weight", LoadSearchParams{MaxWeight: "heavy"}},
		{"bad min_rate", LoadSearchParams{MinRate: "cheap"}},
		{"bad max_rate", LoadSearchParams{MaxRate: "12x0"}},
		{"bad limit", LoadSearchParams{Limit: "ten"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SearchLoads(context.Background(), tc.params)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	loadRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestGetLoad_Found(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	load := &model.Load{LoadID: "LOAD001", Origin: "Chicago, IL"}
	loadRepo.On("FindByLoadID", mock.Anything, "LOAD001").Return(load, nil)

	got, err := service.GetLoad(context.Background(), "LOAD001")
	require.NoError(t, err)
	assert.Equal(t, load, got)
	loadRepo.AssertExpectations(t)
}

func TestGetLoad_NotFound(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	loadRepo.On("FindByLoadID", mock.Anything, "NOPE").Return(nil, apperrors.ErrNotFound)

	_, err := service.GetLoad(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetLoad_EmptyIDFailsValidation(t *testing.T) {
	service, loadRepo, _, _, _ := newTestService()

	_, err := service.GetLoad(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	loadRepo.AssertNotCalled(t, "FindByLoadID", mock.Anything, mock.Anything)
}
