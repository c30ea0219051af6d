package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/model"
)

func TestVerifyCarrier_DelegatesToVerifier(t *testing.T) {
	service, _, _, _, verifier := newTestService()

	expected := model.CarrierVerificationResponse{
		CarrierID:   "987654",
		CarrierName: "ACME TRUCKING LLC",
		Status:      model.StatusActive,
		DOTNumber:   "987654",
		MCNumber:    "123456",
	}
	verifier.On("VerifyCarrier", mock.Anything, "MC123456").Return(expected)

	result, err := service.VerifyCarrier(context.Background(), "MC123456")
	require.NoError(t, err)
	assert.Equal(t, expected, result)
	verifier.AssertExpectations(t)
}

func TestVerifyCarrier_FailStatusIsValueNotError(t *testing.T) {
	service, _, _, _, verifier := newTestService()

	verifier.On("VerifyCarrier", mock.Anything, "123456").Return(model.CarrierVerificationResponse{
		CarrierID:   "123456",
		CarrierName: model.UnknownCarrierName,
		Status:      model.StatusFail,
		MCNumber:    "123456",
	})

	result, err := service.VerifyCarrier(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, model.StatusFail, result.Status)
}

func TestVerifyCarrier_EmptyMCFailsValidation(t *testing.T) {
	service, _, _, _, verifier := newTestService()

	_, err := service.VerifyCarrier(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	verifier.AssertNotCalled(t, "VerifyCarrier", mock.Anything, mock.Anything)
}
