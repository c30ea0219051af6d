package usecase

import (
	"github.com/jonleinena/happyrobot-interview/internal/fmcsa"
	"github.com/jonleinena/happyrobot-interview/internal/storage"
)

// Service implements the application logic between the HTTP layer and
// storage: input coercion, validation and delegation to the repositories and
// the eligibility client. It holds no per-request state.
type Service struct {
	loadRepo    storage.LoadRepo
	callLogRepo storage.CallLogRepo
	offerRepo   storage.CarrierOfferRepo
	verifier    fmcsa.Verifier
}

// NewService creates the service with its dependencies injected.
func NewService(loadRepo storage.LoadRepo, callLogRepo storage.CallLogRepo, offerRepo storage.CarrierOfferRepo, verifier fmcsa.Verifier) *Service {
	return &Service{
		loadRepo:    loadRepo,
		callLogRepo: callLogRepo,
		offerRepo:   offerRepo,
		verifier:    verifier,
	}
}
