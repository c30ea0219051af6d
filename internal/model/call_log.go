package model

import (
	"time"

	"gorm.io/datatypes"
)

// CallLog represents the call_logs table structure, recording the outcome of
// one completed agent-carrier negotiation call.
type CallLog struct {
	// ID is the internal database primary key.
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	// HappyRobotRunID is the unique run identifier assigned by the HappyRobot
	// platform. The unique index is the source of truth for at-most-once
	// recording; a second log attempt for the same run is rejected.
	HappyRobotRunID string `json:"happyrobot_run_id" gorm:"column:happyrobot_run_id;uniqueIndex" validate:"required"`
	// MCNumber is the motor carrier number of the carrier on the call.
	MCNumber string `json:"mc_number,omitempty" gorm:"column:mc_number;index"`
	// CalledAt is when the call occurred.
	CalledAt time.Time `json:"called_at" gorm:"column:called_at;autoCreateTime"`
	// FMCSAVerifiedEligible records whether the carrier passed FMCSA verification.
	FMCSAVerifiedEligible bool `json:"fmcsa_verified_eligible" gorm:"column:fmcsa_verified_eligible;default:false"`
	// SearchedLoadID is the load that was discussed during the call.
	SearchedLoadID string `json:"searched_load_id,omitempty" gorm:"column:searched_load_id"`
	// InitialCarrierOffer is the first offer made by the carrier.
	InitialCarrierOffer *float64 `json:"initial_carrier_offer,omitempty" gorm:"column:initial_carrier_offer"`
	// NegotiationRounds is the number of back-and-forth negotiation rounds.
	NegotiationRounds *int `json:"negotiation_rounds,omitempty" gorm:"column:negotiation_rounds"`
	// AgreedRate is the final agreed upon rate, if the call ended in a booking.
	AgreedRate *float64 `json:"agreed_rate,omitempty" gorm:"column:agreed_rate"`
	// CallOutcomeClassification categorizes the call result,
	// e.g. "Booked", "Rejected - Price", "No Interest".
	CallOutcomeClassification string `json:"call_outcome_classification" gorm:"column:call_outcome_classification"`
	// CarrierSentimentClassification categorizes the carrier's sentiment,
	// e.g. "Positive", "Negative", "Neutral".
	CarrierSentimentClassification string `json:"carrier_sentiment_classification" gorm:"column:carrier_sentiment_classification"`
	// RawExtractedDataJSON holds the full extracted payload from the platform.
	RawExtractedDataJSON datatypes.JSON `json:"raw_extracted_data_json,omitempty" gorm:"type:jsonb;column:raw_extracted_data_json"`
	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when the record was last updated.
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (CallLog) TableName() string {
	return "call_logs"
}

// CarrierOffer represents the carrier_offers table structure, one row per
// offer event during a negotiation. The history is append-only; offers are
// never updated in place.
type CarrierOffer struct {
	// ID is the internal database primary key.
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	// LoadID references the load being negotiated.
	LoadID string `json:"load_id" gorm:"column:load_id;not null;index" validate:"required"`
	// MCNumber is the motor carrier number of the offering carrier.
	MCNumber string `json:"mc_number" gorm:"column:mc_number;not null;index" validate:"required"`
	// CarrierOffer is the amount offered by the carrier. Must be positive.
	CarrierOffer float64 `json:"carrier_offer" gorm:"column:carrier_offer;not null" validate:"required,gt=0"`
	// Notes carries additional free-text context about the offer.
	Notes string `json:"notes,omitempty" gorm:"column:notes;type:text"`
	// OfferedAt is when the offer was made.
	OfferedAt time.Time `json:"offered_at" gorm:"column:offered_at;autoCreateTime"`
	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (CarrierOffer) TableName() string {
	return "carrier_offers"
}

// CallStats holds the aggregate projections reported by the dashboard.
// These are computed on demand, never stored.
type CallStats struct {
	// TotalCalls is the total number of recorded call outcomes.
	TotalCalls int64 `json:"total_calls"`
	// BookedCalls counts outcomes whose classification contains "book",
	// matched case-insensitively.
	BookedCalls int64 `json:"booked_calls"`
	// AvgNegotiationRounds is the mean round count over records where the
	// field is present. Zero when no such records exist.
	AvgNegotiationRounds float64 `json:"avg_negotiation_rounds"`
}

// BookingRate derives the booked percentage from the counters.
// Returns 0 when no calls have been recorded.
func (s CallStats) BookingRate() float64 {
	if s.TotalCalls == 0 {
		return 0
	}
	return float64(s.BookedCalls) / float64(s.TotalCalls) * 100
}
