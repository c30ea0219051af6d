package model

// Wire payloads for the HTTP API. Field names follow the shapes the voice
// platform sends; several numeric fields arrive as strings and are coerced
// by the service layer.

// CarrierOfferLogRequest is the body of POST /offers/log.
type CarrierOfferLogRequest struct {
	LoadID       string  `json:"load_id" validate:"required"`
	MCNumber     string  `json:"mc_number" validate:"required"`
	CarrierOffer float64 `json:"carrier_offer" validate:"required,gt=0"`
	Notes        string  `json:"notes,omitempty"`
}

// CarrierOfferLogResponse acknowledges a logged offer.
type CarrierOfferLogResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// CallOutcomeRequest is the body of POST /offers/log-outcome. The platform
// sends initial_carrier_offer, negotiation_rounds and fmcsa_verified_eligible
// as strings; they are parsed and coerced before persistence.
type CallOutcomeRequest struct {
	HappyRobotRunID                string                 `json:"happyrobot_run_id" validate:"required"`
	MCNumber                       string                 `json:"mc_number,omitempty"`
	LoadID                         string                 `json:"load_id,omitempty"`
	AgreedRate                     *float64               `json:"agreed_rate,omitempty"`
	CallOutcomeClassification      string                 `json:"call_outcome_classification" validate:"required"`
	CarrierSentimentClassification string                 `json:"carrier_sentiment_classification" validate:"required"`
	FMCSAVerifiedEligible          string                 `json:"fmcsa_verified_eligible,omitempty"`
	InitialCarrierOffer            string                 `json:"initial_carrier_offer,omitempty"`
	NegotiationRounds              string                 `json:"negotiation_rounds,omitempty"`
	RawExtractedData               map[string]interface{} `json:"raw_extracted_data,omitempty"`
}

// CallOutcomeResponse acknowledges a logged call outcome.
type CallOutcomeResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	CallLogID int64  `json:"call_log_id"`
}

// VerificationStatus is the closed set of carrier eligibility results.
type VerificationStatus string

const (
	StatusActive       VerificationStatus = "ACTIVE"
	StatusSuspended    VerificationStatus = "SUSPENDED"
	StatusInactive     VerificationStatus = "INACTIVE"
	StatusUnregistered VerificationStatus = "UNREGISTERED"
	StatusFail         VerificationStatus = "FAIL"
)

// UnknownCarrierName is the sentinel carrier name reported when the registry
// has no usable record for the carrier.
const UnknownCarrierName = "UNKNOWN"

// CarrierVerificationResponse is the result of an eligibility lookup.
type CarrierVerificationResponse struct {
	CarrierID   string             `json:"carrier_id"`
	CarrierName string             `json:"carrier_name"`
	Status      VerificationStatus `json:"status"`
	DOTNumber   string             `json:"dot_number,omitempty"`
	MCNumber    string             `json:"mc_number,omitempty"`
}
