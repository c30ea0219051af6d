// Package fmcsa wraps the FMCSA carrier registry lookup used to verify a
// carrier's eligibility before engagement. Lookup failures of any kind
// degrade to a FAIL verification result rather than an error, so the
// carrier-facing call flow can always continue.
package fmcsa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

// DefaultBaseURL is the FMCSA carrier snapshot endpoint.
const DefaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services/carriers"

const userAgent = "HappyRobot-CarrierVerification/1.0"

// Verifier is the interface consumed by the HTTP layer.
type Verifier interface {
	VerifyCarrier(ctx context.Context, mcNumber string) model.CarrierVerificationResponse
}

// Client calls the FMCSA registry. One outbound request per invocation,
// fixed timeout, no retry and no caching; callers needing resilience must
// retry at a higher layer.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an FMCSA client with the given endpoint, web key and timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// snapshotResponse mirrors the relevant part of the FMCSA carrier payload.
type snapshotResponse struct {
	Content *struct {
		Carrier *carrierRecord `json:"carrier"`
	} `json:"content"`
}

type carrierRecord struct {
	LegalName        string      `json:"legalName"`
	DOTNumber        json.Number `json:"dotNumber"`
	StatusCode       string      `json:"statusCode"`
	AllowedToOperate string      `json:"allowedToOperate"`
	SafetyRating     string      `json:"safetyRating"`
}

// NormalizeMC strips an "MC" prefix and whitespace and upper-cases the rest.
func NormalizeMC(mcNumber string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(mcNumber), "MC", ""))
}

// VerifyCarrier looks up the carrier in the FMCSA registry and returns the
// classified verification result. It never returns an error: timeouts,
// transport failures and malformed responses all yield status FAIL.
func (c *Client) VerifyCarrier(ctx context.Context, mcNumber string) model.CarrierVerificationResponse {
	log := logger.FromContext(ctx)
	cleanMC := NormalizeMC(mcNumber)

	result := c.lookup(ctx, log, cleanMC)
	observer.IncFMCSALookup(string(result.Status))
	return result
}

func (c *Client) lookup(ctx context.Context, log *zap.Logger, cleanMC string) model.CarrierVerificationResponse {
	url := fmt.Sprintf("%s/%s?webKey=%s", c.baseURL, cleanMC, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to build FMCSA request", zap.String("mc_number", cleanMC), zap.Error(err))
		return failResult(cleanMC)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	log.Info("Calling FMCSA API", zap.String("mc_number", cleanMC))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("FMCSA API request failed", zap.String("mc_number", cleanMC), zap.Error(err))
		return failResult(cleanMC)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var snapshot snapshotResponse
		if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
			log.Error("Failed to decode FMCSA response", zap.String("mc_number", cleanMC), zap.Error(err))
			return failResult(cleanMC)
		}
		return processSnapshot(snapshot, cleanMC)
	case resp.StatusCode == http.StatusNotFound:
		return model.CarrierVerificationResponse{
			CarrierID:   cleanMC,
			CarrierName: model.UnknownCarrierName,
			Status:      model.StatusUnregistered,
			MCNumber:    cleanMC,
		}
	default:
		log.Error("FMCSA API error",
			zap.String("mc_number", cleanMC),
			zap.Int("status_code", resp.StatusCode))
		return failResult(cleanMC)
	}
}

// processSnapshot maps a successfully fetched registry record onto a
// verification result.
func processSnapshot(snapshot snapshotResponse, mcNumber string) model.CarrierVerificationResponse {
	if snapshot.Content == nil || snapshot.Content.Carrier == nil {
		return failResult(mcNumber)
	}
	carrier := snapshot.Content.Carrier

	carrierName := carrier.LegalName
	if carrierName == "" {
		carrierName = model.UnknownCarrierName
	}
	dotNumber := carrier.DOTNumber.String()
	if dotNumber == "0" {
		dotNumber = ""
	}

	carrierID := dotNumber
	if carrierID == "" {
		carrierID = mcNumber
	}

	return model.CarrierVerificationResponse{
		CarrierID:   carrierID,
		CarrierName: carrierName,
		Status:      Classify(carrier.StatusCode, carrier.AllowedToOperate, carrier.SafetyRating),
		DOTNumber:   dotNumber,
		MCNumber:    mcNumber,
	}
}

// Classify implements the closed mapping from FMCSA status flags to a
// verification status. Pure function so the policy is testable without any
// transport.
//
//   - Operationally active and authorized, safety rating absent or anything
//     but unsatisfactory: ACTIVE.
//   - Active and authorized but explicitly unsatisfactory safety rating: FAIL.
//   - Explicit suspended status, or not authorized to operate: SUSPENDED.
//   - Explicit inactive status: INACTIVE.
//   - Anything else: FAIL.
func Classify(statusCode, allowedToOperate, safetyRating string) model.VerificationStatus {
	statusCode = strings.ToUpper(strings.TrimSpace(statusCode))
	allowedToOperate = strings.ToUpper(strings.TrimSpace(allowedToOperate))
	safetyRating = strings.ToUpper(strings.TrimSpace(safetyRating))

	switch {
	case statusCode == "A" && allowedToOperate == "Y":
		if safetyRating == "U" || safetyRating == "UNSATISFACTORY" {
			return model.StatusFail
		}
		return model.StatusActive
	case statusCode == "S" || statusCode == "SUSPENDED":
		return model.StatusSuspended
	case statusCode == "I" || statusCode == "INACTIVE":
		return model.StatusInactive
	case allowedToOperate == "N":
		return model.StatusSuspended
	default:
		return model.StatusFail
	}
}

func failResult(mcNumber string) model.CarrierVerificationResponse {
	return model.CarrierVerificationResponse{
		CarrierID:   mcNumber,
		CarrierName: model.UnknownCarrierName,
		Status:      model.StatusFail,
		MCNumber:    mcNumber,
	}
}
