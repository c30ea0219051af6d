package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonleinena/happyrobot-interview/internal/apperrors"
	"github.com/jonleinena/happyrobot-interview/internal/config"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	storagemock "github.com/jonleinena/happyrobot-interview/internal/storage/mock"
	"github.com/jonleinena/happyrobot-interview/internal/usecase"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

const testAPIKey = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier returns a canned verification result.
type stubVerifier struct {
	result model.CarrierVerificationResponse
}

func (v *stubVerifier) VerifyCarrier(_ context.Context, _ string) model.CarrierVerificationResponse {
	return v.result
}

type serverFixture struct {
	server   *Server
	loadRepo *storagemock.LoadRepoMock
	callLog  *storagemock.CallLogRepoMock
	offers   *storagemock.CarrierOfferRepoMock
	pinger   *storagemock.PingerMock
	verifier *stubVerifier
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	logger.Log = zaptest.NewLogger(t)

	f := &serverFixture{
		loadRepo: new(storagemock.LoadRepoMock),
		callLog:  new(storagemock.CallLogRepoMock),
		offers:   new(storagemock.CarrierOfferRepoMock),
		pinger:   new(storagemock.PingerMock),
		verifier: &stubVerifier{},
	}

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Auth.APIKey = testAPIKey
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Dashboard.DefaultLimit = 20

	service := usecase.NewService(f.loadRepo, f.callLog, f.offers, f.verifier)
	f.server = NewServer(cfg, service, f.pinger, logger.Log)
	return f
}

func (f *serverFixture) do(method, target string, body interface{}, authorize bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorize {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)
	return rec
}

func TestRootBanner(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Carrier Engagement API")
}

func TestHealth(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestDBHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := newServerFixture(t)
		f.pinger.On("Ping", mock.Anything).Return(nil)

		rec := f.do(http.MethodGet, "/health/db", nil, false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		f := newServerFixture(t)
		f.pinger.On("Ping", mock.Anything).Return(fmt.Errorf("connection refused"))

		rec := f.do(http.MethodGet, "/health/db", nil, false)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "unhealthy")
	})
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("missing key returns 401", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/loads", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "API Key is required")
	})

	t.Run("invalid key returns 401", func(t *testing.T) {
		f := newServerFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/loads", nil)
		req.Header.Set("Authorization", "ApiKey wrong-key")
		rec := httptest.NewRecorder()
		f.server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid API Key")
	})

	t.Run("missing caller key wins over unconfigured server", func(t *testing.T) {
		f := newServerFixture(t)
		f.server.cfg.Auth.APIKey = ""

		rec := f.do(http.MethodGet, "/loads", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured server key returns 500", func(t *testing.T) {
		f := newServerFixture(t)
		f.server.cfg.Auth.APIKey = ""

		req := httptest.NewRequest(http.MethodGet, "/loads", nil)
		req.Header.Set("Authorization", "ApiKey whatever")
		rec := httptest.NewRecorder()
		f.server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "not configured")
	})

	t.Run("bare key without prefix is accepted", func(t *testing.T) {
		f := newServerFixture(t)
		f.loadRepo.On("Search", mock.Anything, mock.Anything).Return([]model.Load{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/loads", nil)
		req.Header.Set("Authorization", testAPIKey)
		rec := httptest.NewRecorder()
		f.server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestValidateKey(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/auth/validate", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "valid", body["status"])
	assert.Equal(t, "test-sec...", body["api_key_prefix"])
}

func TestVerifyCarrier(t *testing.T) {
	t.Run("active carrier", func(t *testing.T) {
		f := newServerFixture(t)
		f.verifier.result = model.CarrierVerificationResponse{
			CarrierID:   "123456",
			CarrierName: "ACME TRUCKING LLC",
			Status:      model.StatusActive,
			MCNumber:    "123456",
		}

		rec := f.do(http.MethodGet, "/carriers/find?mc=123456", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.CarrierVerificationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusActive, resp.Status)
		assert.Equal(t, "ACME TRUCKING LLC", resp.CarrierName)
	})

	t.Run("upstream failure still returns 200 with FAIL", func(t *testing.T) {
		f := newServerFixture(t)
		f.verifier.result = model.CarrierVerificationResponse{
			CarrierID:   "999",
			CarrierName: model.UnknownCarrierName,
			Status:      model.StatusFail,
		}

		rec := f.do(http.MethodGet, "/carriers/find?mc=999", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"FAIL"`)
	})

	t.Run("missing mc returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/carriers/find", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchLoads(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		f := newServerFixture(t)
		f.loadRepo.On("Search", mock.Anything, mock.MatchedBy(func(filter model.LoadFilter) bool {
			return filter.OriginCity == "Chicago" && filter.EquipmentType == "Dry Van" && filter.Limit == 5
		})).Return([]model.Load{{LoadID: "LOAD001"}}, nil)

		rec := f.do(http.MethodGet, "/loads?origin_city=Chicago&equipment_type=Dry+Van&limit=5", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var loads []model.Load
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loads))
		require.Len(t, loads, 1)
		assert.Equal(t, "LOAD001", loads[0].LoadID)
		f.loadRepo.AssertExpectations(t)
	})

	t.Run("malformed pickup_date returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/loads?pickup_date=20-01-2026", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "pickup_date")
		f.loadRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("malformed max_weight returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/loads?max_weight=heavy", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetLoad(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newServerFixture(t)
		f.loadRepo.On("FindByLoadID", mock.Anything, "LOAD003").
			Return(&model.Load{LoadID: "LOAD003", Origin: "Memphis"}, nil)

		rec := f.do(http.MethodGet, "/loads/LOAD003", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Memphis")
	})

	t.Run("not found returns 404", func(t *testing.T) {
		f := newServerFixture(t)
		f.loadRepo.On("FindByLoadID", mock.Anything, "NOPE").
			Return(nil, fmt.Errorf("%w: load NOPE", apperrors.ErrNotFound))

		rec := f.do(http.MethodGet, "/loads/NOPE", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLogOffer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newServerFixture(t)
		f.offers.On("Save", mock.Anything, mock.MatchedBy(func(o model.CarrierOffer) bool {
			return o.LoadID == "LOAD001" && o.CarrierOffer == 2300
		})).Return(nil)

		rec := f.do(http.MethodPost, "/offers/log", model.CarrierOfferLogRequest{
			LoadID:       "LOAD001",
			MCNumber:     "123456",
			CarrierOffer: 2300,
		}, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Offer logged successfully")
		f.offers.AssertExpectations(t)
	})

	t.Run("non-positive offer returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/offers/log", model.CarrierOfferLogRequest{
			LoadID:       "LOAD001",
			MCNumber:     "123456",
			CarrierOffer: -10,
		}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.offers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/offers/log", bytes.NewBufferString("{not json"))
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		f.server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogCallOutcome(t *testing.T) {
	validBody := func() model.CallOutcomeRequest {
		return model.CallOutcomeRequest{
			HappyRobotRunID:                "run-42",
			MCNumber:                       "123456",
			CallOutcomeClassification:      "Booked",
			CarrierSentimentClassification: "Positive",
			FMCSAVerifiedEligible:          "ACTIVE",
			InitialCarrierOffer:            "2450.50",
			NegotiationRounds:              "3",
		}
	}

	t.Run("created with call_log_id", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("FindByRunID", mock.Anything, "run-42").
			Return(nil, apperrors.ErrNotFound)
		f.callLog.On("Save", mock.Anything, mock.MatchedBy(func(e model.CallLog) bool {
			return e.HappyRobotRunID == "run-42" && e.FMCSAVerifiedEligible &&
				e.InitialCarrierOffer != nil && *e.InitialCarrierOffer == 2450.50 &&
				e.NegotiationRounds != nil && *e.NegotiationRounds == 3
		})).Return(int64(17), nil)

		rec := f.do(http.MethodPost, "/offers/log-outcome", validBody(), true)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp model.CallOutcomeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(17), resp.CallLogID)
		f.callLog.AssertExpectations(t)
	})

	t.Run("duplicate run returns 409", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("FindByRunID", mock.Anything, "run-42").
			Return(&model.CallLog{ID: 9, HappyRobotRunID: "run-42"}, nil)

		rec := f.do(http.MethodPost, "/offers/log-outcome", validBody(), true)
		assert.Equal(t, http.StatusConflict, rec.Code)
		f.callLog.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("constraint violation surfaces as 409", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("FindByRunID", mock.Anything, "run-42").
			Return(nil, apperrors.ErrNotFound)
		f.callLog.On("Save", mock.Anything, mock.Anything).
			Return(int64(0), fmt.Errorf("%w: duplicate key", apperrors.ErrDuplicate))

		rec := f.do(http.MethodPost, "/offers/log-outcome", validBody(), true)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing required fields returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		body := validBody()
		body.CallOutcomeClassification = ""

		rec := f.do(http.MethodPost, "/offers/log-outcome", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListLogs(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("FindRecent", mock.Anything, usecase.DefaultLogListLimit, 0).
			Return([]model.CallLog{{ID: 1}, {ID: 2}}, nil)

		rec := f.do(http.MethodGet, "/offers/logs", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var logs []model.CallLog
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
		assert.Len(t, logs, 2)
	})

	t.Run("non-integer limit returns 400", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/offers/logs?limit=lots", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("renders stats and recent calls", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("Stats", mock.Anything).Return(model.CallStats{
			TotalCalls:           10,
			BookedCalls:          3,
			AvgNegotiationRounds: 2.5,
		}, nil)
		f.callLog.On("FindRecent", mock.Anything, 20, 0).Return([]model.CallLog{
			{
				HappyRobotRunID:           "run-1",
				CallOutcomeClassification: "Booked",
				CalledAt:                  time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
			},
		}, nil)

		rec := f.do(http.MethodGet, "/offers/dashboard?api_key="+testAPIKey, nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "30.0%")
		assert.Contains(t, rec.Body.String(), "run-1")
		assert.Contains(t, rec.Body.String(), "2026-08-30T14:05:00Z")
	})

	t.Run("explicit limit overrides the default", func(t *testing.T) {
		f := newServerFixture(t)
		f.callLog.On("Stats", mock.Anything).Return(model.CallStats{}, nil)
		f.callLog.On("FindRecent", mock.Anything, 5, 0).Return([]model.CallLog{}, nil)

		rec := f.do(http.MethodGet, "/offers/dashboard?api_key="+testAPIKey+"&limit=5", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		f.callLog.AssertExpectations(t)
	})

	t.Run("no api_key query param returns 401", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/offers/dashboard", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("header key does not satisfy query auth", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/offers/dashboard", nil, true)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestIDHeader(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(http.MethodGet, "/health", nil, false)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
