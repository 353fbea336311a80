package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"membrane-calculator/domain"
	"membrane-calculator/repository"
	"membrane-calculator/service"
)

func newTestRouter(t *testing.T, capacity int) http.Handler {
	t.Helper()

	svc := service.NewSavingsService(
		repository.NewPresetRepositoryMemory(domain.DefaultPresets()...),
		repository.NewMemoryCache(),
		time.Minute,
	)
	explainer := service.NewExplanationService("", "", "", time.Second)
	limiter := newRateLimiter(capacity, time.Minute, time.Now)

	return NewRouter(
		zap.NewNop(),
		NewSavingsHandler(svc, explainer),
		NewReportHandler(svc),
		limiter,
	)
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEvaluate(t *testing.T, w *httptest.ResponseRecorder) EvaluateResponse {
	t.Helper()
	var resp EvaluateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestEvaluateHandler_OK(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate", `{
		"area": 5000,
		"energyType": "primary_heat",
		"heatingConsumption": 200,
		"coolingConsumption": 50,
		"rateHeat": 0.8,
		"rateGas": 0,
		"rateElectricity": 2.0,
		"co2Heat": 0.1,
		"co2Gas": 0,
		"co2Electricity": 0.07,
		"membraneCostPerArea": 450,
		"savingsPercent": 15,
		"co2TaxRate": 300
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEvaluate(t, w)
	assert.InDelta(t, 200_287.5, resp.Result.YearlySavings, 1e-6)
	assert.InDelta(t, 11.2338, resp.BreakEvenMarker, 1e-4)
	assert.Len(t, resp.Result.SavingsSeries, service.ProjectionYears)
	assert.Equal(t, "2.250.000", resp.Summary.MembranePrice)
	assert.Empty(t, resp.Explanation)
}

func TestEvaluateHandler_PartialBodyKeepsDefaults(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate", `{"energyType": "Naturgas + El"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEvaluate(t, w)
	assert.Equal(t, domain.NaturalGas, resp.Parameters.EnergyType)
	assert.Equal(t, 5000.0, resp.Parameters.Area)
	assert.InDelta(t, 1_700_000, resp.Result.AnnualEnergyCost, 1e-6)
}

func TestEvaluateHandler_Explain(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate?explain=true", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEvaluate(t, w)
	assert.Equal(t, service.FallbackExplanation(resp.Result), resp.Explanation)
}

func TestEvaluateHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/membrane/evaluate", `{"energyType": "kul"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/membrane/evaluate", `{"area": "stor"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateHandler_OverflowingResult(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate", `{"area": 1e200, "heatingConsumption": 1e200}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "result is not a finite number")
}

func TestEvaluateHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodGet, "/membrane/evaluate", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestEvaluateHandler_RateLimited(t *testing.T) {
	router := newTestRouter(t, 1)

	w := doRequest(router, http.MethodPost, "/membrane/evaluate", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/membrane/evaluate", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// GET routes are not limited.
	w = doRequest(router, http.MethodGet, "/membrane/defaults", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPresetHandlers(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodGet, "/membrane/presets", "")
	require.Equal(t, http.StatusOK, w.Code)
	var presets []domain.Preset
	require.NoError(t, json.NewDecoder(w.Body).Decode(&presets))
	assert.Len(t, presets, 2)

	w = doRequest(router, http.MethodGet, "/membrane/presets/naturgas/evaluate", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEvaluate(t, w)
	assert.Equal(t, "naturgas", resp.Preset)
	assert.InDelta(t, 237.5, resp.Result.TotalCo2EmissionTons, 1e-6)

	w = doRequest(router, http.MethodGet, "/membrane/presets/lager/evaluate", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDefaultsHandler(t *testing.T) {
	router := newTestRouter(t, 100)

	w := doRequest(router, http.MethodGet, "/membrane/defaults", "")

	require.Equal(t, http.StatusOK, w.Code)
	var params domain.ParameterSet
	require.NoError(t, json.NewDecoder(w.Body).Decode(&params))
	assert.Equal(t, domain.DefaultParameters(), params)
}
