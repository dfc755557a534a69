package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/risk29/riskcore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	cal := config.DefaultCalibration()
	return NewWebServer("0", &cal, config.MethodCatalog())
}

func doJSON(t *testing.T, ws *WebServer, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ws.Handler().ServeHTTP(recorder, req)

	var decoded map[string]interface{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func TestHandleHealth(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", body["status"])
}

func TestHandleListMethods(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodGet, "/api/methods", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "time_decay_momentum", body["recommended_method"])

	methods, ok := body["methods"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, methods, 5)
	assert.Contains(t, methods, "meta_ensemble")
}

func TestHandleGetMethod(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodGet, "/api/methods/regime_adaptive", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "regime_adaptive", body["method"])

	recorder, _ = doJSON(t, ws, http.MethodGet, "/api/methods/astrology", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleScore(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodPost, "/api/score",
		`{"method": "weighted_average", "indicators": {"M2SL": 80}}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "weighted_average", body["method"])

	// Liquidity renormalizes to the single present indicator; the other
	// four categories default to neutral: (80 + 4*50) / 5 = 56.
	assert.InDelta(t, 56.0, body["overall_score"].(float64), 1e-9)

	categories, ok := body["category_scores"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 80.0, categories["liquidity"].(float64), 1e-9)
	assert.InDelta(t, 50.0, categories["macro"].(float64), 1e-9)
}

func TestHandleScoreSubstitutesUnknownMethod(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodPost, "/api/score",
		`{"method": "prophet_forecast", "indicators": {"VIXCLS": 45}}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "time_decay_momentum", body["method"])
}

func TestHandleScoreRejectsBadRequests(t *testing.T) {
	ws := newTestServer(t)

	recorder, _ := doJSON(t, ws, http.MethodPost, "/api/score", `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = doJSON(t, ws, http.MethodPost, "/api/score",
		`{"method": "weighted_average", "indicators": {}}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleScoreAll(t *testing.T) {
	ws := newTestServer(t)

	recorder, body := doJSON(t, ws, http.MethodPost, "/api/score/all",
		`{"indicators": {"VIXCLS": 45, "YIELD_CURVE": 60, "M2SL": 30}}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	methods, ok := body["methods"].(map[string]interface{})
	require.True(t, ok)
	require.Len(t, methods, 5)

	for name, raw := range methods {
		slot, ok := raw.(map[string]interface{})
		require.True(t, ok, name)
		assert.Contains(t, slot, "overall_score", name)
		assert.False(t, slot["fell_back"].(bool), name)

		categories, ok := slot["category_scores"].(map[string]interface{})
		require.True(t, ok, name)
		assert.Len(t, categories, 5, name)
	}
}
