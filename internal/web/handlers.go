package web

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/gorilla/mux"
	"github.com/risk29/riskcore/internal/engine"
	"github.com/risk29/riskcore/internal/types"
)

// scoreRequest is the body of POST /api/score. Method is the wire name of a
// scoring method; an empty or unrecognized name is substituted with the
// default method, mirroring the engine's fallback policy.
type scoreRequest struct {
	Method     string             `json:"method"`
	Indicators types.IndicatorSet `json:"indicators"`
}

// scoreAllRequest is the body of POST /api/score/all.
type scoreAllRequest struct {
	Indicators types.IndicatorSet `json:"indicators"`
}

// methodResult is one method's slot in a batch response.
type methodResult struct {
	OverallScore   float64                    `json:"overall_score"`
	CategoryScores map[types.Category]float64 `json:"category_scores"`
	FellBack       bool                       `json:"fell_back"`
	FallbackReason string                     `json:"fallback_reason,omitempty"`
	Metadata       types.MethodDescriptor     `json:"metadata"`
}

// handleHealth returns server health status
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":          runtime.Version(),
			"goroutines_count": runtime.NumGoroutine(),
			"alloc_bytes":      memStats.Alloc,
			"sys_bytes":        memStats.Sys,
			"gc_cycles":        memStats.NumGC,
			"uptime_seconds":   int64(time.Since(ws.started).Seconds()),
		},
		"component": map[string]interface{}{
			"name":    "riskcore-scoring-engine",
			"version": "1.0.0",
		},
		"engine": map[string]interface{}{
			"methods":        len(ws.catalog),
			"default_method": types.DefaultMethod.String(),
		},
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleListMethods returns the full method catalog
func (ws *WebServer) handleListMethods(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"methods":            ws.catalog,
		"recommended_method": types.DefaultMethod.String(),
		"timestamp":          time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetMethod returns the descriptor for a single method by wire name
func (ws *WebServer) handleGetMethod(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	method, ok := types.ParseMethod(name)
	if !ok {
		ws.writeErrorResponse(w, http.StatusNotFound, "Unknown scoring method: "+name)
		return
	}

	response := map[string]interface{}{
		"method":     method.String(),
		"descriptor": ws.catalog[method],
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleScore runs one scoring method against the supplied indicators
func (ws *WebServer) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Indicators) == 0 {
		ws.writeErrorResponse(w, http.StatusBadRequest, "No indicators supplied")
		return
	}

	start := time.Now()
	result, method, err := engine.ScoreByName(req.Indicators, req.Method, ws.calibration)
	observeScoring(method, err == nil, time.Since(start))
	if err != nil {
		webLogger.Error().Err(err).Str("method", method.String()).Msg("Scoring failed")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Scoring failed")
		return
	}

	response := map[string]interface{}{
		"method":          method.String(),
		"overall_score":   result.Overall,
		"category_scores": result.CategoryScores,
		"timestamp":       time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleScoreAll runs every scoring method against the supplied indicators
func (ws *WebServer) handleScoreAll(w http.ResponseWriter, r *http.Request) {
	var req scoreAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Indicators) == 0 {
		ws.writeErrorResponse(w, http.StatusBadRequest, "No indicators supplied")
		return
	}

	start := time.Now()
	outcomes := engine.ScoreAllMethods(req.Indicators, ws.calibration)

	methods := make(map[string]methodResult, len(outcomes))
	for method, outcome := range outcomes {
		observeScoring(method, !outcome.FellBack, time.Since(start))
		methods[method.String()] = methodResult{
			OverallScore:   outcome.Result.Overall,
			CategoryScores: outcome.Result.CategoryScores,
			FellBack:       outcome.FellBack,
			FallbackReason: outcome.FallbackReason,
			Metadata:       ws.catalog[method],
		}
	}

	response := map[string]interface{}{
		"methods":   methods,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}
