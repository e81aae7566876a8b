package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statq/adapters/stats"
	"statq/internal/config"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode},
		Analysis: config.AnalysisConfig{
			ConfidenceLevel: stats.Confidence95,
			IQRMultiplier:   stats.DefaultIQRMultiplier,
			ZScoreThreshold: stats.DefaultZScoreThreshold,
		},
	}
	return NewServer(cfg, nil, nil)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEvaluateRoute(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, "/api/logic/evaluate", map[string]interface{}{
		"questions": []map[string]interface{}{
			{"id": "q_gate", "order_index": 0, "type": "multiple_choice"},
			{"id": "q_followup", "order_index": 1, "type": "short_text"},
		},
		"answers": map[string]interface{}{
			"q_gate": map[string]interface{}{"choice_id": "no"},
		},
		"rules": []map[string]interface{}{{
			"id":      "r1",
			"enabled": true,
			"action":  "hide",
			"groups": []map[string]interface{}{{
				"combinator": "and",
				"conditions": []map[string]interface{}{{
					"source_question_id": "q_gate",
					"operator":           "equals",
					"value":              "no",
				}},
			}},
			"group_combinator": "and",
			"target_ids":       []string{"q_followup"},
		}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Visible, 1)
	assert.Equal(t, "q_gate", string(resp.Visible[0].ID))
	assert.True(t, resp.Result.Hidden["q_followup"])
}

func TestFormulaRoute(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, "/api/logic/formula", map[string]interface{}{
		"formula":   "Q1 + Q2 * 2",
		"variables": map[string]float64{"Q1": 3, "Q2": 5},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 13.0, resp.Value)
}

func TestFormulaRouteRejectsBadExpression(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/logic/formula", map[string]interface{}{
		"formula": "1 +",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateRoute(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, "/api/logic/validate", map[string]interface{}{
		"question": map[string]interface{}{
			"id": "q1", "type": "linear_scale", "required": true,
			"options": map[string]interface{}{"min": 1, "max": 5},
		},
		"value": map[string]interface{}{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
}

func TestProportionRoute(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, "/api/analysis/proportion", map[string]interface{}{
		"successes": 8,
		"total":     10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp stats.ProportionInterval
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, stats.Confidence95, resp.Level)
	assert.Greater(t, resp.Lower, 0.0)
	assert.Less(t, resp.Upper, 1.0)
}

func TestPairedTTestRouteMismatch(t *testing.T) {
	s := newTestServer()
	w := postJSON(t, s, "/api/analysis/ttest/paired", map[string]interface{}{
		"before": []float64{1, 2, 3},
		"after":  []float64{1, 2},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSurveyRoutesWithoutPersistence(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/surveys/s1/report", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
