package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordsolver/internal/monitor"
)

type fakeReadiness struct {
	states  []monitor.TargetState
	healthy bool
}

func (f *fakeReadiness) States() []monitor.TargetState { return f.states }
func (f *fakeReadiness) Healthy() bool                 { return f.healthy }

func doGetHealth(h *RequestHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	h.GetHealth(rec, req)
	return rec
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var envelope struct {
		Status string         `json:"status"`
		Data   HealthResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope.Data
}

func TestGetHealthReportsHealthy(t *testing.T) {
	h := NewRequestHandler(&fakeReadiness{
		healthy: true,
		states: []monitor.TargetState{
			{Name: "postgres", ComponentType: "datastore", Status: monitor.StatusHealthy, LatencyMs: 2},
			{Name: "redis", ComponentType: "datastore", Status: monitor.StatusHealthy, LatencyMs: 1},
		},
	})

	rec := doGetHealth(h)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != monitor.StatusHealthy {
		t.Fatalf("expected healthy, got %q", resp.Status)
	}
	if len(resp.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(resp.Components))
	}
	if resp.Components[0].ComponentType != "datastore" {
		t.Fatalf("expected datastore component type, got %q", resp.Components[0].ComponentType)
	}
}

func TestGetHealthReportsDegraded(t *testing.T) {
	h := NewRequestHandler(&fakeReadiness{
		healthy: false,
		states: []monitor.TargetState{
			{Name: "postgres", ComponentType: "datastore", Status: monitor.StatusUnhealthy, FailStreak: 5, LastError: "dial refused"},
			{Name: "redis", ComponentType: "datastore", Status: monitor.StatusHealthy},
		},
	})

	rec := doGetHealth(h)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != monitor.StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %q", resp.Status)
	}
	if resp.Components[0].FailStreak != 5 {
		t.Fatalf("expected fail streak 5, got %d", resp.Components[0].FailStreak)
	}
}
