package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixed := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)

	ok := HealthProbe{Name: "database", Check: func(context.Context) error { return nil }}
	down := HealthProbe{Name: "result_cache", Check: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name       string
		probes     []HealthProbe
		wantStatus string
		wantCache  string
	}{
		{name: "all probes pass", probes: []HealthProbe{ok}, wantStatus: "ok"},
		{name: "failing probe degrades", probes: []HealthProbe{ok, down}, wantStatus: "degraded", wantCache: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthController(func() time.Time { return fixed }, tt.probes...)
			engine := gin.New()
			engine.GET("/health", h.Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, body.Status)
			}
			if body.Components["database"] != "ok" {
				t.Errorf("expected database ok, got %s", body.Components["database"])
			}
			if body.Components["result_cache"] != tt.wantCache {
				t.Errorf("expected result_cache %q, got %q", tt.wantCache, body.Components["result_cache"])
			}
			if body.Timestamp != "2024-06-05T12:00:00Z" {
				t.Errorf("expected fixed timestamp, got %s", body.Timestamp)
			}
		})
	}
}
