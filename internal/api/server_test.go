package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/config"
	"airline_tycoon/internal/game"
	"airline_tycoon/internal/models"
)

func newTestServer(t *testing.T, rl config.RateLimitConfig) http.Handler {
	t.Helper()
	engine := game.NewEngine(catalog.Default(), game.NewRandom(7), nil, 30)
	cfg := config.Config{
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: rl,
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New(ctx, engine, cfg)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return er
}

const setupBody = `{"name":"Test Air","code":"T9","hub":"ICN","concept":"FSC","capital":"WEALTHY"}`

func TestHealth(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})
	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health: %d %q", rec.Code, rec.Body.String())
	}
}

func TestSetupAndFlyDay(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	rec := do(t, h, http.MethodPost, "/setup", setupBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("setup status %d: %s", rec.Code, rec.Body.String())
	}
	var res actionResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(res.Message, "Test Air") || res.State.AirlineProfile == nil {
		t.Fatalf("unexpected setup response %+v", res.Message)
	}

	rec = do(t, h, http.MethodPost, "/routes/ICN-NRT/open", `{"price_strategy":"STANDARD"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("open route status %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/fleet/purchase", `{"model_id":"A350","configuration_id":"FSC_LH","nickname":"Hanbit"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("purchase status %d: %s", rec.Code, rec.Body.String())
	}
	res = actionResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.State.Fleet) != 1 {
		t.Fatalf("fleet size %d", len(res.State.Fleet))
	}
	id := res.State.Fleet[0].ID

	rec = do(t, h, http.MethodPut, "/fleet/"+id+"/schedule", `{"route_ids":["ICN-NRT"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("schedule status %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/tick", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("tick status %d", rec.Code)
	}
	var st models.GameState
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if st.LastReport == nil || len(st.LastReport.Routes) != 1 {
		t.Fatalf("expected a report for one route, got %+v", st.LastReport)
	}

	rec = do(t, h, http.MethodGet, "/notifications", "")
	var notes []string
	if err := json.NewDecoder(rec.Body).Decode(&notes); err != nil || len(notes) == 0 {
		t.Fatalf("notifications %v: %v", notes, err)
	}
}

func TestErrorMapping(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		errTyp string
	}{
		{"not set up", http.MethodPost, "/fleet/purchase", `{"model_id":"A350","configuration_id":"FSC_LH"}`, http.StatusBadRequest, "validation"},
		{"malformed body", http.MethodPost, "/setup", `{"name":`, http.StatusBadRequest, "validation"},
		{"unknown hub", http.MethodPost, "/setup", `{"name":"X","code":"X9","hub":"ZZZ","concept":"FSC","capital":"STANDARD"}`, http.StatusNotFound, "not_found"},
		{"bad speed", http.MethodPost, "/sim/speed", `{"speed":3}`, http.StatusBadRequest, "validation"},
		{"no store", http.MethodPost, "/save", "", http.StatusBadRequest, "validation"},
		{"bad limit", http.MethodGet, "/notifications?limit=x", "", http.StatusBadRequest, "validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			er := decodeError(t, rec)
			if er.Error != tt.errTyp || er.Code != tt.status || er.Message == "" {
				t.Fatalf("unexpected error body %+v", er)
			}
		})
	}
}

func TestConflictAndInsufficientFunds(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	rec := do(t, h, http.MethodPost, "/setup", `{"name":"Tight Air","code":"T8","hub":"ICN","concept":"FSC","capital":"CHALLENGING"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("setup status %d: %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/setup", setupBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second setup status %d, want 409", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/fleet/purchase", `{"model_id":"A350","configuration_id":"FSC_LH"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("purchase status %d, want 422: %s", rec.Code, rec.Body.String())
	}
	if er := decodeError(t, rec); er.Error != "insufficient_funds" {
		t.Fatalf("error type %q", er.Error)
	}
}

func TestAirportsFilter(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})
	rec := do(t, h, http.MethodGet, "/airports?scale=mega", "")
	var airports []models.Airport
	if err := json.NewDecoder(rec.Body).Decode(&airports); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(airports) == 0 {
		t.Fatalf("expected mega airports")
	}
	for _, a := range airports {
		if a.Scale != models.ScaleMega {
			t.Fatalf("%s has scale %s", a.Code, a.Scale)
		}
	}
}

func TestSimControls(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	rec := do(t, h, http.MethodPost, "/sim/start", `{"speed":5}`)
	var st models.GameState
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !st.IsRunning || st.Speed != models.SpeedFast {
		t.Fatalf("start: running=%v speed=%d", st.IsRunning, st.Speed)
	}

	rec = do(t, h, http.MethodPost, "/sim/pause", "")
	st = models.GameState{}
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.IsRunning {
		t.Fatalf("still running after pause")
	}
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1})

	if rec := do(t, h, http.MethodPost, "/sim/pause", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request status %d", rec.Code)
	}
	rec := do(t, h, http.MethodPost, "/sim/pause", "")
	if rec.Code != http.StatusTooManyRequests || rec.Header().Get("Retry-After") == "" {
		t.Fatalf("second request status %d", rec.Code)
	}
	// reads are not limited
	if rec := do(t, h, http.MethodGet, "/state", ""); rec.Code != http.StatusOK {
		t.Fatalf("state status %d", rec.Code)
	}
}

func TestRateLimiterCleanupStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rl := newRateLimiter(ctx, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1})
	cancel()
	select {
	case <-rl.done:
	case <-time.After(time.Second):
		t.Fatalf("cleanup loop still running after cancel")
	}

	off := newRateLimiter(context.Background(), config.RateLimitConfig{})
	select {
	case <-off.done:
	default:
		t.Fatalf("disabled limiter should not start a cleanup loop")
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})
	req := httptest.NewRequest(http.MethodOptions, "/setup", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("missing CORS headers: %v", rec.Header())
	}
}
