package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/voyageai/voyageai/cache"
	"github.com/voyageai/voyageai/config"
	"github.com/voyageai/voyageai/pipeline"
	"github.com/voyageai/voyageai/service"
	"github.com/voyageai/voyageai/travel"
)

func newTestServer(t *testing.T, mutate func(*config.Settings)) http.Handler {
	t.Helper()
	return newTestServerWithDB(t, nil, mutate)
}

func newTestServerWithDB(t *testing.T, db DBPinger, mutate func(*config.Settings)) http.Handler {
	t.Helper()
	settings := config.Defaults()
	settings.RateLimitRPM = 0
	if mutate != nil {
		mutate(&settings)
	}
	svc := service.New(
		pipeline.NewExecutor(pipeline.Deps{}),
		cache.NewInMemoryCache(0),
		15*time.Minute,
		nil,
	)
	return New(settings, svc, db, nil).Handler()
}

// pingFunc adapts a function to DBPinger for tests.
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["service"] != "voyageai" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthReportsDatabase(t *testing.T) {
	h := newTestServerWithDB(t, pingFunc(func(context.Context) error { return nil }), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["database"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthDegradedWhenDatabaseDown(t *testing.T) {
	h := newTestServerWithDB(t, pingFunc(func(context.Context) error {
		return errors.New("connection refused")
	}), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Degraded, never failing: planning has no database dependency.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "degraded" || body["database"] != "unreachable" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCreatePlan(t *testing.T) {
	h := newTestServer(t, nil)
	body := strings.NewReader(`{"prompt":"3 days in Goa from Mumbai"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plan", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var resp travel.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Plan.DayByDayItinerary) != 3 {
		t.Errorf("itinerary = %d days", len(resp.Plan.DayByDayItinerary))
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("X-Request-ID header missing")
	}
}

func TestCreatePlanValidation(t *testing.T) {
	h := newTestServer(t, nil)
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty prompt", `{"prompt":""}`, "prompt is required"},
		{"malformed json", `{"prompt":`, "invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(tc.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			json.Unmarshal(rec.Body.Bytes(), &body)
			if body["error"] != tc.want {
				t.Errorf("error = %q, want %q", body["error"], tc.want)
			}
		})
	}
}

func TestCreatePlanRejectsGet(t *testing.T) {
	h := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plan", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCreatePlanStream(t *testing.T) {
	h := newTestServer(t, nil)
	body := strings.NewReader(`{"prompt":"3 days in Goa from Mumbai"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plan/stream", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	var events []service.Event
	var sawDone bool
	scanner := bufio.NewScanner(rec.Body)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "data: ") {
			t.Fatalf("non-SSE line: %q", line)
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			sawDone = true
			continue
		}
		var ev service.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			t.Fatalf("bad event %q: %v", payload, err)
		}
		events = append(events, ev)
	}
	if !sawDone {
		t.Fatalf("stream missing [DONE] terminator")
	}
	if len(events) < 3 {
		t.Fatalf("events = %d", len(events))
	}
	if events[0].Type != "progress" {
		t.Errorf("first event = %+v", events[0])
	}
	last := events[len(events)-1]
	if last.Type != "result" || len(last.Data) == 0 {
		t.Errorf("last event = %+v", last)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, func(s *config.Settings) {
		s.CORSOrigins = []string{"https://app.example.com"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plan", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin = %q", got)
	}

	// Unlisted origins get no CORS headers.
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/plan", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin allowed: %q", got)
	}
}

func TestRequestIDHonored(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want caller's ID echoed", got)
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Now()
	rl := newRateLimiter(2)
	rl.now = func() time.Time { return now }

	if !rl.allow("1.2.3.4") || !rl.allow("1.2.3.4") {
		t.Fatalf("burst allowance rejected")
	}
	if rl.allow("1.2.3.4") {
		t.Fatalf("third request allowed within the window")
	}
	// Other clients have their own bucket.
	if !rl.allow("5.6.7.8") {
		t.Errorf("independent client rejected")
	}

	// Half a minute refills one token at 2 rpm.
	now = now.Add(30 * time.Second)
	if !rl.allow("1.2.3.4") {
		t.Errorf("refilled token rejected")
	}
	if rl.allow("1.2.3.4") {
		t.Errorf("over-refill allowed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	h := newTestServer(t, func(s *config.Settings) {
		s.RateLimitRPM = 1
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "9.9.9.9:5678"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Errorf("Retry-After header missing")
	}
}
