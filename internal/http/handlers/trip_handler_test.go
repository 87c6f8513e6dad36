// README: Handler tests for the trip planning endpoint.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sankalp69/AI-travel-planner/internal/ai"
	"github.com/sankalp69/AI-travel-planner/internal/http/handlers"
	"github.com/sankalp69/AI-travel-planner/internal/modules/trip"
)

// countingGenerator is a deterministic backend double that echoes prompts.
type countingGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *countingGenerator) GenerateText(_ context.Context, prompt string, _ ai.Params) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return "ECHO: " + prompt, nil
}

func (g *countingGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func buildRouter(gen ai.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := trip.NewService(ai.NewClient(gen, "stub"), "stub-model", nil)
	h := handlers.NewTripHandler(svc)
	r := gin.New()
	r.POST("/plan_trip/", h.PlanTrip)
	r.GET("/", handlers.Health)
	return r
}

func doPlanTrip(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/plan_trip/", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"source":       "New York",
		"destination":  "Paris",
		"start_date":   "2025-06-01",
		"end_date":     "2025-06-08",
		"budget_level": 2,
	}
}

func TestPlanTrip_OK(t *testing.T) {
	gen := &countingGenerator{}
	r := buildRouter(gen)

	w := doPlanTrip(r, validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		FlightSuggestions string `json:"flight_suggestions"`
		Itinerary         string `json:"itinerary"`
		Recommendations   string `json:"recommendations"`
		WeatherForecast   string `json:"weather_forecast"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for name, text := range map[string]string{
		"flight_suggestions": resp.FlightSuggestions,
		"itinerary":          resp.Itinerary,
		"recommendations":    resp.Recommendations,
		"weather_forecast":   resp.WeatherForecast,
	} {
		if !strings.Contains(text, "Paris") {
			t.Errorf("field %s should reference the destination, got %q", name, text)
		}
	}
	if !strings.Contains(resp.Itinerary, "8 days") {
		t.Errorf("itinerary should reflect the 8-day duration")
	}
	if gen.callCount() != 4 {
		t.Errorf("expected 4 backend calls, got %d", gen.callCount())
	}
}

func TestPlanTrip_NotConfigured503(t *testing.T) {
	gen := &countingGenerator{}
	// nil generator: no credential was configured at startup.
	r := buildRouter(nil)

	w := doPlanTrip(r, validBody())
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "detail") {
		t.Errorf("503 body should carry an error detail, got %s", w.Body.String())
	}
	if gen.callCount() != 0 {
		t.Errorf("no backend call should be attempted, got %d", gen.callCount())
	}
}

func TestPlanTrip_BadRequests(t *testing.T) {
	r := buildRouter(&countingGenerator{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing destination", map[string]any{
			"source": "New York", "start_date": "2025-06-01", "end_date": "2025-06-08", "budget_level": 2,
		}},
		{"unparseable start date", func() map[string]any {
			b := validBody()
			b["start_date"] = "June 1st"
			return b
		}()},
		{"unparseable end date", func() map[string]any {
			b := validBody()
			b["end_date"] = "2025-13-40"
			return b
		}()},
		{"end before start", func() map[string]any {
			b := validBody()
			b["end_date"] = "2025-05-01"
			return b
		}()},
		{"wrong budget type", func() map[string]any {
			b := validBody()
			b["budget_level"] = "two"
			return b
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPlanTrip(r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	r := buildRouter(&countingGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("health body should report healthy, got %s", w.Body.String())
	}
}
