// README: Trip plan orchestrator; fans four generation tasks out and joins the results.
package trip

import (
	"context"
	"sync"

	"github.com/sankalp69/AI-travel-planner/internal/ai"
	logx "github.com/sankalp69/AI-travel-planner/pkg/logger"
)

// Per-task sampling parameters. Fixed constants: callers of the orchestrator
// cannot tune them.
var (
	flightsTask         = taskSpec{label: "flight suggestions", temperature: 0.6, maxTokens: 700}
	itineraryTask       = taskSpec{label: "itinerary", temperature: 0.7, maxTokens: 2048}
	recommendationsTask = taskSpec{label: "recommendations", temperature: 0.7, maxTokens: 2048}
	weatherTask         = taskSpec{label: "weather forecast", temperature: 0.4, maxTokens: 1500}
)

type taskSpec struct {
	label       string
	temperature float32
	maxTokens   int32
}

// Service orchestrates the four generation tasks for one trip plan.
type Service struct {
	gen   *ai.Client
	model string
	cache *Cache // optional; nil disables caching
}

// NewService builds the orchestrator. cache may be nil.
func NewService(gen *ai.Client, model string, cache *Cache) *Service {
	return &Service{gen: gen, model: model, cache: cache}
}

// Configured reports whether the generation backend is usable.
func (s *Service) Configured() bool {
	return s.gen.Configured()
}

// Plan produces a full trip plan. The four tasks are independent, so they run
// concurrently and the response is assembled in fixed field order once all
// have finished. Each task absorbs its own failures into an in-band string;
// the only structured error is ErrNotConfigured, checked once up front.
func (s *Service) Plan(ctx context.Context, req Request) (PlanResponse, error) {
	if !s.gen.Configured() {
		return PlanResponse{}, ErrNotConfigured
	}

	if s.cache != nil {
		if resp, hit := s.cache.Get(ctx, req); hit {
			logx.Info().Str("destination", req.Destination).Msg("plan served from cache")
			return resp, nil
		}
	}

	budget := DescribeBudget(req.BudgetLevel)

	type job struct {
		spec   taskSpec
		prompt string
	}
	jobs := [4]job{
		{flightsTask, FlightPrompt(req, budget)},
		{itineraryTask, ItineraryPrompt(req, budget)},
		{recommendationsTask, RecommendationsPrompt(req.Destination, budget)},
		{weatherTask, WeatherPrompt(req.Destination)},
	}

	var results [4]ai.Result
	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.gen.Generate(ctx, jobs[i].spec.label, jobs[i].prompt, ai.Params{
				Model:           s.model,
				Temperature:     jobs[i].spec.temperature,
				MaxOutputTokens: jobs[i].spec.maxTokens,
			})
		}(i)
	}
	wg.Wait()

	resp := PlanResponse{
		FlightSuggestions: results[0].Display(flightsTask.label),
		Itinerary:         results[1].Display(itineraryTask.label),
		Recommendations:   results[2].Display(recommendationsTask.label),
		WeatherForecast:   results[3].Display(weatherTask.label),
	}

	if s.cache != nil && allOK(results[:]) {
		s.cache.Set(ctx, req, resp)
	}

	return resp, nil
}

// allOK reports whether every task produced real content. Diagnostic strings
// are never cached; a transient fault should not be replayed for an hour.
func allOK(results []ai.Result) bool {
	for _, r := range results {
		if r.State != ai.StateOK {
			return false
		}
	}
	return true
}
