// README: Trip planning domain types.
package trip

import (
	"errors"
	"time"
)

// ErrNotConfigured is returned by Plan when no generation backend credential
// was configured at startup; the HTTP boundary maps it to 503.
var ErrNotConfigured = errors.New("generation backend is not configured")

// Request is one trip-planning request. It is created per incoming call,
// never mutated, and discarded once the response is produced. The
// end >= start invariant is enforced at the HTTP boundary.
type Request struct {
	Source      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	BudgetLevel int
}

// DurationDays is the trip length in days, inclusive of both endpoints.
func (r Request) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// PlanResponse aggregates the four generated sections, in fixed order.
// Every field is always populated: either model content or an in-band
// diagnostic string.
type PlanResponse struct {
	FlightSuggestions string `json:"flight_suggestions"`
	Itinerary         string `json:"itinerary"`
	Recommendations   string `json:"recommendations"`
	WeatherForecast   string `json:"weather_forecast"`
}
