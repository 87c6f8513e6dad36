// README: Demo client; posts a trip request and renders the plan in the terminal.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sankalp69/AI-travel-planner/internal/render"
)

type planRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	BudgetLevel int    `json:"budget_level"`
}

type planResponse struct {
	FlightSuggestions string `json:"flight_suggestions"`
	Itinerary         string `json:"itinerary"`
	Recommendations   string `json:"recommendations"`
	WeatherForecast   string `json:"weather_forecast"`
}

func main() {
	source := flag.String("source", "New York", "departure city")
	destination := flag.String("destination", "Paris", "destination city")
	start := flag.String("start", time.Now().AddDate(0, 0, 7).Format("2006-01-02"), "start date (YYYY-MM-DD)")
	end := flag.String("end", time.Now().AddDate(0, 0, 14).Format("2006-01-02"), "end date (YYYY-MM-DD)")
	budget := flag.Int("budget", 2, "budget level: 1 budget-friendly, 2 mid-range, 3 luxury")
	flag.Parse()

	endpoint := planEndpoint(os.Getenv("API_URL"))
	fmt.Printf("API endpoint: %s\n", endpoint)

	payload, err := json.Marshal(planRequest{
		Source:      *source,
		Destination: *destination,
		StartDate:   *start,
		EndDate:     *end,
		BudgetLevel: *budget,
	})
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	client := &http.Client{Timeout: 180 * time.Second}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("call API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("API returned %d: %s", resp.StatusCode, body)
	}

	var plan planResponse
	if err := json.Unmarshal(body, &plan); err != nil {
		log.Fatalf("unmarshal response: %v", err)
	}

	printSection("Flight Suggestions", plan.FlightSuggestions, false)
	printSection("Trip Itinerary", plan.Itinerary, false)
	printSection("Recommendations", plan.Recommendations, true)
	printSection("Weather Forecast", plan.WeatherForecast, true)
}

// planEndpoint normalises the base URL and appends the fixed path.
func planEndpoint(base string) string {
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "plan_trip/"
}

func printSection(title, text string, extractTables bool) {
	fmt.Printf("\n== %s ==\n\n%s\n", title, text)
	if !extractTables {
		return
	}
	for _, table := range render.ExtractTables(text) {
		fmt.Printf("\n-- %s --\n", table.Title)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(table.Columns, "\t"))
		for _, row := range table.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		_ = w.Flush()
	}
}
