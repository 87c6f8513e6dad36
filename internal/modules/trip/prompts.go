// README: Prompt builders for the four generation tasks.
package trip

import (
	"fmt"
	"strings"
)

const dateLayout = "2006-01-02"

// FlightPrompt asks for flight options matching the route, dates, and budget.
// It carries the accuracy disclaimer: the model suggests from general
// knowledge, it does not search live fares.
func FlightPrompt(req Request, budget string) string {
	var sb strings.Builder
	sb.WriteString("As a travel planning AI, suggest potential flight options for a trip from ")
	sb.WriteString(req.Source)
	sb.WriteString(" to ")
	sb.WriteString(req.Destination)
	sb.WriteString(".\n")
	fmt.Fprintf(&sb, "The desired departure date is %s and the return date is %s.\n",
		req.StartDate.Format(dateLayout), req.EndDate.Format(dateLayout))
	fmt.Fprintf(&sb, "Please provide suggestions that align with a **%s budget**.\n\n", budget)
	sb.WriteString("Suggest a few possible airlines, potential layover cities (if applicable), ")
	sb.WriteString("and a general idea of what one might expect regarding flight duration or typical costs for this route and budget.\n")
	sb.WriteString("Emphasize that these are *suggestions based on general knowledge* and that users should perform a real-time flight search for accurate prices and availability.\n\n")
	sb.WriteString("Present the response clearly using Markdown.\n")
	return sb.String()
}

// ItineraryPrompt asks for a day-by-day plan covering the whole stay.
func ItineraryPrompt(req Request, budget string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a detailed travel itinerary for a trip to %s.\n", req.Destination)
	fmt.Fprintf(&sb, "The trip starts on %s and ends on %s, lasting for %d days.\n",
		req.StartDate.Format(dateLayout), req.EndDate.Format(dateLayout), req.DurationDays())
	fmt.Fprintf(&sb, "Please plan the trip with a **%s budget** in mind.\n\n", budget)
	sb.WriteString("Provide a day-by-day plan including:\n")
	fmt.Fprintf(&sb, "- Suggested activities for morning, afternoon, and evening (suitable for a %s budget).\n", budget)
	sb.WriteString("- Recommendations for places to visit (landmarks, museums, parks, etc.) - mention cost implications if relevant to the budget.\n")
	fmt.Fprintf(&sb, "- Optional: Suggestions for local food or restaurants to try that fit a %s budget.\n", budget)
	sb.WriteString("- Optional: Basic tips for getting around (e.g., public transport, walking) that are budget-conscious.\n\n")
	sb.WriteString("Format the output clearly, perhaps using Markdown with headings for each day.\n")
	sb.WriteString("Be creative and provide practical suggestions for a memorable trip.\n")
	return sb.String()
}

// RecommendationsPrompt asks for top-5 restaurant and hotel lists. The fenced
// JSON block is an invitation for the renderer's table extraction, not a
// guarantee the model will honour it.
func RecommendationsPrompt(destination, budget string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert Restaurant & Hotel Planner.\n")
	fmt.Fprintf(&sb, "Your job is to provide Restaurant & Hotel recommendations for %s.\n", destination)
	fmt.Fprintf(&sb, "Please provide recommendations specifically for a **%s budget**.\n\n", budget)
	fmt.Fprintf(&sb, "- For Restaurants: Provide Top 5 restaurants that fit a %s budget, with address and a general idea of average cost or cuisine type. Include a rating if available or inferable.\n", budget)
	fmt.Fprintf(&sb, "- For Hotels: Provide Top 5 hotels that fit a %s budget, with address and a general idea of average cost per night or star rating. Include a rating if available or inferable.\n\n", budget)
	sb.WriteString("Return the response using Markdown for clear formatting.\n")
	sb.WriteString("If possible, additionally include one fenced ```json code block containing an object with \"restaurants\" and \"hotels\" arrays mirroring the lists above.\n")
	return sb.String()
}

// WeatherPrompt asks for a 7-day forecast plus packing suggestions.
func WeatherPrompt(destination string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert weather forecaster and travel advisor. ")
	fmt.Fprintf(&sb, "Your job is to provide a detailed weather forecast and suggest appropriate clothing to pack for a trip to %s.\n", destination)
	sb.WriteString("Provide the forecast for the next 7 days, starting from today's date.\n")
	sb.WriteString("Include details such as:\n")
	sb.WriteString("- Daily temperature range (High/Low)\n")
	sb.WriteString("- Precipitation (chance of rain/snow)\n")
	sb.WriteString("- Humidity\n")
	sb.WriteString("- Wind conditions\n")
	sb.WriteString("- Air Quality (if available or inferable)\n")
	sb.WriteString("- Cloud Cover\n\n")
	fmt.Fprintf(&sb, "Based on this 7-day forecast, provide a clear and concise suggestion for the type of clothing and gear someone should pack for their trip to %s during this period. Consider layering if temperatures vary.\n\n", destination)
	sb.WriteString("Present the response clearly using Markdown, with a section for the daily forecast and a separate section for clothing suggestions.\n")
	sb.WriteString("If possible, additionally include one fenced ```json code block containing an object with a \"forecast\" array of the daily entries.\n")
	return sb.String()
}
