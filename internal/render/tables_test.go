package render

import (
	"testing"
)

const recommendationsSample = "Here are my picks for Paris.\n\n" +
	"```json\n" +
	"{\n" +
	"  \"restaurants\": [\n" +
	"    {\"name\": \"Le Comptoir\", \"address\": \"9 Carrefour de l'Odeon\", \"rating\": 4.5},\n" +
	"    {\"name\": \"Chez Janou\", \"address\": \"2 Rue Roger Verlomme\", \"rating\": 4.3}\n" +
	"  ],\n" +
	"  \"hotels\": [\n" +
	"    {\"name\": \"Hotel des Arts\", \"address\": \"5 Rue Tholoze\", \"rating\": 4.2}\n" +
	"  ]\n" +
	"}\n" +
	"```\n\nEnjoy your trip!\n"

func TestExtractTables_RestaurantsAndHotels(t *testing.T) {
	tables := ExtractTables(recommendationsSample)
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	restaurants := tables[0]
	if restaurants.Title != "Top Restaurants" {
		t.Errorf("first table title = %q, want Top Restaurants", restaurants.Title)
	}
	if len(restaurants.Rows) != 2 {
		t.Fatalf("expected 2 restaurant rows, got %d", len(restaurants.Rows))
	}
	if restaurants.Columns[0] != "name" {
		t.Errorf("name should lead the columns, got %v", restaurants.Columns)
	}
	if restaurants.Rows[0][0] != "Le Comptoir" {
		t.Errorf("unexpected first row: %v", restaurants.Rows[0])
	}

	hotels := tables[1]
	if hotels.Title != "Top Hotels" {
		t.Errorf("second table title = %q, want Top Hotels", hotels.Title)
	}
	if len(hotels.Rows) != 1 {
		t.Errorf("expected 1 hotel row, got %d", len(hotels.Rows))
	}
}

func TestExtractTables_Forecast(t *testing.T) {
	md := "Forecast below.\n\n```json\n" +
		`{"forecast": [{"day": "Monday", "high": 24, "low": 15, "rain": "20%"}]}` +
		"\n```\n"
	tables := ExtractTables(md)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if tables[0].Title != "7-Day Forecast" {
		t.Errorf("title = %q", tables[0].Title)
	}
	wantCols := []string{"day", "high", "low", "rain"}
	if len(tables[0].Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", tables[0].Columns, wantCols)
	}
	for i, c := range wantCols {
		if tables[0].Columns[i] != c {
			t.Errorf("columns = %v, want %v", tables[0].Columns, wantCols)
			break
		}
	}
	if tables[0].Rows[0][1] != "24" {
		t.Errorf("numeric cell should render without decoration, got %q", tables[0].Rows[0][1])
	}
}

func TestExtractTables_MalformedJSONIgnored(t *testing.T) {
	md := "```json\n{\"restaurants\": [broken\n```\n"
	if tables := ExtractTables(md); len(tables) != 0 {
		t.Errorf("malformed block should be skipped, got %d tables", len(tables))
	}
}

func TestExtractTables_UntaggedFenceIgnored(t *testing.T) {
	md := "```\n{\"restaurants\": [{\"name\": \"A\"}]}\n```\n"
	if tables := ExtractTables(md); len(tables) != 0 {
		t.Errorf("untagged fence should be skipped, got %d tables", len(tables))
	}
}

func TestExtractTables_UnrecognisedKeysIgnored(t *testing.T) {
	md := "```json\n{\"museums\": [{\"name\": \"Louvre\"}]}\n```\n"
	if tables := ExtractTables(md); len(tables) != 0 {
		t.Errorf("unrecognised keys should be skipped, got %d tables", len(tables))
	}
}

func TestExtractTables_PlainMarkdown(t *testing.T) {
	if tables := ExtractTables("# Itinerary\n\nDay 1: walk around.\n"); len(tables) != 0 {
		t.Errorf("plain markdown should yield no tables, got %d", len(tables))
	}
}
