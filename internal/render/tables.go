// README: Best-effort extraction of fenced JSON blocks from generated markdown.
package render

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Recognised top-level keys and their display titles, in render order.
var recognisedKeys = []struct {
	key   string
	title string
}{
	{"restaurants", "Top Restaurants"},
	{"hotels", "Top Hotels"},
	{"forecast", "7-Day Forecast"},
}

// Columns that lead the table when present.
var leadingColumns = []string{"name", "day", "date"}

// Table is a structured fragment extracted from free-text model output.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// ExtractTables scans markdown for fenced code blocks tagged json, parses each
// as an object, and turns recognised array values into tables. This is
// opportunistic enrichment: the generation side never guarantees the blocks
// exist, so malformed JSON and unrecognised shapes are skipped silently.
func ExtractTables(markdown string) []Table {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var tables []Table
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, isFence := n.(*ast.FencedCodeBlock)
		if !isFence {
			return ast.WalkContinue, nil
		}
		if !strings.EqualFold(string(block.Language(source)), "json") {
			return ast.WalkContinue, nil
		}
		tables = append(tables, parseBlock(fenceContent(block, source))...)
		return ast.WalkContinue, nil
	})
	return tables
}

func fenceContent(block *ast.FencedCodeBlock, source []byte) []byte {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

func parseBlock(raw []byte) []Table {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil
	}

	var tables []Table
	for _, rk := range recognisedKeys {
		items, isList := obj[rk.key].([]any)
		if !isList || len(items) == 0 {
			continue
		}
		if tbl, okTable := buildTable(rk.title, items); okTable {
			tables = append(tables, tbl)
		}
	}
	return tables
}

func buildTable(title string, items []any) (Table, bool) {
	records := make([]map[string]any, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		rec, isObject := item.(map[string]any)
		if !isObject {
			return Table{}, false
		}
		records = append(records, rec)
		for k := range rec {
			seen[k] = true
		}
	}
	if len(records) == 0 || len(seen) == 0 {
		return Table{}, false
	}

	columns := orderColumns(seen)
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = formatCell(rec[col])
		}
		rows = append(rows, row)
	}
	return Table{Title: title, Columns: columns, Rows: rows}, true
}

// orderColumns puts name-like keys first, then the rest alphabetically.
func orderColumns(seen map[string]bool) []string {
	var columns []string
	for _, lead := range leadingColumns {
		if seen[lead] {
			columns = append(columns, lead)
			delete(seen, lead)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
