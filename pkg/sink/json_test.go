package sink

import (
	"strings"
	"testing"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
)

func buildTestRows(t *testing.T) []layout.Row {
	t.Helper()
	items := []gallery.Item{
		{ID: "sunset", File: "sunset.jpg", Width: 1600, Height: 900, Rating: 5},
		{ID: "pier", Width: 1400, Height: 900, Rating: 4},
		{ID: "gulls", Width: 1400, Height: 900, Rating: 4},
		{ID: "shell-1", Width: 800, Height: 1200, Rating: 2},
		{ID: "shell-2", Width: 800, Height: 1200, Rating: 2},
		{ID: "shell-3", Width: 800, Height: 1200, Rating: 2},
	}
	rows, err := layout.BuildRows(items, 5)
	if err != nil {
		t.Fatalf("BuildRows() error = %v", err)
	}
	return rows
}

func TestRenderJSONIncludesMetadata(t *testing.T) {
	rows := buildTestRows(t)

	data, err := RenderJSON(rows, WithJSONTitle("beach day"), WithJSONRowWidth(5))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{`"title": "beach day"`, `"row_width": 5`, `"pattern": "STANDALONE"`, `"sunset.jpg"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rows := buildTestRows(t)

	data, err := RenderJSON(rows, WithJSONRowWidth(5))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	parsed, budget, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if budget != 5 {
		t.Errorf("budget = %d, want 5", budget)
	}
	if len(parsed) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(parsed), len(rows))
	}
	for i := range rows {
		if parsed[i].Pattern != rows[i].Pattern {
			t.Errorf("row %d pattern = %q, want %q", i, parsed[i].Pattern, rows[i].Pattern)
		}
		if parsed[i].Direction != rows[i].Direction {
			t.Errorf("row %d direction = %v, want %v", i, parsed[i].Direction, rows[i].Direction)
		}
		got := parsed[i].Tree.Leaves()
		want := rows[i].Tree.Leaves()
		if len(got) != len(want) {
			t.Fatalf("row %d: got %d leaves, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j].ID != want[j].ID {
				t.Errorf("row %d leaf %d = %q, want %q", i, j, got[j].ID, want[j].ID)
			}
		}
	}
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	if _, _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
	// A row without a tree cannot be re-rendered.
	if _, _, err := ParseJSON([]byte(`{"rows": [{"pattern": "STANDALONE"}]}`)); err == nil {
		t.Error("expected error for missing tree")
	}
}
