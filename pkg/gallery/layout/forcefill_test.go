package layout

import (
	"errors"
	"testing"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
)

func TestForceCompleteRowEmptyWindow(t *testing.T) {
	_, err := forceCompleteRow(nil, 5, ratings.Default{})
	if !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("forceCompleteRow(empty) = %v, want ErrEmptyWindow", err)
	}
}

func TestForceCompleteRowSequentialStopsAtFloor(t *testing.T) {
	// Values 2 + 1.5 + 1.5 = 5.0 reach the floor at the third item; the
	// fourth must stay unconsumed.
	window := []gallery.Item{horiz("a", 3), vert("b", 2), vert("c", 2), vert("d", 2)}

	m, err := forceCompleteRow(window, 5, ratings.Default{})
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"a", "b", "c"}) {
		t.Errorf("Items = %v, want [a b c]", ids(m.Items))
	}
	if m.Pattern != PatternForceFill {
		t.Errorf("Pattern = %q, want %q", m.Pattern, PatternForceFill)
	}
}

func TestForceCompleteRowAcceptsBeforeOvershoot(t *testing.T) {
	// 2.5 + 2.5 = 5.0 is already past the floor; the next 2.5 would push
	// fill to 1.5 and must be left for the next row.
	window := []gallery.Item{horiz("a", 4), horiz("b", 4), horiz("c", 4)}

	m, err := forceCompleteRow(window, 5, ratings.Default{})
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"a", "b"}) {
		t.Errorf("Items = %v, want [a b]", ids(m.Items))
	}
}

func TestForceCompleteRowExhaustsShortWindow(t *testing.T) {
	// The terminal-row case: everything is consumed even though the fill
	// never reaches the floor.
	window := []gallery.Item{vert("only", 1)}

	m, err := forceCompleteRow(window, 5, ratings.Default{})
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"only"}) {
		t.Errorf("Items = %v, want [only]", ids(m.Items))
	}
	if m.Shape != ShapeSingle || m.Direction != DirectionNone {
		t.Errorf("single-item fallback got shape %v direction %v", m.Shape, m.Direction)
	}
}

func TestForceCompleteRowBestFitFallback(t *testing.T) {
	// Sequential fill fails: 2.5 + 5.0 = 7.5 overshoots while fill is
	// still under the floor. Best-fit keeps item 0, then picks the item
	// whose value is closest to the remaining 2.5 gap - the rating-4 at
	// position 2, skipping the showpiece.
	window := []gallery.Item{horiz("a", 4), horiz("big", 5), horiz("c", 4)}

	m, err := forceCompleteRow(window, 5, ratings.Default{})
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"a", "c"}) {
		t.Errorf("Items = %v, want out-of-order best fit [a c]", ids(m.Items))
	}
	if len(m.Indices) != 2 || m.Indices[0] != 0 || m.Indices[1] != 2 {
		t.Errorf("Indices = %v, want [0 2]", m.Indices)
	}
}

func TestForceCompleteRowBestFitOvershootDecision(t *testing.T) {
	// Only oversized items remain after item 0. Accepting one lands at
	// fill 6/5 = 1.2, distance 1.0 from a perfect fill; stopping leaves
	// distance 4.0. Accepting is closer, so it is taken despite the
	// ceiling, and the walk stops there.
	window := []gallery.Item{vert("a", 0), horiz("big", 5), horiz("bigger", 5)}
	pol := stubPolicy{values: map[string]float64{"a": 1.0, "big": 5.0, "bigger": 5.0}}

	m, err := forceCompleteRow(window, 5, pol)
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"a", "big"}) {
		t.Errorf("Items = %v, want [a big]", ids(m.Items))
	}
}

func TestForceCompleteRowBestFitStopsWhenOvershootIsWorse(t *testing.T) {
	// Fill after best-fit picks sits at 4.0 (distance 1.0). The only
	// remaining item is worth 3.0: accepting would land at 7.0 (distance
	// 2.0), so the walk stops without it.
	window := []gallery.Item{vert("a", 0), vert("b", 0), vert("c", 0)}
	pol := stubPolicy{values: map[string]float64{"a": 1.0, "b": 3.0, "c": 3.0}}

	m, err := forceCompleteRow(window, 5, pol)
	if err != nil {
		t.Fatalf("forceCompleteRow() error = %v", err)
	}
	if !equalStrings(ids(m.Items), []string{"a", "b"}) {
		t.Errorf("Items = %v, want [a b]", ids(m.Items))
	}
}
