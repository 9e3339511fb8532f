package layout

import (
	"errors"
	"math"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
)

// ErrEmptyWindow is returned by forceCompleteRow when called with no items.
// The builder never does this while items remain; seeing this error means a
// caller defect, not bad input data.
var ErrEmptyWindow = errors.New("force fill requires a non-empty window")

// forceCompleteRow composes a row when no declared pattern both matched and
// filled it. It always succeeds on a non-empty window.
//
// Phase 1 walks the window in order, accumulating component values: it
// accepts as soon as fill reaches the floor, accepts early when the next
// item would overshoot the ceiling while the floor is already met, and
// accepts everything when the window runs out (the terminal-row case).
// When an addition would overshoot while fill is still under the floor,
// sequential fill has failed and phase 2 runs.
//
// Phase 2 keeps item 0 (preserving at least partial order), then repeatedly
// takes whichever remaining item's value is closest to the gap left in the
// row. This phase may consume items out of original order within the
// window; that is the documented exception to the ordering invariant,
// scoped to the degenerate case where no clean sequential fill exists.
func forceCompleteRow(window []gallery.Item, budget int, pol ratings.Policy) (*Match, error) {
	if len(window) == 0 {
		return nil, ErrEmptyWindow
	}

	if indices, ok := sequentialFill(window, budget, pol); ok {
		return forcedMatch(window, indices), nil
	}
	return forcedMatch(window, bestFitFill(window, budget, pol)), nil
}

// sequentialFill is phase 1. It returns ok=false when the fill overshoots
// the ceiling before reaching the floor.
func sequentialFill(window []gallery.Item, budget int, pol ratings.Policy) ([]int, bool) {
	b := float64(budget)
	fill := 0.0
	taken := 0

	for i, it := range window {
		next := fill + pol.ComponentValue(it, budget)
		if next/b > maxFill {
			if fill/b >= minFill {
				break // accept what's accumulated
			}
			return nil, false
		}
		fill = next
		taken = i + 1
		if fill/b >= minFill {
			break // row is full enough
		}
	}

	indices := make([]int, taken)
	for i := range indices {
		indices[i] = i
	}
	return indices, true
}

// bestFitFill is phase 2. Item 0 is always taken first; afterwards the item
// whose value is numerically closest to the remaining gap wins each round.
// When the best candidate would overshoot the ceiling, the closer of
// stopping-without-it and accepting-it to an exact 100% fill decides.
func bestFitFill(window []gallery.Item, budget int, pol ratings.Policy) []int {
	b := float64(budget)
	used := make([]bool, len(window))
	indices := []int{0}
	used[0] = true
	fill := pol.ComponentValue(window[0], budget)

	for fill/b < minFill {
		gap := b - fill

		best := -1
		bestDiff := math.Inf(1)
		for i, it := range window {
			if used[i] {
				continue
			}
			if diff := math.Abs(pol.ComponentValue(it, budget) - gap); diff < bestDiff {
				best, bestDiff = i, diff
			}
		}
		if best < 0 {
			break // window exhausted
		}

		v := pol.ComponentValue(window[best], budget)
		if (fill+v)/b <= maxFill {
			used[best] = true
			indices = append(indices, best)
			fill += v
			continue
		}

		// Overshoot: take it only if that lands closer to an exact fill.
		if math.Abs(fill+v-b) < math.Abs(fill-b) {
			used[best] = true
			indices = append(indices, best)
		}
		break
	}

	return indices
}

// forcedMatch wraps the selected indices as a force-fill match. The shape is
// a default horizontal chain; the builder may detect a richer arrangement
// among the selected items before tree generation.
func forcedMatch(window []gallery.Item, indices []int) *Match {
	items := make([]gallery.Item, len(indices))
	for i, idx := range indices {
		items[i] = window[idx]
	}
	shape := ShapeChain
	direction := DirectionHorizontal
	if len(indices) == 1 {
		shape = ShapeSingle
		direction = DirectionNone
	} else if len(indices) == 2 {
		shape = ShapePair
	}
	return &Match{
		Pattern:   PatternForceFill,
		Indices:   indices,
		Items:     items,
		Direction: direction,
		Shape:     shape,
	}
}
