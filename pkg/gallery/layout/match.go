package layout

import (
	"slices"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
)

// Match is an accepted assignment of window items to one pattern.
type Match struct {
	// Pattern is the name of the pattern that produced the match
	// (or PatternForceFill for fallback rows).
	Pattern string
	// Indices are the window positions consumed, in slot order.
	Indices []int
	// Items are the matched items, parallel to Indices.
	Items []gallery.Item
	// Direction is the pattern's combination direction.
	Direction Direction
	// Shape is the layout shape, including any positional override
	// (hero-at-top vs hero-at-bottom).
	Shape Shape
}

// matchPattern attempts to satisfy one pattern against the lookahead window.
// It returns nil when the pattern doesn't apply; a nil result is expected,
// frequent control flow, never an error.
//
// A match must consume window position 0 so the builder processes items in
// original order. The one exception: a standalone single-item pattern may
// search a few positions ahead when item 0 is low-rated, to avoid wasting a
// showpiece row on filler.
func matchPattern(p Pattern, window []gallery.Item, budget int, pol ratings.Policy) *Match {
	if len(window) < len(p.Slots) || budget < p.MinRowWidth {
		return nil
	}

	starts := []int{0}
	if len(p.Slots) == 1 && p.Shape == ShapeSingle &&
		pol.Rating(window[0], budget) <= standaloneSkipThreshold {
		starts = starts[:0]
		for i := 0; i <= standaloneSkipReach && i < len(window); i++ {
			starts = append(starts, i)
		}
	}

	for _, start := range starts {
		if m := matchAt(p, window, start, budget, pol); m != nil {
			return m
		}
	}
	return nil
}

// matchAt runs one greedy slot assignment anchored at the given start
// position.
func matchAt(p Pattern, window []gallery.Item, start int, budget int, pol ratings.Policy) *Match {
	used := make([]bool, len(window))
	indices := make([]int, 0, len(p.Slots))

	for _, req := range p.Slots {
		found := -1
		for pos := start; pos < len(window); pos++ {
			if used[pos] {
				continue
			}
			if req.satisfies(window[pos], pol.Rating(window[pos], budget)) {
				found = pos
				break
			}
		}
		if found < 0 {
			return nil
		}
		used[found] = true
		indices = append(indices, found)
	}

	// The anchor position must be consumed, by any slot.
	if !used[start] {
		return nil
	}

	// The consumed positions must form a contiguous run. A pattern that
	// reaches past unused items would strand them for later rows and break
	// the ordering guarantee.
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return nil
		}
	}

	if !withinProximity(p, window, indices, budget, pol) {
		return nil
	}

	items := make([]gallery.Item, len(indices))
	for i, idx := range indices {
		items[i] = window[idx]
	}

	m := &Match{
		Pattern:   p.Name,
		Indices:   indices,
		Items:     items,
		Direction: p.Direction,
		Shape:     p.Shape,
	}

	// Hero patterns stack the hero above or below its supporting chain
	// depending on where the hero fell in the consumed range.
	if p.HeroFill && len(indices) > 1 {
		if indices[0] == sorted[len(sorted)-1] {
			m.Shape = ShapeHeroBottom
		} else {
			m.Shape = ShapeHeroTop
		}
	}

	return m
}

// withinProximity enforces the pattern's rating-proximity bound, falling
// back to the looser MaxProximity bound for flexible patterns.
func withinProximity(p Pattern, window []gallery.Item, indices []int, budget int, pol ratings.Policy) bool {
	if p.Proximity < 0 {
		return true
	}

	lo, hi := 0.0, 0.0
	for i, idx := range indices {
		r := pol.Rating(window[idx], budget)
		if i == 0 || r < lo {
			lo = r
		}
		if i == 0 || r > hi {
			hi = r
		}
	}
	spread := hi - lo

	if spread <= p.Proximity {
		return true
	}
	return p.Flexible && p.MaxProximity >= 0 && spread <= p.MaxProximity
}
