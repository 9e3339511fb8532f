package layout

import (
	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
)

// Fill bounds for an acceptable row, as fractions of the row-width budget.
// The floor tolerates small intentional gaps instead of forcing exact fits;
// the ceiling rejects rows that would shrink every item well below its
// intended proportion. Both bounds are inclusive.
const (
	minFill = 0.9
	maxFill = 1.15
)

// fillRatio sums the components' values and divides by the budget.
func fillRatio(components []gallery.Item, budget int, pol ratings.Policy) float64 {
	sum := 0.0
	for _, it := range components {
		sum += pol.ComponentValue(it, budget)
	}
	return sum / float64(budget)
}

// isRowComplete reports whether the components sufficiently fill the row.
// Hero patterns pass only their supporting items here; the hero itself is
// definitionally full-value and exempt from the ratio check.
func isRowComplete(components []gallery.Item, budget int, pol ratings.Policy) bool {
	ratio := fillRatio(components, budget, pol)
	return ratio >= minFill && ratio <= maxFill
}
