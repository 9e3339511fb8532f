// Package ratings maps editorial ratings to row occupancy values.
//
// The layout engine treats the mapping from a raw 0-5 rating to a component
// value as an injected policy: the engine only relies on the contract that
// ComponentValue is the fraction of the row-width budget an item is intended
// to occupy, non-negative and typically in (0, budget]. Keeping the policy
// behind an interface lets galleries tune how aggressively high-rated items
// claim space without touching the packing algorithm.
package ratings

import "github.com/themancalledzac/photogrid/pkg/gallery"

// Policy supplies the effective rating and component value for an item at a
// given row-width budget. Implementations must be pure functions.
type Policy interface {
	// Rating returns the effective rating used for pattern slot bounds.
	Rating(item gallery.Item, budget int) float64

	// ComponentValue returns the share of the row-width budget the item is
	// intended to occupy. Must be non-negative.
	ComponentValue(item gallery.Item, budget int) float64
}

// componentValues maps a raw rating to the occupancy value at the reference
// budget of 5. Rating 5 claims the whole row; everything below shares.
var componentValues = [6]float64{1.0, 1.25, 1.5, 2.0, 2.5, 5.0}

// referenceBudget is the row-width budget the value table is calibrated for.
const referenceBudget = 5.0

// Default is the policy used when callers don't supply one.
type Default struct{}

// Rating returns the raw rating clamped to the budget, so that narrow
// breakpoints never see a rating larger than the row can express.
func (Default) Rating(item gallery.Item, budget int) float64 {
	r := float64(item.Rating)
	if b := float64(budget); r > b {
		return b
	}
	return r
}

// ComponentValue looks up the calibrated occupancy for the item's rating and
// scales it linearly to the requested budget.
func (Default) ComponentValue(item gallery.Item, budget int) float64 {
	r := item.Rating
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return componentValues[r] * float64(budget) / referenceBudget
}

// Ensure Default implements Policy.
var _ Policy = Default{}
