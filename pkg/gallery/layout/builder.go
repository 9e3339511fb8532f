package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
)

// Lookahead caps how many not-yet-placed items any pattern may consider for
// the next row. It bounds matcher cost and how far ahead a pattern can reach.
const Lookahead = 5

// ErrInvalidBudget is returned by BuildRows for non-positive budgets.
var ErrInvalidBudget = errors.New("row-width budget must be positive")

// Row is one assembled display row, the engine's public output unit.
type Row struct {
	// Components are the row's items in the order they were placed.
	Components []gallery.Item
	// Direction is the row's combination direction.
	Direction Direction
	// Pattern names the pattern that produced the row, including the
	// synthetic PatternForceFill.
	Pattern string
	// Tree is the recursive arrangement handed to sizing and rendering.
	Tree *Node
}

// Builder assembles items into rows using an injected ratings policy.
// The zero configuration uses [ratings.Default]. A Builder holds no state
// across calls and is safe for concurrent use.
type Builder struct {
	policy ratings.Policy
}

// Option configures a Builder.
type Option func(*Builder)

// WithPolicy substitutes the ratings policy used for effective ratings and
// component values.
func WithPolicy(p ratings.Policy) Option {
	return func(b *Builder) { b.policy = p }
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{policy: ratings.Default{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildRows assembles items into rows with the default ratings policy.
func BuildRows(items []gallery.Item, budget int) ([]Row, error) {
	return NewBuilder().BuildRows(items, budget)
}

// BuildRows repeatedly takes a lookahead window from the remaining items,
// tries every pattern in priority order, accepts the first complete match,
// and otherwise force-fills. Consumed items are removed and the loop runs
// until nothing remains.
//
// Every input item ends up in exactly one output row exactly once. Rows
// come out in input order; within the final window the force-fill best-fit
// phase may reorder (the documented exception). The final row is allowed to
// come in under the completeness floor when the input runs out.
func (b *Builder) BuildRows(items []gallery.Item, budget int) ([]Row, error) {
	if budget <= 0 {
		return nil, ErrInvalidBudget
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}
	}

	remaining := slices.Clone(items)
	rows := make([]Row, 0, (len(items)+1)/2)

	for len(remaining) > 0 {
		window := remaining[:min(Lookahead, len(remaining))]

		m := b.matchWindow(window, budget)
		if m == nil {
			var err error
			m, err = forceCompleteRow(window, budget, b.policy)
			if err != nil {
				return nil, err
			}
			m.Shape = b.detectShape(m, budget)
			if m.Shape == ShapeHeroTop || m.Shape == ShapeHeroBottom {
				m.Direction = DirectionVertical
			}
		}

		arranged := b.arrange(m, budget)
		rows = append(rows, Row{
			Components: m.Items,
			Direction:  m.Direction,
			Pattern:    m.Pattern,
			Tree:       buildTree(m.Shape, m.Direction, arranged),
		})

		remaining = removeIndices(remaining, m.Indices)
	}

	return rows, nil
}

// matchWindow tries every pattern in priority order and returns the first
// match whose components also pass the completeness check. Hero patterns
// validate their supporting items only.
func (b *Builder) matchWindow(window []gallery.Item, budget int) *Match {
	for _, p := range Table {
		m := matchPattern(p, window, budget, b.policy)
		if m == nil {
			continue
		}
		components := m.Items
		if p.HeroFill {
			components = m.Items[1:]
		}
		if !isRowComplete(components, budget, b.policy) {
			continue
		}
		return m
	}
	return nil
}

// detectShape inspects a force-fill selection for a higher-order
// arrangement. The fallback only decides which items share the row; the
// builder decides how they look.
func (b *Builder) detectShape(m *Match, budget int) Shape {
	if main := b.nestedQuadMain(m.Items, budget); main >= 0 {
		return ShapeNestedQuad
	}
	if hero, shape := b.heroPosition(m.Items, budget); hero >= 0 {
		return shape
	}
	return m.Shape
}

// arrange returns the items in slot order for tree generation: main or hero
// first, supporting items after in placement order. For declared patterns
// the match is already in slot order.
func (b *Builder) arrange(m *Match, budget int) []gallery.Item {
	if m.Pattern != PatternForceFill {
		return m.Items
	}

	switch m.Shape {
	case ShapeNestedQuad:
		return promote(m.Items, b.nestedQuadMain(m.Items, budget))
	case ShapeHeroTop, ShapeHeroBottom:
		hero, _ := b.heroPosition(m.Items, budget)
		return promote(m.Items, hero)
	default:
		return m.Items
	}
}

// nestedQuadMain returns the index of the dominant item when the selection
// is three verticals around a single horizontal whose rating matches or
// beats them all, and -1 otherwise. Rating ties go to the horizontal: on a
// tie the vertical is preferred as a supporting item, which is what keeps
// the nested stack visually balanced.
func (b *Builder) nestedQuadMain(items []gallery.Item, budget int) int {
	if len(items) != 4 {
		return -1
	}
	main := -1
	for i, it := range items {
		if it.Orientation() != gallery.Horizontal {
			continue
		}
		if main >= 0 {
			return -1 // more than one horizontal
		}
		main = i
	}
	if main < 0 {
		return -1
	}
	dominant := b.policy.Rating(items[main], budget)
	for i, it := range items {
		if i != main && b.policy.Rating(it, budget) > dominant {
			return -1
		}
	}
	return main
}

// heroPosition looks for a single full-rated item at the first or last
// consumed position among three or more items. It returns the hero's index
// and the top/bottom shape, or (-1, ShapeChain).
func (b *Builder) heroPosition(items []gallery.Item, budget int) (int, Shape) {
	if len(items) < 3 {
		return -1, ShapeChain
	}
	hero := -1
	for i, it := range items {
		if b.policy.Rating(it, budget) >= 5 {
			if hero >= 0 {
				return -1, ShapeChain // more than one full-rated item
			}
			hero = i
		}
	}
	switch hero {
	case 0:
		return hero, ShapeHeroTop
	case len(items) - 1:
		return hero, ShapeHeroBottom
	default:
		return -1, ShapeChain
	}
}

// promote moves the item at idx to the front, keeping the rest in order.
func promote(items []gallery.Item, idx int) []gallery.Item {
	out := make([]gallery.Item, 0, len(items))
	out = append(out, items[idx])
	for i, it := range items {
		if i != idx {
			out = append(out, it)
		}
	}
	return out
}

// removeIndices deletes the consumed positions from the working list,
// highest first so earlier removals don't shift later ones.
func removeIndices(remaining []gallery.Item, indices []int) []gallery.Item {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		idx := sorted[i]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return remaining
}
