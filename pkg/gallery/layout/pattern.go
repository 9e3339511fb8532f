package layout

import "github.com/themancalledzac/photogrid/pkg/gallery"

// Direction is how two components combine visually.
type Direction int

const (
	// DirectionNone marks single-item rows that combine with nothing.
	DirectionNone Direction = iota
	// DirectionHorizontal places components side by side.
	DirectionHorizontal
	// DirectionVertical stacks components.
	DirectionVertical
)

// String returns "none", "horizontal" or "vertical".
func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Shape describes how a pattern's matched slots map onto a render tree.
type Shape int

const (
	// ShapeSingle is one leaf.
	ShapeSingle Shape = iota
	// ShapePair is one combined node with two leaves.
	ShapePair
	// ShapeChain folds components left-to-right into a left-heavy
	// horizontal chain.
	ShapeChain
	// ShapeMainStacked is a main item beside two stacked smaller items.
	ShapeMainStacked
	// ShapeNestedQuad is a main item beside a stacked pair-over-single.
	ShapeNestedQuad
	// ShapeHeroTop is a hero leaf above a supporting chain.
	ShapeHeroTop
	// ShapeHeroBottom is a supporting chain above a hero leaf.
	ShapeHeroBottom
)

// String returns the shape name used in serialized output.
func (s Shape) String() string {
	switch s {
	case ShapePair:
		return "pair"
	case ShapeChain:
		return "chain"
	case ShapeMainStacked:
		return "main-stacked"
	case ShapeNestedQuad:
		return "nested-quad"
	case ShapeHeroTop:
		return "hero-top"
	case ShapeHeroBottom:
		return "hero-bottom"
	default:
		return "single"
	}
}

// Requirement constrains a single pattern slot. A slot with AnyOrientation
// set matches either orientation. Rating bounds are inclusive and compared
// against the policy's effective rating.
type Requirement struct {
	Orientation    gallery.Orientation
	AnyOrientation bool
	MinRating      float64
	MaxRating      float64
}

// Pattern is one named combination rule in the registry.
//
// Patterns are pure data: the matcher interprets Slots in order, so adding
// a pattern never requires touching the matching code.
type Pattern struct {
	Name      string
	Slots     []Requirement
	Direction Direction
	Shape     Shape

	// Proximity is the ideal bound on max(ratings)-min(ratings) across the
	// matched items. Negative means unconstrained.
	Proximity float64
	// MaxProximity is the looser bound used when the pattern is Flexible
	// and the ideal bound fails. Negative means no fallback bound.
	MaxProximity float64
	// Flexible allows the pattern to fall back to MaxProximity.
	Flexible bool

	// MinRowWidth is the smallest row-width budget the pattern applies to.
	MinRowWidth int

	// HeroFill excludes slot 0 from the completeness check: the hero is
	// definitionally full-value and only its supporting items are
	// validated against the fill bounds.
	HeroFill bool
}

// Pattern names, in priority order. ForceFill is synthetic: it names rows
// composed by the fallback, not an entry in the table.
const (
	PatternStandalone        = "STANDALONE"
	PatternCompoundHero      = "COMPOUND_HERO"
	PatternHorizontalPair    = "HORIZONTAL_PAIR"
	PatternMainStacked       = "MAIN_STACKED"
	PatternDominantSecondary = "DOMINANT_SECONDARY"
	PatternVerticalPair      = "VERTICAL_PAIR"
	PatternTriple            = "TRIPLE"
	PatternMultiSmall        = "MULTI_SMALL"
	PatternForceFill         = "FORCE_FILL"
)

// standaloneSkipThreshold: a standalone match may skip window position 0
// when that item's effective rating is at or below this value.
const standaloneSkipThreshold = 2

// standaloneSkipReach is how many positions ahead a standalone match may
// search when skipping a low-value leading item.
const standaloneSkipReach = 3

// noProximity disables a proximity bound.
const noProximity = -1

// Table is the fixed pattern registry, most specific and valuable first.
//
// Priority order is itself a design decision: distinctive patterns must be
// attempted before generic fillers, or the filler greedily consumes items a
// better pattern would have used.
var Table = []Pattern{
	{
		Name:        PatternStandalone,
		Slots:       []Requirement{{Orientation: gallery.Horizontal, MinRating: 5, MaxRating: 5}},
		Direction:   DirectionNone,
		Shape:       ShapeSingle,
		Proximity:   noProximity,
		MinRowWidth: 3,
	},
	{
		Name: PatternCompoundHero,
		Slots: []Requirement{
			{AnyOrientation: true, MinRating: 5, MaxRating: 5},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
		},
		Direction:   DirectionVertical,
		Shape:       ShapeHeroTop,
		Proximity:   noProximity,
		MinRowWidth: 4,
		HeroFill:    true,
	},
	{
		Name: PatternHorizontalPair,
		Slots: []Requirement{
			{Orientation: gallery.Horizontal, MinRating: 3, MaxRating: 5},
			{Orientation: gallery.Horizontal, MinRating: 3, MaxRating: 5},
		},
		Direction:    DirectionHorizontal,
		Shape:        ShapePair,
		Proximity:    1,
		MaxProximity: 2,
		Flexible:     true,
		MinRowWidth:  3,
	},
	{
		Name: PatternMainStacked,
		Slots: []Requirement{
			{AnyOrientation: true, MinRating: 4, MaxRating: 5},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
		},
		Direction:   DirectionHorizontal,
		Shape:       ShapeMainStacked,
		Proximity:   noProximity,
		MinRowWidth: 4,
	},
	{
		Name: PatternDominantSecondary,
		Slots: []Requirement{
			{AnyOrientation: true, MinRating: 4, MaxRating: 5},
			{AnyOrientation: true, MinRating: 0, MaxRating: 3},
		},
		Direction:   DirectionHorizontal,
		Shape:       ShapePair,
		Proximity:   noProximity,
		MinRowWidth: 3,
	},
	{
		Name: PatternVerticalPair,
		Slots: []Requirement{
			{Orientation: gallery.Vertical, MinRating: 2, MaxRating: 5},
			{Orientation: gallery.Vertical, MinRating: 2, MaxRating: 5},
		},
		Direction:    DirectionHorizontal,
		Shape:        ShapePair,
		Proximity:    1,
		MaxProximity: 2,
		MinRowWidth:  2,
	},
	{
		Name: PatternTriple,
		Slots: []Requirement{
			{AnyOrientation: true, MinRating: 3, MaxRating: 5},
			{AnyOrientation: true, MinRating: 3, MaxRating: 5},
			{AnyOrientation: true, MinRating: 3, MaxRating: 5},
		},
		Direction:    DirectionHorizontal,
		Shape:        ShapeChain,
		Proximity:    1,
		MaxProximity: 2,
		Flexible:     true,
		MinRowWidth:  4,
	},
	{
		Name: PatternMultiSmall,
		Slots: []Requirement{
			{AnyOrientation: true, MinRating: 0, MaxRating: 2},
			{AnyOrientation: true, MinRating: 0, MaxRating: 2},
			{AnyOrientation: true, MinRating: 0, MaxRating: 2},
		},
		Direction:   DirectionHorizontal,
		Shape:       ShapeChain,
		Proximity:   noProximity,
		MinRowWidth: 3,
	},
}

// ByName returns the table entry with the given name.
func ByName(name string) (Pattern, bool) {
	for _, p := range Table {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// satisfies reports whether the item meets the slot requirement at the
// given effective rating.
func (r Requirement) satisfies(item gallery.Item, rating float64) bool {
	if !r.AnyOrientation && item.Orientation() != r.Orientation {
		return false
	}
	return rating >= r.MinRating && rating <= r.MaxRating
}
