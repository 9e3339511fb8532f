package layout

import "github.com/themancalledzac/photogrid/pkg/gallery"

// Node is one render-tree node: either a leaf wrapping a single item, or a
// combination of exactly two child trees in a direction. Every item placed
// into a row appears in exactly one leaf of that row's tree.
//
// Each node exclusively owns its children; trees are never shared between
// rows and contain no cycles.
type Node struct {
	// Item is non-nil for leaves and nil for combined nodes.
	Item *gallery.Item
	// Direction applies to combined nodes only.
	Direction Direction
	// Left and Right are non-nil for combined nodes and nil for leaves.
	Left, Right *Node
}

// Leaf wraps a single item as a render-tree node.
func Leaf(item gallery.Item) *Node {
	it := item
	return &Node{Item: &it}
}

// Combine joins two subtrees in the given direction.
func Combine(d Direction, left, right *Node) *Node {
	return &Node{Direction: d, Left: left, Right: right}
}

// IsLeaf reports whether the node wraps a single item.
func (n *Node) IsLeaf() bool { return n.Item != nil }

// Leaves returns the tree's items in tree order (left before right).
func (n *Node) Leaves() []gallery.Item {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []gallery.Item{*n.Item}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

// buildTree maps a layout shape onto a render tree. The arranged slice is
// in slot order: main/hero first where the shape has one.
func buildTree(shape Shape, direction Direction, arranged []gallery.Item) *Node {
	switch shape {
	case ShapeSingle:
		return Leaf(arranged[0])

	case ShapePair:
		d := direction
		if d == DirectionNone {
			d = DirectionHorizontal
		}
		return Combine(d, Leaf(arranged[0]), Leaf(arranged[1]))

	case ShapeMainStacked:
		// Main beside a vertical stack of the two smaller items.
		return Combine(DirectionHorizontal,
			Leaf(arranged[0]),
			Combine(DirectionVertical, Leaf(arranged[1]), Leaf(arranged[2])))

	case ShapeNestedQuad:
		// Main beside a pair-over-single stack.
		return Combine(DirectionHorizontal,
			Leaf(arranged[0]),
			Combine(DirectionVertical,
				Combine(DirectionHorizontal, Leaf(arranged[1]), Leaf(arranged[2])),
				Leaf(arranged[3])))

	case ShapeHeroTop:
		return Combine(DirectionVertical, Leaf(arranged[0]), chain(arranged[1:]))

	case ShapeHeroBottom:
		return Combine(DirectionVertical, chain(arranged[1:]), Leaf(arranged[0]))

	default: // ShapeChain
		return chain(arranged)
	}
}

// chain folds items left-to-right into a left-heavy horizontal chain:
// (((s0,s1),s2),...).
func chain(items []gallery.Item) *Node {
	n := Leaf(items[0])
	for _, it := range items[1:] {
		n = Combine(DirectionHorizontal, n, Leaf(it))
	}
	return n
}
