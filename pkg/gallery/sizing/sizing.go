// Package sizing turns render trees into pixel boxes.
//
// The layout engine describes each row as a recursive tree of leaves and
// horizontal/vertical combinations, independent of pixel sizes. This package
// implements the consumer side of that contract: given a tree and a pixel
// row width, it computes one box per leaf consistent with the tree's nesting
// and each item's aspect ratio.
//
// The math is the classic aspect-ratio fold: a horizontal combination's
// aspect ratio is the sum of its children's (they share a height), a
// vertical combination's is the harmonic combination (they share a width).
// One top-down pass then distributes the row's pixels.
package sizing

import (
	"errors"

	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
)

// ErrEmptyTree is returned by SolveRow for a nil render tree.
var ErrEmptyTree = errors.New("cannot size an empty render tree")

// ErrInvalidRowWidth is returned by SolveRow for non-positive pixel widths.
var ErrInvalidRowWidth = errors.New("row pixel width must be positive")

// Box is the solved placement of one leaf, in pixels. X grows rightward and
// Y downward from the row's top-left corner.
type Box struct {
	ItemID string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SolvedRow is a fully sized row.
type SolvedRow struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Boxes  []Box   `json:"boxes"`
}

// SolveRow computes a pixel box per leaf of the tree for the given row
// width. The returned boxes appear in tree order.
func SolveRow(tree *layout.Node, rowWidth float64) (SolvedRow, error) {
	if tree == nil {
		return SolvedRow{}, ErrEmptyTree
	}
	if rowWidth <= 0 {
		return SolvedRow{}, ErrInvalidRowWidth
	}

	ar := treeAspect(tree)
	height := rowWidth / ar

	row := SolvedRow{Width: rowWidth, Height: height}
	assign(tree, 0, 0, rowWidth, height, &row.Boxes)
	return row, nil
}

// treeAspect computes the aggregate aspect ratio of a subtree.
func treeAspect(n *layout.Node) float64 {
	if n.IsLeaf() {
		return n.Item.AspectRatio()
	}
	l, r := treeAspect(n.Left), treeAspect(n.Right)
	if n.Direction == layout.DirectionVertical {
		// Stacked children share a width: 1/ar = 1/l + 1/r.
		return l * r / (l + r)
	}
	// Side-by-side children share a height.
	return l + r
}

// assign walks the tree top-down, splitting the allocated box between the
// two children proportionally to their aspect ratios.
func assign(n *layout.Node, x, y, w, h float64, boxes *[]Box) {
	if n.IsLeaf() {
		*boxes = append(*boxes, Box{ItemID: n.Item.ID, X: x, Y: y, Width: w, Height: h})
		return
	}

	if n.Direction == layout.DirectionVertical {
		topH := w / treeAspect(n.Left)
		assign(n.Left, x, y, w, topH, boxes)
		assign(n.Right, x, y+topH, w, h-topH, boxes)
		return
	}

	leftW := h * treeAspect(n.Left)
	assign(n.Left, x, y, leftW, h, boxes)
	assign(n.Right, x+leftW, y, w-leftW, h, boxes)
}
