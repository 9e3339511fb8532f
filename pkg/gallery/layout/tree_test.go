package layout

import (
	"testing"

	"github.com/themancalledzac/photogrid/pkg/gallery"
)

func TestBuildTreeShapes(t *testing.T) {
	a, b, c, d := horiz("a", 4), vert("b", 2), vert("c", 2), vert("d", 2)

	tests := []struct {
		name      string
		shape     Shape
		direction Direction
		arranged  []gallery.Item
		wantLeafs []string
	}{
		{name: "single", shape: ShapeSingle, direction: DirectionNone, arranged: []gallery.Item{a}, wantLeafs: []string{"a"}},
		{name: "pair", shape: ShapePair, direction: DirectionHorizontal, arranged: []gallery.Item{a, b}, wantLeafs: []string{"a", "b"}},
		{name: "chain", shape: ShapeChain, direction: DirectionHorizontal, arranged: []gallery.Item{a, b, c}, wantLeafs: []string{"a", "b", "c"}},
		{name: "main stacked", shape: ShapeMainStacked, direction: DirectionHorizontal, arranged: []gallery.Item{a, b, c}, wantLeafs: []string{"a", "b", "c"}},
		{name: "nested quad", shape: ShapeNestedQuad, direction: DirectionHorizontal, arranged: []gallery.Item{a, b, c, d}, wantLeafs: []string{"a", "b", "c", "d"}},
		{name: "hero top", shape: ShapeHeroTop, direction: DirectionVertical, arranged: []gallery.Item{a, b, c, d}, wantLeafs: []string{"a", "b", "c", "d"}},
		{name: "hero bottom", shape: ShapeHeroBottom, direction: DirectionVertical, arranged: []gallery.Item{a, b, c, d}, wantLeafs: []string{"b", "c", "d", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(tt.shape, tt.direction, tt.arranged)
			if got := leafIDs(tree); !equalStrings(got, tt.wantLeafs) {
				t.Errorf("leaves = %v, want %v", got, tt.wantLeafs)
			}
		})
	}
}

func TestBuildTreeMainStackedStructure(t *testing.T) {
	tree := buildTree(ShapeMainStacked, DirectionHorizontal,
		[]gallery.Item{horiz("main", 4), vert("top", 2), vert("bottom", 2)})

	if tree.IsLeaf() || tree.Direction != DirectionHorizontal {
		t.Fatalf("root should combine horizontally, got %+v", tree)
	}
	if !tree.Left.IsLeaf() || tree.Left.Item.ID != "main" {
		t.Errorf("left child should be the main leaf")
	}
	stack := tree.Right
	if stack.IsLeaf() || stack.Direction != DirectionVertical {
		t.Fatalf("right child should be a vertical stack, got %+v", stack)
	}
	if stack.Left.Item.ID != "top" || stack.Right.Item.ID != "bottom" {
		t.Errorf("stack = [%s %s], want [top bottom]", stack.Left.Item.ID, stack.Right.Item.ID)
	}
}

func TestBuildTreeNestedQuadStructure(t *testing.T) {
	tree := buildTree(ShapeNestedQuad, DirectionHorizontal,
		[]gallery.Item{horiz("main", 4), vert("tl", 2), vert("tr", 2), vert("bottom", 2)})

	if tree.Left.Item == nil || tree.Left.Item.ID != "main" {
		t.Fatalf("quad main should be the left leaf")
	}
	stack := tree.Right
	if stack.Direction != DirectionVertical {
		t.Fatalf("quad stack should combine vertically")
	}
	pair := stack.Left
	if pair.IsLeaf() || pair.Direction != DirectionHorizontal {
		t.Fatalf("top of the stack should be a horizontal pair")
	}
	if pair.Left.Item.ID != "tl" || pair.Right.Item.ID != "tr" {
		t.Errorf("top pair = [%s %s], want [tl tr]", pair.Left.Item.ID, pair.Right.Item.ID)
	}
	if !stack.Right.IsLeaf() || stack.Right.Item.ID != "bottom" {
		t.Errorf("bottom of the stack should be the single leaf")
	}
}

func TestBuildTreeChainIsLeftHeavy(t *testing.T) {
	tree := buildTree(ShapeChain, DirectionHorizontal,
		[]gallery.Item{vert("a", 1), vert("b", 1), vert("c", 1)})

	// (((a,b),c): the right child of the root is the last leaf.
	if !tree.Right.IsLeaf() || tree.Right.Item.ID != "c" {
		t.Fatalf("chain should fold left-heavy, got right = %+v", tree.Right)
	}
	inner := tree.Left
	if inner.IsLeaf() || inner.Left.Item.ID != "a" || inner.Right.Item.ID != "b" {
		t.Errorf("inner chain should be (a,b)")
	}
}
