package layout

import "github.com/themancalledzac/photogrid/pkg/gallery"

// horiz and vert build test items with landscape/portrait dimensions.
func horiz(id string, rating int) gallery.Item {
	return gallery.Item{ID: id, Width: 1600, Height: 900, Rating: rating}
}

func vert(id string, rating int) gallery.Item {
	return gallery.Item{ID: id, Width: 900, Height: 1600, Rating: rating}
}

// stubPolicy returns fixed per-item component values and raw ratings,
// letting tests pin fill ratios exactly.
type stubPolicy struct {
	values map[string]float64
}

func (p stubPolicy) Rating(item gallery.Item, budget int) float64 {
	return float64(item.Rating)
}

func (p stubPolicy) ComponentValue(item gallery.Item, budget int) float64 {
	return p.values[item.ID]
}

// ids extracts item IDs in order.
func ids(items []gallery.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// leafIDs extracts the tree's leaf IDs in tree order.
func leafIDs(n *Node) []string {
	return ids(n.Leaves())
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
