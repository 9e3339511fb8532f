package sink

import (
	"encoding/json"
	"fmt"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title    string
	rowWidth int
}

// WithJSONTitle records the gallery title in the JSON output.
func WithJSONTitle(title string) JSONOption {
	return func(r *jsonRenderer) { r.title = title }
}

// WithJSONRowWidth records the row-width budget the layout was computed
// with, enabling reproducible re-rendering.
func WithJSONRowWidth(budget int) JSONOption {
	return func(r *jsonRenderer) { r.rowWidth = budget }
}

type jsonDocument struct {
	Title    string    `json:"title,omitempty"`
	RowWidth int       `json:"row_width,omitempty"`
	Rows     []jsonRow `json:"rows"`
}

type jsonRow struct {
	Pattern    string     `json:"pattern"`
	Direction  string     `json:"direction"`
	Components []jsonItem `json:"components"`
	Tree       *jsonNode  `json:"tree"`
}

type jsonItem struct {
	ID     string `json:"id"`
	File   string `json:"file,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Rating int    `json:"rating"`
}

// jsonNode mirrors the recursive render tree: a node carries either an item
// (leaf) or a direction plus two children (combined).
type jsonNode struct {
	Item      *jsonItem `json:"item,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Left      *jsonNode `json:"left,omitempty"`
	Right     *jsonNode `json:"right,omitempty"`
}

// RenderJSON exports rows as a pretty-printed JSON document. The output
// includes each row's components, pattern name, direction, and full render
// tree, and re-imports with [ParseJSON] for round-trip rendering.
func RenderJSON(rows []layout.Row, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	doc := jsonDocument{
		Title:    r.title,
		RowWidth: r.rowWidth,
		Rows:     make([]jsonRow, len(rows)),
	}
	for i, row := range rows {
		doc.Rows[i] = jsonRow{
			Pattern:    row.Pattern,
			Direction:  row.Direction.String(),
			Components: itemsToJSON(row.Components),
			Tree:       nodeToJSON(row.Tree),
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// ParseJSON re-imports a document produced by [RenderJSON]. It returns the
// rows and the recorded row-width budget (zero when absent).
func ParseJSON(data []byte) ([]layout.Row, int, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("parse layout document: %w", err)
	}

	rows := make([]layout.Row, len(doc.Rows))
	for i, jr := range doc.Rows {
		tree, err := nodeFromJSON(jr.Tree)
		if err != nil {
			return nil, 0, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = layout.Row{
			Pattern:    jr.Pattern,
			Direction:  directionFromString(jr.Direction),
			Components: itemsFromJSON(jr.Components),
			Tree:       tree,
		}
	}
	return rows, doc.RowWidth, nil
}

func itemsToJSON(items []gallery.Item) []jsonItem {
	out := make([]jsonItem, len(items))
	for i, it := range items {
		out[i] = jsonItem{ID: it.ID, File: it.File, Width: it.Width, Height: it.Height, Rating: it.Rating}
	}
	return out
}

func itemsFromJSON(items []jsonItem) []gallery.Item {
	out := make([]gallery.Item, len(items))
	for i, it := range items {
		out[i] = gallery.Item{ID: it.ID, File: it.File, Width: it.Width, Height: it.Height, Rating: it.Rating}
	}
	return out
}

func nodeToJSON(n *layout.Node) *jsonNode {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		it := jsonItem{ID: n.Item.ID, File: n.Item.File, Width: n.Item.Width, Height: n.Item.Height, Rating: n.Item.Rating}
		return &jsonNode{Item: &it}
	}
	return &jsonNode{
		Direction: n.Direction.String(),
		Left:      nodeToJSON(n.Left),
		Right:     nodeToJSON(n.Right),
	}
}

func nodeFromJSON(jn *jsonNode) (*layout.Node, error) {
	if jn == nil {
		return nil, fmt.Errorf("missing render tree node")
	}
	if jn.Item != nil {
		return layout.Leaf(gallery.Item{
			ID: jn.Item.ID, File: jn.Item.File,
			Width: jn.Item.Width, Height: jn.Item.Height, Rating: jn.Item.Rating,
		}), nil
	}
	left, err := nodeFromJSON(jn.Left)
	if err != nil {
		return nil, err
	}
	right, err := nodeFromJSON(jn.Right)
	if err != nil {
		return nil, err
	}
	return layout.Combine(directionFromString(jn.Direction), left, right), nil
}

func directionFromString(s string) layout.Direction {
	switch s {
	case "horizontal":
		return layout.DirectionHorizontal
	case "vertical":
		return layout.DirectionVertical
	default:
		return layout.DirectionNone
	}
}
