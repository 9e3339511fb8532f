package sink

import (
	"bytes"
	"fmt"

	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
	"github.com/themancalledzac/photogrid/pkg/gallery/sizing"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	rowWidth float64
	gutter   float64
	labels   bool
}

// WithSVGRowWidth sets the pixel width each row is solved at. Defaults to
// 1200.
func WithSVGRowWidth(px float64) SVGOption {
	return func(r *svgRenderer) { r.rowWidth = px }
}

// WithSVGGutter sets the vertical gap between rows in pixels. Defaults to 8.
func WithSVGGutter(px float64) SVGOption {
	return func(r *svgRenderer) { r.gutter = px }
}

// WithSVGLabels overlays each box with its item ID and rating.
func WithSVGLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// ratingFills maps an item rating to a placeholder fill, darkening as the
// rating climbs so the row hierarchy is visible without the actual photos.
var ratingFills = [6]string{"#e8e8e8", "#d4d4d4", "#b8c4d0", "#8fa8c0", "#6d89ab", "#4a6b8f"}

// RenderSVG draws every row as placeholder rectangles sized by the pixel
// solver, stacked vertically with a gutter between rows.
func RenderSVG(rows []layout.Row, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{rowWidth: 1200, gutter: 8}
	for _, opt := range opts {
		opt(&r)
	}

	solved := make([]sizing.SolvedRow, len(rows))
	totalHeight := 0.0
	for i, row := range rows {
		s, err := sizing.SolveRow(row.Tree, r.rowWidth)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		solved[i] = s
		totalHeight += s.Height
		if i > 0 {
			totalHeight += r.gutter
		}
	}

	ratings := ratingIndex(rows)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.rowWidth, totalHeight, r.rowWidth, totalHeight)

	offsetY := 0.0
	for _, s := range solved {
		for _, box := range s.Boxes {
			fill := ratingFills[clampRating(ratings[box.ItemID])]
			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#ffffff" stroke-width="2"/>`+"\n",
				box.X, box.Y+offsetY, box.Width, box.Height, fill)
			if r.labels {
				fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="14" fill="#333333">%s (%d)</text>`+"\n",
					box.X+8, box.Y+offsetY+20, escapeXML(box.ItemID), ratings[box.ItemID])
			}
		}
		offsetY += s.Height + r.gutter
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func ratingIndex(rows []layout.Row) map[string]int {
	idx := make(map[string]int)
	for _, row := range rows {
		for _, it := range row.Components {
			idx[it.ID] = it.Rating
		}
	}
	return idx
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, c := range s {
		switch c {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
