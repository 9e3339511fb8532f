package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
	"github.com/themancalledzac/photogrid/pkg/gallery/sizing"
)

// PreviewOption configures terminal rendering via [RenderPreview].
type PreviewOption func(*previewRenderer)

type previewRenderer struct {
	width int
}

// WithPreviewWidth sets the terminal column budget. Defaults to 80.
func WithPreviewWidth(cols int) PreviewOption {
	return func(r *previewRenderer) { r.width = cols }
}

var (
	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	previewHeroStyle = previewBoxStyle.
				BorderForeground(lipgloss.Color("36")).
				Bold(true)

	previewLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderPreview draws rows as bordered cells whose widths mirror the solved
// pixel proportions. Vertically nested items collapse into a single strip
// per row; the preview shows grouping and relative size, not exact geometry.
func RenderPreview(rows []layout.Row, opts ...PreviewOption) string {
	r := previewRenderer{width: 80}
	for _, opt := range opts {
		opt(&r)
	}

	var sections []string
	for _, row := range rows {
		sections = append(sections, renderPreviewRow(row, r.width))
	}
	return strings.Join(sections, "\n")
}

func renderPreviewRow(row layout.Row, cols int) string {
	header := previewLabelStyle.Render(row.Pattern)

	solved, err := sizing.SolveRow(row.Tree, float64(cols))
	if err != nil {
		return header
	}

	ratings := ratingIndex([]layout.Row{row})
	cells := make([]string, 0, len(solved.Boxes))
	for _, box := range solved.Boxes {
		w := int(box.Width + 0.5)
		if w < 8 {
			w = 8
		}
		style := previewBoxStyle
		rating := ratings[box.ItemID]
		if rating >= 5 {
			style = previewHeroStyle
		}
		label := box.ItemID + "\n" + strings.Repeat("★", clampRating(rating))
		// Border consumes two columns.
		cells = append(cells, style.Width(w-2).Render(label))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return header + "\n" + strip
}
