package layout_test

import (
	"fmt"

	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
)

func ExampleBuildRows() {
	items := []gallery.Item{
		{ID: "sunset", Width: 1600, Height: 900, Rating: 5},
		{ID: "pier", Width: 1400, Height: 900, Rating: 4},
		{ID: "gulls", Width: 1400, Height: 900, Rating: 4},
		{ID: "shell-1", Width: 800, Height: 1200, Rating: 2},
		{ID: "shell-2", Width: 800, Height: 1200, Rating: 2},
		{ID: "shell-3", Width: 800, Height: 1200, Rating: 2},
	}

	rows, err := layout.BuildRows(items, 5)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, row := range rows {
		fmt.Printf("%s: %d item(s), %s\n", row.Pattern, len(row.Components), row.Direction)
	}
	// Output:
	// STANDALONE: 1 item(s), none
	// HORIZONTAL_PAIR: 2 item(s), horizontal
	// MULTI_SMALL: 3 item(s), horizontal
}
