// Package layout assembles gallery items into display rows.
//
// The engine is a greedy packer with a declarative pattern table: for each
// row it takes a bounded lookahead window of not-yet-placed items, tries
// every named combination pattern in priority order, and accepts the first
// pattern whose matched items also fill the row (fill ratio within
// [0.9, 1.15] of the row-width budget). When no pattern fits, a deterministic
// force-fill fallback composes the row instead. Each accepted row is turned
// into a recursive render tree of leaves and horizontal/vertical combinations
// which downstream sizing and rendering consume.
//
// The engine is purely functional over its input: no I/O, no shared state,
// and safe for concurrent use by independent callers.
//
// # Usage
//
//	rows, err := layout.BuildRows(items, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range rows {
//	    fmt.Println(row.Pattern, len(row.Components))
//	}
package layout
