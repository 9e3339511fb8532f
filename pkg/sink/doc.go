// Package sink serializes computed gallery rows.
//
// Three output formats are supported:
//
//   - JSON: the primary interchange format. Round-trips through [ParseJSON]
//     so layouts can be cached and re-rendered without re-running the engine.
//   - SVG: a static preview of the solved pixel boxes, useful for eyeballing
//     a layout without a browser.
//   - Terminal: a lipgloss-styled preview for quick CLI inspection.
//
// All renderers are pure functions over their inputs and safe to call
// concurrently.
package sink
