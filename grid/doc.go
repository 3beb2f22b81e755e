// Package grid computes the minimal character grid able to losslessly host a
// page's text.
//
// The [Builder] derives a cell unit from the smallest observed font run
// (falling back to a fixed default when the page has no runs), projects each
// glyph run's page-space position into cell coordinates, and sizes an empty
// matrix skeleton to the maximum projected extent. Population happens later,
// after fusion and assembly have assigned block ids and reading order.
//
//	builder := grid.NewBuilder()
//	matrix := builder.Build(pageIndex, runs)
//
// When two non-overlapping runs project to the same cell, the run with the
// larger font size wins, then the run with the lower source index; the
// [Builder.Prefer] predicate encodes that policy for the assembler.
package grid
