// Package assemble orders fused blocks into reading order and populates the
// matrix skeleton with their text.
//
// The [Assembler] sorts a page's blocks top-to-bottom then left-to-right by
// top-left corner (ties broken by block id), assigns gap-free reading-order
// indices, and writes each block's glyph runs into the grid at their
// projected positions. Table blocks get additional internal structuring:
// member run coordinates are clustered on each axis to infer row and column
// boundaries, and runs are laid into a row-major sub-grid inside the block's
// bounding box.
//
//	assembler := assemble.NewAssembler()
//	matrix := assembler.Assemble(page, blocks)
//
// Run text is NFC-normalized before population so one rune occupies one
// cell. When two runs project onto the same cell the matrix builder's
// precedence policy applies: larger font size wins, then lower reading
// order.
package assemble
