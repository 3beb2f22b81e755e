// Package editor provides the mutable edit session over a page's populated
// matrix.
//
// A [Session] is a small state machine (Idle, CellSelected, RangeSelected,
// Editing) driven by selection, typing, deletion, clipboard, and undo/redo
// calls. Typing overwrites the selected cell and advances the cursor one
// column, clamped at the row's right edge; there is no insert-and-shift and
// no modal confirm step. Every content-mutating call pushes its inverse on
// the undo stack and clears the redo stack; undo and redo past their stack
// bounds are no-ops.
//
// Edits are view-level: they change cell characters only, never the owning
// block ids or the underlying block and glyph-run records, which stay
// available for read-only lookups such as [Session.Locate]. The session is
// discarded when its document is closed or reprocessed.
//
// A session is single-writer: callers must serialize mutating calls. The
// package adds no locking of its own.
package editor
