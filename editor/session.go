package editor

import (
	"github.com/google/uuid"

	"github.com/tsawler/fusegrid/model"
)

// State identifies the session's interaction state.
type State int

const (
	StateIdle State = iota
	StateCellSelected
	StateRangeSelected
	// StateEditing is the transient state entered while a typed character
	// is applied; the session returns to StateCellSelected before the call
	// finishes.
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateCellSelected:
		return "CellSelected"
	case StateRangeSelected:
		return "RangeSelected"
	case StateEditing:
		return "Editing"
	default:
		return "Idle"
	}
}

// Pos addresses one cell by row and column.
type Pos struct {
	Row, Col int
}

// Range is a rectangular cell range. Normalized ranges have Start.Row <=
// End.Row and Start.Col <= End.Col.
type Range struct {
	Start, End Pos
}

// normalize returns the range with corners ordered.
func (r Range) normalize() Range {
	if r.Start.Row > r.End.Row {
		r.Start.Row, r.End.Row = r.End.Row, r.Start.Row
	}
	if r.Start.Col > r.End.Col {
		r.Start.Col, r.End.Col = r.End.Col, r.Start.Col
	}
	return r
}

// single reports whether the range covers exactly one cell.
func (r Range) single() bool {
	return r.Start == r.End
}

// cellEdit records one cell's character change.
type cellEdit struct {
	pos    Pos
	before rune
	after  rune
}

// operation is one undoable unit: the cell edits of a single mutating call.
type operation struct {
	edits []cellEdit
}

// Session is the edit state machine over one page's populated matrix.
type Session struct {
	id     uuid.UUID
	page   *model.Page
	matrix *model.Matrix

	state  State
	cursor Pos
	sel    Range

	undo []operation
	redo []operation
	clip string
}

// NewSession creates an idle session over a page and its matrix.
func NewSession(page *model.Page, matrix *model.Matrix) *Session {
	return &Session{
		id:     uuid.New(),
		page:   page,
		matrix: matrix,
		state:  StateIdle,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current interaction state.
func (s *Session) State() State { return s.state }

// Cursor returns the current cursor position. Meaningful only outside
// StateIdle.
func (s *Session) Cursor() Pos { return s.cursor }

// Selection returns the current rectangular selection and whether one is
// active. In StateCellSelected the selection is the single cursor cell.
func (s *Session) Selection() (Range, bool) {
	switch s.state {
	case StateCellSelected:
		return Range{Start: s.cursor, End: s.cursor}, true
	case StateRangeSelected:
		return s.sel, true
	default:
		return Range{}, false
	}
}

// Matrix returns the session's matrix for read-only rendering.
func (s *Session) Matrix() *model.Matrix { return s.matrix }

// clamp confines a position to matrix bounds.
func (s *Session) clamp(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= s.matrix.Rows {
		p.Row = s.matrix.Rows - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col >= s.matrix.Cols {
		p.Col = s.matrix.Cols - 1
	}
	return p
}

// SelectCell selects a single cell, clamping the position into bounds.
func (s *Session) SelectCell(p Pos) {
	s.cursor = s.clamp(p)
	s.state = StateCellSelected
}

// SelectRange selects a rectangular range, clamping both corners into
// bounds. A single-cell range collapses to a cell selection.
func (s *Session) SelectRange(r Range) {
	r = Range{Start: s.clamp(r.Start), End: s.clamp(r.End)}.normalize()
	if r.single() {
		s.SelectCell(r.Start)
		return
	}
	s.sel = r
	s.cursor = r.Start
	s.state = StateRangeSelected
}

// Deselect returns the session to the idle state.
func (s *Session) Deselect() {
	s.state = StateIdle
}

// Move shifts the cell selection by one step in each axis direction,
// clamped to matrix bounds; it never wraps. A range selection collapses to
// its start cell before moving. Move is a no-op in StateIdle.
func (s *Session) Move(dRow, dCol int) {
	switch s.state {
	case StateCellSelected, StateRangeSelected:
		s.SelectCell(Pos{Row: s.cursor.Row + dRow, Col: s.cursor.Col + dCol})
	}
}

// Type overwrites the selected cell's character with ch and advances the
// cursor one column, clamped at the row's right edge. It applies only in
// StateCellSelected or a single-cell StateRangeSelected; otherwise it is a
// no-op. Returns the positions of the cells it touched.
func (s *Session) Type(ch rune) []Pos {
	switch s.state {
	case StateCellSelected:
	case StateRangeSelected:
		if !s.sel.single() {
			return nil
		}
		s.cursor = s.sel.Start
	default:
		return nil
	}

	s.state = StateEditing
	target := s.cursor
	s.applyOp(operation{edits: []cellEdit{{
		pos:    target,
		before: s.matrix.At(target.Row, target.Col).Char,
		after:  ch,
	}}})

	next := target
	if next.Col < s.matrix.Cols-1 {
		next.Col++
	}
	s.cursor = next
	s.state = StateCellSelected

	return []Pos{target}
}

// Delete blanks every cell in the current selection. Returns the positions
// it touched; a no-op outside a selection.
func (s *Session) Delete() []Pos {
	r, ok := s.Selection()
	if !ok {
		return nil
	}

	var edits []cellEdit
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for col := r.Start.Col; col <= r.End.Col; col++ {
			before := s.matrix.At(row, col).Char
			if before == model.Blank {
				continue
			}
			edits = append(edits, cellEdit{pos: Pos{Row: row, Col: col}, before: before, after: model.Blank})
		}
	}
	if len(edits) == 0 {
		return nil
	}
	s.applyOp(operation{edits: edits})

	touched := make([]Pos, len(edits))
	for i, e := range edits {
		touched[i] = e.pos
	}
	return touched
}

// applyOp applies an operation's forward edits, pushes it on the undo
// stack, and clears the redo stack.
func (s *Session) applyOp(op operation) {
	for _, e := range op.edits {
		s.matrix.SetChar(e.pos.Row, e.pos.Col, e.after)
	}
	s.undo = append(s.undo, op)
	s.redo = nil
}

// Undo reverts the most recent mutating operation and moves it to the redo
// stack. A no-op on an empty stack. Returns the positions it touched.
func (s *Session) Undo() []Pos {
	if len(s.undo) == 0 {
		return nil
	}
	op := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	touched := make([]Pos, len(op.edits))
	for i, e := range op.edits {
		s.matrix.SetChar(e.pos.Row, e.pos.Col, e.before)
		touched[i] = e.pos
	}
	s.redo = append(s.redo, op)
	return touched
}

// Redo re-applies the most recently undone operation. A no-op on an empty
// stack. Returns the positions it touched.
func (s *Session) Redo() []Pos {
	if len(s.redo) == 0 {
		return nil
	}
	op := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	touched := make([]Pos, len(op.edits))
	for i, e := range op.edits {
		s.matrix.SetChar(e.pos.Row, e.pos.Col, e.after)
		touched[i] = e.pos
	}
	s.undo = append(s.undo, op)
	return touched
}

// Locate maps a cell back to its originating glyph run's page-space
// bounding box, for click-to-source highlighting. When the owning run
// cannot be narrowed down the owning block's box is returned. The second
// result is false for unowned or out-of-bounds cells. Manual edits never
// disturb this mapping: it reads the immutable block records, not cell
// characters.
func (s *Session) Locate(p Pos) (model.BBox, bool) {
	if s.page == nil || !s.matrix.InBounds(p.Row, p.Col) {
		return model.BBox{}, false
	}
	cell := s.matrix.At(p.Row, p.Col)
	if cell.BlockID == model.NoBlock {
		return model.BBox{}, false
	}
	block := s.page.BlockByID(cell.BlockID)
	if block == nil {
		return model.BBox{}, false
	}

	unit := s.matrix.CellH
	if unit > 0 {
		for _, run := range block.Runs {
			row := int(run.BBox.Top() / unit)
			col := int(run.BBox.Left() / unit)
			if row < 0 {
				row = 0
			}
			if col < 0 {
				col = 0
			}
			length := len([]rune(run.Text))
			if p.Row == row && p.Col >= col && p.Col < col+length {
				return run.BBox, true
			}
		}
	}
	return block.BBox, true
}
