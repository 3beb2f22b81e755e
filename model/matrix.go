package model

// Blank is the sentinel character for an empty cell.
const Blank rune = ' '

// NoBlock marks a cell with no owning block.
const NoBlock = -1

// CellFlags carries style flags for a cell.
type CellFlags uint8

const (
	// FlagTableCell marks cells populated from a table sub-grid.
	FlagTableCell CellFlags = 1 << iota
)

// Cell is one grid slot: a character value (or the blank sentinel), the id
// of the owning block if any, and style flags. Only the character is ever
// mutated after assembly, and only through an edit session.
type Cell struct {
	Char    rune
	BlockID int
	Flags   CellFlags
}

// IsBlank reports whether the cell holds the blank sentinel.
func (c Cell) IsBlank() bool { return c.Char == Blank }

// Matrix is the character grid for one page. Matrices are strictly per-page;
// a document holds one matrix per page so no cell is ever adjacent to a cell
// from another page.
type Matrix struct {
	PageIndex int
	Rows      int
	Cols      int

	// CellW and CellH are the page-space size of one cell, recorded by the
	// builder so cells can be projected back to page coordinates.
	CellW float64
	CellH float64

	cells [][]Cell
}

// NewMatrix creates a rows×cols matrix of blank, unowned cells.
// Dimensions are clamped to a minimum of 1×1.
func NewMatrix(pageIndex, rows, cols int) *Matrix {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = Cell{Char: Blank, BlockID: NoBlock}
		}
		cells[r] = row
	}
	return &Matrix{PageIndex: pageIndex, Rows: rows, Cols: cols, cells: cells}
}

// InBounds reports whether (row, col) is a valid cell position.
func (m *Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// At returns the cell at (row, col). It panics on out-of-bounds access, like
// a slice index; callers clamp positions first.
func (m *Matrix) At(row, col int) Cell {
	return m.cells[row][col]
}

// SetChar overwrites the character at (row, col), leaving the owning block
// untouched. Out-of-bounds positions are ignored.
func (m *Matrix) SetChar(row, col int, ch rune) {
	if !m.InBounds(row, col) {
		return
	}
	m.cells[row][col].Char = ch
}

// Set replaces the whole cell at (row, col). Used only during assembly;
// edits after assembly go through SetChar.
func (m *Matrix) Set(row, col int, cell Cell) {
	if !m.InBounds(row, col) {
		return
	}
	m.cells[row][col] = cell
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []Cell {
	out := make([]Cell, m.Cols)
	copy(out, m.cells[r])
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{
		PageIndex: m.PageIndex,
		Rows:      m.Rows,
		Cols:      m.Cols,
		CellW:     m.CellW,
		CellH:     m.CellH,
		cells:     make([][]Cell, m.Rows),
	}
	for r := range m.cells {
		row := make([]Cell, m.Cols)
		copy(row, m.cells[r])
		clone.cells[r] = row
	}
	return clone
}

// Equal reports whether two matrices have identical dimensions and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
