package grid

import (
	"unicode/utf8"

	"github.com/tsawler/fusegrid/model"
)

// Config holds configuration options for the matrix builder.
type Config struct {
	// DefaultCellUnit is the cell size in points used when a page has no
	// glyph runs to derive a unit from.
	DefaultCellUnit float64

	// MinCellUnit guards against degenerate font-size hints; derived units
	// below this are clamped up.
	MinCellUnit float64
}

// DefaultConfig returns sensible builder defaults.
func DefaultConfig() Config {
	return Config{
		DefaultCellUnit: 12.0,
		MinCellUnit:     1.0,
	}
}

// Builder computes matrix skeletons for pages.
type Builder struct {
	config Config
}

// NewBuilder creates a matrix builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a matrix builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	if config.DefaultCellUnit <= 0 {
		config.DefaultCellUnit = DefaultConfig().DefaultCellUnit
	}
	if config.MinCellUnit <= 0 {
		config.MinCellUnit = DefaultConfig().MinCellUnit
	}
	return &Builder{config: config}
}

// CellUnit derives the cell size for a page from the smallest positive
// font-size hint among its runs, falling back to the configured default when
// no run carries one.
func (b *Builder) CellUnit(runs []model.GlyphRun) float64 {
	unit := 0.0
	for _, run := range runs {
		if run.FontSize <= 0 {
			continue
		}
		if unit == 0 || run.FontSize < unit {
			unit = run.FontSize
		}
	}
	if unit == 0 {
		unit = b.config.DefaultCellUnit
	}
	if unit < b.config.MinCellUnit {
		unit = b.config.MinCellUnit
	}
	return unit
}

// Project maps a run's page-space position to its starting cell. Positions
// divide by the cell unit and clamp to non-negative integers.
func (b *Builder) Project(run model.GlyphRun, unit float64) (row, col int) {
	row = int(run.BBox.Top() / unit)
	col = int(run.BBox.Left() / unit)
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return row, col
}

// Prefer reports whether run a (at source index ai) takes precedence over
// run b (at source index bi) when both project onto the same cell: larger
// font size first, then lower source index.
func (b *Builder) Prefer(a, bb model.GlyphRun, ai, bi int) bool {
	if a.FontSize != bb.FontSize {
		return a.FontSize > bb.FontSize
	}
	return ai < bi
}

// Build sizes an empty matrix skeleton for a page. Dimensions are the
// maximum projected row and column extent across all runs plus one; a page
// with no runs yields a 1×1 grid. Cells are left unpopulated.
func (b *Builder) Build(pageIndex int, runs []model.GlyphRun) *model.Matrix {
	unit := b.CellUnit(runs)

	rows, cols := 1, 1
	for _, run := range runs {
		row, col := b.Project(run, unit)
		length := utf8.RuneCountInString(run.Text)
		if length < 1 {
			length = 1
		}
		if row+1 > rows {
			rows = row + 1
		}
		if col+length > cols {
			cols = col + length
		}
	}

	m := model.NewMatrix(pageIndex, rows, cols)
	m.CellW = unit
	m.CellH = unit
	return m
}
