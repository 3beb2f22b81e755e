package assemble

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/fusegrid/grid"
	"github.com/tsawler/fusegrid/model"
)

// Config holds configuration options for block assembly.
type Config struct {
	// TableClusterRatio is the clustering tolerance for table row/column
	// inference, as a fraction of the cell unit.
	TableClusterRatio float64
}

// DefaultConfig returns the default assembly configuration.
func DefaultConfig() Config {
	return Config{
		TableClusterRatio: 0.5,
	}
}

// Assembler orders blocks and populates matrices.
type Assembler struct {
	config  Config
	builder *grid.Builder
}

// NewAssembler creates an assembler with default configuration and a default
// matrix builder.
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultConfig(), builder: grid.NewBuilder()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
// A nil builder falls back to the default matrix builder.
func NewAssemblerWithConfig(config Config, builder *grid.Builder) *Assembler {
	if config.TableClusterRatio <= 0 {
		config.TableClusterRatio = DefaultConfig().TableClusterRatio
	}
	if builder == nil {
		builder = grid.NewBuilder()
	}
	return &Assembler{config: config, builder: builder}
}

// Order sorts blocks top-to-bottom then left-to-right by their top-left
// corner, breaking ties by block id, and assigns reading-order indices
// 0..N-1. The input slice is not modified; the returned slice holds the same
// block pointers in reading order.
func (a *Assembler) Order(blocks []*model.Block) []*model.Block {
	ordered := make([]*model.Block, len(blocks))
	copy(ordered, blocks)

	sort.SliceStable(ordered, func(i, j int) bool {
		bi, bj := ordered[i], ordered[j]
		if bi.BBox.Top() != bj.BBox.Top() {
			return bi.BBox.Top() < bj.BBox.Top()
		}
		if bi.BBox.Left() != bj.BBox.Left() {
			return bi.BBox.Left() < bj.BBox.Left()
		}
		return bi.ID < bj.ID
	})

	for i, b := range ordered {
		b.ReadingOrder = i
	}
	return ordered
}

// Assemble orders the blocks, attaches them to the page, sizes the matrix
// skeleton from all member runs, and populates cell content. The returned
// matrix is ready for interactive use.
func (a *Assembler) Assemble(page *model.Page, blocks []*model.Block) *model.Matrix {
	ordered := a.Order(blocks)
	page.Blocks = ordered

	var allRuns []model.GlyphRun
	for _, b := range ordered {
		allRuns = append(allRuns, b.Runs...)
	}

	m := a.builder.Build(page.Index, allRuns)
	a.populate(m, ordered)
	return m
}

// claim records which run currently owns a cell, for precedence checks.
type claim struct {
	run   model.GlyphRun
	order int
	held  bool
}

// populate writes every block's runs into the matrix. Runs are enumerated in
// reading order, so the source-order tie-break anticipates reading order as
// the builder's precedence policy expects.
func (a *Assembler) populate(m *model.Matrix, ordered []*model.Block) {
	claims := make([]claim, m.Rows*m.Cols)
	next := 0

	for _, b := range ordered {
		if b.Type == model.BlockTable {
			next = a.populateTable(m, b, claims, next)
			continue
		}
		for _, run := range b.Runs {
			row, col := a.builder.Project(run, m.CellH)
			a.layRun(m, b, run, row, col, next, claims, 0)
			next++
		}
	}
}

// populateTable lays a table block's runs into a row-major sub-grid inside
// the block's bounding box. Run x and y coordinates are clustered
// independently to infer column and row boundaries, which handles runs that
// visually span several text lines but belong to one logical table.
func (a *Assembler) populateTable(m *model.Matrix, b *model.Block, claims []claim, next int) int {
	if len(b.Runs) == 0 {
		return next
	}

	tol := m.CellH * a.config.TableClusterRatio
	xs := make([]float64, len(b.Runs))
	ys := make([]float64, len(b.Runs))
	for i, run := range b.Runs {
		xs[i] = run.BBox.Left()
		ys[i] = run.BBox.Top()
	}
	colOf, colCount := clusterValues(xs, tol)
	rowOf, _ := clusterValues(ys, tol)

	// Column character offsets: each inferred column is as wide as its
	// widest member, plus one separator column.
	colWidth := make([]int, colCount)
	for i, run := range b.Runs {
		if n := runeCount(run.Text); n > colWidth[colOf[i]] {
			colWidth[colOf[i]] = n
		}
	}
	colOffset := make([]int, colCount)
	off := 0
	for c := 0; c < colCount; c++ {
		colOffset[c] = off
		off += colWidth[c] + 1
	}

	topRow, leftCol := a.builder.Project(model.GlyphRun{BBox: b.BBox}, m.CellH)
	for i, run := range b.Runs {
		row := topRow + rowOf[i]
		col := leftCol + colOffset[colOf[i]]
		a.layRun(m, b, run, row, col, next, claims, model.FlagTableCell)
		next++
	}
	return next
}

// layRun writes one run's characters across a row starting at (row, col).
// Characters past the right edge are truncated, never wrapped. A cell
// already claimed by another run is only overwritten when the builder's
// precedence policy prefers the new run.
func (a *Assembler) layRun(m *model.Matrix, b *model.Block, run model.GlyphRun, row, col, order int, claims []claim, flags model.CellFlags) {
	if row < 0 || row >= m.Rows {
		return
	}
	runes := []rune(norm.NFC.String(run.Text))
	for i, ch := range runes {
		c := col + i
		if c >= m.Cols {
			break
		}
		if c < 0 {
			continue
		}
		idx := row*m.Cols + c
		if claims[idx].held && !a.builder.Prefer(run, claims[idx].run, order, claims[idx].order) {
			continue
		}
		claims[idx] = claim{run: run, order: order, held: true}
		m.Set(row, c, model.Cell{Char: ch, BlockID: b.ID, Flags: flags})
	}
}

// clusterValues groups one-dimensional coordinates whose gaps stay within
// the tolerance, returning each value's cluster index (ascending by
// position) and the number of clusters.
func clusterValues(values []float64, tol float64) ([]int, int) {
	if len(values) == 0 {
		return nil, 0
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool {
		return values[indices[i]] < values[indices[j]]
	})

	clusterOf := make([]int, len(values))
	cluster := 0
	anchor := values[indices[0]]
	clusterOf[indices[0]] = 0

	for k := 1; k < len(indices); k++ {
		v := values[indices[k]]
		if v-anchor > tol {
			cluster++
			anchor = v
		}
		clusterOf[indices[k]] = cluster
	}
	return clusterOf, cluster + 1
}

func runeCount(s string) int {
	return len([]rune(norm.NFC.String(s)))
}
