package assemble

import (
	"testing"

	"github.com/tsawler/fusegrid/model"
)

func TestOrder_TopToBottomLeftToRight(t *testing.T) {
	a := NewAssembler()
	blocks := []*model.Block{
		{ID: 0, BBox: model.NewBBox(300, 100, 100, 20)}, // right, middle
		{ID: 1, BBox: model.NewBBox(10, 100, 100, 20)},  // left, middle
		{ID: 2, BBox: model.NewBBox(10, 10, 100, 20)},   // top
		{ID: 3, BBox: model.NewBBox(10, 500, 100, 20)},  // bottom
	}

	ordered := a.Order(blocks)
	wantIDs := []int{2, 1, 0, 3}
	for i, b := range ordered {
		if b.ID != wantIDs[i] {
			t.Errorf("position %d: block ID = %d, want %d", i, b.ID, wantIDs[i])
		}
	}
}

func TestOrder_GapFreePermutation(t *testing.T) {
	a := NewAssembler()
	blocks := []*model.Block{
		{ID: 0, BBox: model.NewBBox(50, 90, 10, 10)},
		{ID: 1, BBox: model.NewBBox(50, 10, 10, 10)},
		{ID: 2, BBox: model.NewBBox(50, 50, 10, 10)},
	}

	ordered := a.Order(blocks)
	seen := make([]bool, len(ordered))
	for _, b := range ordered {
		if b.ReadingOrder < 0 || b.ReadingOrder >= len(ordered) {
			t.Fatalf("ReadingOrder %d out of range", b.ReadingOrder)
		}
		if seen[b.ReadingOrder] {
			t.Fatalf("ReadingOrder %d assigned twice", b.ReadingOrder)
		}
		seen[b.ReadingOrder] = true
	}
	for i, s := range seen {
		if !s {
			t.Errorf("ReadingOrder %d missing", i)
		}
	}
}

func TestOrder_TieBrokenByID(t *testing.T) {
	a := NewAssembler()
	same := model.NewBBox(10, 10, 100, 20)
	blocks := []*model.Block{
		{ID: 5, BBox: same},
		{ID: 2, BBox: same},
	}

	ordered := a.Order(blocks)
	if ordered[0].ID != 2 || ordered[1].ID != 5 {
		t.Errorf("tie order = [%d %d], want [2 5]", ordered[0].ID, ordered[1].ID)
	}
}

func TestAssemble_PopulatesCells(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)
	blocks := []*model.Block{
		{
			ID:   0,
			Type: model.BlockTitle,
			BBox: model.NewBBox(0, 0, 100, 10),
			Runs: []model.GlyphRun{
				{Text: "Hi", BBox: model.NewBBox(0, 0, 20, 10), FontSize: 10},
			},
		},
	}

	m := a.Assemble(page, blocks)

	if got := m.At(0, 0).Char; got != 'H' {
		t.Errorf("cell (0,0) = %q, want 'H'", got)
	}
	if got := m.At(0, 1).Char; got != 'i' {
		t.Errorf("cell (0,1) = %q, want 'i'", got)
	}
	if got := m.At(0, 0).BlockID; got != 0 {
		t.Errorf("cell (0,0) BlockID = %d, want 0", got)
	}
	if len(page.Blocks) != 1 {
		t.Fatalf("page has %d blocks, want 1", len(page.Blocks))
	}
}

func TestAssemble_EmptyPage(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)

	m := a.Assemble(page, nil)
	if m.Rows != 1 || m.Cols != 1 {
		t.Errorf("empty page matrix = %dx%d, want 1x1", m.Rows, m.Cols)
	}
	if !m.At(0, 0).IsBlank() {
		t.Error("empty page cell not blank")
	}
}

func TestAssemble_CollisionPrefersLargerFont(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)
	// Both runs project to cell (0,0); the 20pt run must win even though it
	// comes later in reading order. Unit is 10 (smallest font).
	blocks := []*model.Block{
		{
			ID:   0,
			Type: model.BlockParagraph,
			BBox: model.NewBBox(0, 0, 50, 10),
			Runs: []model.GlyphRun{
				{Text: "a", BBox: model.NewBBox(0, 0, 10, 10), FontSize: 10},
			},
		},
		{
			ID:   1,
			Type: model.BlockParagraph,
			BBox: model.NewBBox(0, 2, 50, 20),
			Runs: []model.GlyphRun{
				{Text: "B", BBox: model.NewBBox(2, 3, 20, 20), FontSize: 20},
			},
		},
	}

	m := a.Assemble(page, blocks)
	if got := m.At(0, 0).Char; got != 'B' {
		t.Errorf("cell (0,0) = %q, want 'B' (larger font wins)", got)
	}
}

func TestAssemble_CollisionEqualFontsKeepsEarlierRun(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)
	blocks := []*model.Block{
		{
			ID:   0,
			Type: model.BlockParagraph,
			BBox: model.NewBBox(0, 0, 50, 10),
			Runs: []model.GlyphRun{
				{Text: "a", BBox: model.NewBBox(0, 0, 10, 10), FontSize: 10},
				{Text: "z", BBox: model.NewBBox(3, 3, 10, 10), FontSize: 10},
			},
		},
	}

	m := a.Assemble(page, blocks)
	if got := m.At(0, 0).Char; got != 'a' {
		t.Errorf("cell (0,0) = %q, want 'a' (earlier run wins on equal font)", got)
	}
}

func TestAssemble_OverlappingRunsKeepPrecedence(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)
	blocks := []*model.Block{
		{
			ID:   0,
			Type: model.BlockParagraph,
			BBox: model.NewBBox(0, 0, 100, 10),
			Runs: []model.GlyphRun{
				{Text: "abc", BBox: model.NewBBox(0, 0, 30, 10), FontSize: 10},
				// Overlaps the first run's last cell; same font, so the
				// earlier run keeps the contested cell.
				{Text: "xyz", BBox: model.NewBBox(20, 0, 30, 10), FontSize: 10},
			},
		},
	}

	m := a.Assemble(page, blocks)
	if m.Cols != 5 {
		t.Fatalf("Cols = %d, want 5", m.Cols)
	}
	wantRow := "abcyz"
	for c := 0; c < m.Cols; c++ {
		if got := m.At(0, c).Char; got != rune(wantRow[c]) {
			t.Errorf("cell (0,%d) = %q, want %q", c, got, wantRow[c])
		}
	}
}

func TestAssemble_TableSubGrid(t *testing.T) {
	a := NewAssembler()
	page := model.NewPage(0, 612, 792, 1)
	// Four runs forming a 2x2 logical table. The second row's runs sit a
	// few points lower but within one visual band; x positions repeat.
	blocks := []*model.Block{
		{
			ID:   0,
			Type: model.BlockTable,
			BBox: model.NewBBox(0, 0, 200, 40),
			Runs: []model.GlyphRun{
				{Text: "name", BBox: model.NewBBox(0, 0, 40, 10), FontSize: 10},
				{Text: "qty", BBox: model.NewBBox(100, 1, 30, 10), FontSize: 10},
				{Text: "bolt", BBox: model.NewBBox(0, 20, 40, 10), FontSize: 10},
				{Text: "7", BBox: model.NewBBox(100, 21, 10, 10), FontSize: 10},
			},
		},
	}

	m := a.Assemble(page, blocks)

	// Column 0 is 4 runes wide, so column 1 starts at offset 5.
	checks := []struct {
		row, col int
		want     rune
	}{
		{0, 0, 'n'}, {0, 5, 'q'},
		{1, 0, 'b'}, {1, 5, '7'},
	}
	for _, chk := range checks {
		if !m.InBounds(chk.row, chk.col) {
			t.Fatalf("cell (%d,%d) out of bounds for %dx%d matrix", chk.row, chk.col, m.Rows, m.Cols)
		}
		got := m.At(chk.row, chk.col)
		if got.Char != chk.want {
			t.Errorf("cell (%d,%d) = %q, want %q", chk.row, chk.col, got.Char, chk.want)
		}
		if got.Flags&model.FlagTableCell == 0 {
			t.Errorf("cell (%d,%d) missing table flag", chk.row, chk.col)
		}
	}
}

func TestClusterValues(t *testing.T) {
	// 0.0 and 0.3 cluster together at tolerance 0.5; 5.0 is separate.
	clusterOf, count := clusterValues([]float64{5.0, 0.0, 0.3}, 0.5)

	if count != 2 {
		t.Fatalf("cluster count = %d, want 2", count)
	}
	if clusterOf[1] != clusterOf[2] {
		t.Errorf("values 0.0 and 0.3 in clusters %d and %d, want same", clusterOf[1], clusterOf[2])
	}
	if clusterOf[0] == clusterOf[1] {
		t.Error("value 5.0 clustered with 0.0, want separate")
	}
	if clusterOf[1] != 0 || clusterOf[0] != 1 {
		t.Errorf("cluster indices not ascending by position: %v", clusterOf)
	}
}

func TestClusterValues_Empty(t *testing.T) {
	clusterOf, count := clusterValues(nil, 0.5)
	if clusterOf != nil || count != 0 {
		t.Errorf("clusterValues(nil) = (%v, %d), want (nil, 0)", clusterOf, count)
	}
}
