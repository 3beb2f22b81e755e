package editor

import (
	"testing"

	"github.com/tsawler/fusegrid/model"
)

func TestCopy_SingleCell(t *testing.T) {
	s := testSession()
	s.SelectCell(Pos{Row: 0, Col: 1})

	if got := s.Copy(); got != "e" {
		t.Errorf("Copy() = %q, want \"e\"", got)
	}
}

func TestCopy_RangeRowMajor(t *testing.T) {
	s := testSession()
	s.SelectRange(Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}})

	if got := s.Copy(); got != "hel\n   " {
		t.Errorf("Copy() = %q, want \"hel\\n   \"", got)
	}
}

func TestCopy_NoSelection(t *testing.T) {
	s := testSession()
	if got := s.Copy(); got != "" {
		t.Errorf("Copy() in Idle = %q, want \"\"", got)
	}
}

func TestCopyPaste_RoundTrip(t *testing.T) {
	s := testSession()
	before := s.matrix.Clone()

	origin := Pos{Row: 0, Col: 0}
	s.SelectRange(Range{Start: origin, End: Pos{Row: 1, Col: 4}})
	s.Copy()

	// Pasting the copied range back at the same origin must reproduce the
	// original contents exactly.
	s.PasteText(origin, s.Clipboard())
	if !s.matrix.Equal(before) {
		t.Error("copy-then-paste at the same origin changed the matrix")
	}
}

func TestPaste_WritesFromCursor(t *testing.T) {
	s := testSession()
	s.SelectCell(Pos{Row: 2, Col: 1})

	touched := s.PasteText(s.Cursor(), "ab\ncd")
	if len(touched) != 4 {
		t.Fatalf("touched %d cells, want 4", len(touched))
	}
	checks := []struct {
		row, col int
		want     rune
	}{
		{2, 1, 'a'}, {2, 2, 'b'},
		{3, 1, 'c'}, {3, 2, 'd'},
	}
	for _, chk := range checks {
		if got := s.matrix.At(chk.row, chk.col).Char; got != chk.want {
			t.Errorf("cell (%d,%d) = %q, want %q", chk.row, chk.col, got, chk.want)
		}
	}
}

func TestPaste_TruncatesRowsAndColumns(t *testing.T) {
	s := testSession() // 4x6
	// One row left below the cursor; five characters but only two columns
	// remain. Both axes truncate, nothing wraps.
	touched := s.PasteText(Pos{Row: 3, Col: 4}, "abcde\nfghij")

	if len(touched) != 2 {
		t.Fatalf("touched %d cells, want 2", len(touched))
	}
	if got := s.matrix.At(3, 4).Char; got != 'a' {
		t.Errorf("cell (3,4) = %q, want 'a'", got)
	}
	if got := s.matrix.At(3, 5).Char; got != 'b' {
		t.Errorf("cell (3,5) = %q, want 'b'", got)
	}
	// The second pasted row fell off the bottom edge entirely.
	for c := 0; c < 4; c++ {
		if got := s.matrix.At(3, c).Char; got != model.Blank {
			t.Errorf("cell (3,%d) = %q, want blank", c, got)
		}
	}
}

func TestPaste_OutOfBoundsOriginNoOp(t *testing.T) {
	s := testSession()
	before := s.matrix.Clone()

	if touched := s.PasteText(Pos{Row: 10, Col: 0}, "abc"); touched != nil {
		t.Errorf("out-of-bounds paste touched %+v, want nil", touched)
	}
	if !s.matrix.Equal(before) {
		t.Error("out-of-bounds paste changed the matrix")
	}
}

func TestPaste_Undoable(t *testing.T) {
	s := testSession()
	before := s.matrix.Clone()

	s.PasteText(Pos{Row: 1, Col: 0}, "xyz")
	if s.matrix.Equal(before) {
		t.Fatal("paste had no effect")
	}

	s.Undo()
	if !s.matrix.Equal(before) {
		t.Error("undo did not revert the paste")
	}
}

func TestPaste_CRLFSplit(t *testing.T) {
	s := testSession()
	s.PasteText(Pos{Row: 1, Col: 0}, "ab\r\ncd")

	if got := s.matrix.At(2, 0).Char; got != 'c' {
		t.Errorf("cell (2,0) = %q, want 'c' (CRLF handled as one break)", got)
	}
}
