package editor

import "strings"

// Copy serializes the current selection row-major into plain text, one line
// per row. A single-cell selection yields a one-character string. The result
// is also stored in the session's clipboard buffer for Paste. Returns ""
// outside a selection.
func (s *Session) Copy() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		for col := r.Start.Col; col <= r.End.Col; col++ {
			sb.WriteRune(s.matrix.At(row, col).Char)
		}
	}
	s.clip = sb.String()
	return s.clip
}

// Clipboard returns the session's clipboard buffer.
func (s *Session) Clipboard() string { return s.clip }

// Paste writes the clipboard buffer starting at the cursor. See PasteText.
func (s *Session) Paste() []Pos {
	return s.PasteText(s.cursor, s.clip)
}

// PasteText splits text on line breaks and writes characters starting at
// origin, overwriting existing cells without resizing the matrix.
// Characters past a row's right edge are truncated, not wrapped; rows past
// the matrix's bottom edge are dropped. An out-of-bounds origin is a no-op.
// Returns the positions of the cells it touched.
func (s *Session) PasteText(origin Pos, text string) []Pos {
	if text == "" || !s.matrix.InBounds(origin.Row, origin.Col) {
		return nil
	}

	var edits []cellEdit
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		row := origin.Row + i
		if row >= s.matrix.Rows {
			break
		}
		for j, ch := range []rune(line) {
			col := origin.Col + j
			if col >= s.matrix.Cols {
				break
			}
			before := s.matrix.At(row, col).Char
			if before == ch {
				continue
			}
			edits = append(edits, cellEdit{pos: Pos{Row: row, Col: col}, before: before, after: ch})
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
