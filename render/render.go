// Package render produces read-only previews of a fused page matrix, as
// plain text or as a minimal HTML table. Previews are for inspection and
// debugging; editing always goes through an editor session.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/fusegrid/model"
)

// Text renders a matrix as plain text, one line per row. Trailing blanks on
// each row are trimmed; interior blanks are kept so column alignment
// survives.
func Text(m *model.Matrix) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for r := 0; r < m.Rows; r++ {
		chars := make([]rune, m.Cols)
		for c, cell := range m.Row(r) {
			chars[c] = cell.Char
		}
		sb.WriteString(strings.TrimRight(string(chars), string(model.Blank)))
		if r < m.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// HTML renders a matrix as a single HTML table, one <td> per cell. Cells
// that belong to a block carry a data-block attribute with the block ID;
// table cells additionally carry class="table-cell". Blank unowned cells
// render as non-breaking spaces so the grid keeps its shape.
func HTML(m *model.Matrix) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	if m != nil {
		for r := 0; r < m.Rows; r++ {
			sb.WriteString("<tr>")
			for c := 0; c < m.Cols; c++ {
				writeCell(&sb, m.At(r, c))
			}
			sb.WriteString("</tr>\n")
		}
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

func writeCell(sb *strings.Builder, cell model.Cell) {
	sb.WriteString("<td")
	if cell.BlockID != model.NoBlock {
		fmt.Fprintf(sb, ` data-block="%d"`, cell.BlockID)
	}
	if cell.Flags&model.FlagTableCell != 0 {
		sb.WriteString(` class="table-cell"`)
	}
	sb.WriteByte('>')
	if cell.Char == model.Blank {
		sb.WriteString("&nbsp;")
	} else {
		sb.WriteString(html.EscapeString(string(cell.Char)))
	}
	sb.WriteString("</td>")
}

// Blocks renders a page's blocks in reading order as plain text, with a
// blank line between blocks. It is the block-level counterpart to Text,
// useful when the matrix layout is not needed.
func Blocks(page *model.Page) string {
	if page == nil {
		return ""
	}
	return page.Text()
}
