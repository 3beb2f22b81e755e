package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/fusegrid/model"
)

func testMatrix() *model.Matrix {
	m := model.NewMatrix(0, 2, 5)
	for c, ch := range "hi<b" {
		m.Set(0, c, model.Cell{Char: ch, BlockID: 0})
	}
	m.Set(1, 0, model.Cell{Char: '7', BlockID: 1, Flags: model.FlagTableCell})
	return m
}

func TestText(t *testing.T) {
	got := Text(testMatrix())
	want := "hi<b\n7"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestText_Nil(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want \"\"", got)
	}
}

func TestText_KeepsInteriorBlanks(t *testing.T) {
	m := model.NewMatrix(0, 1, 5)
	m.SetChar(0, 0, 'a')
	m.SetChar(0, 2, 'b')
	if got := Text(m); got != "a b" {
		t.Errorf("Text() = %q, want \"a b\"", got)
	}
}

func TestHTML(t *testing.T) {
	out := HTML(testMatrix())

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}

	var rows, cells, tableCells, owned int
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "tr":
				rows++
			case "td":
				cells++
				for _, a := range n.Attr {
					if a.Key == "class" && a.Val == "table-cell" {
						tableCells++
					}
					if a.Key == "data-block" {
						owned++
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if rows != 2 {
		t.Errorf("rendered %d rows, want 2", rows)
	}
	if cells != 10 {
		t.Errorf("rendered %d cells, want 10", cells)
	}
	if tableCells != 1 {
		t.Errorf("rendered %d table cells, want 1", tableCells)
	}
	if owned != 5 {
		t.Errorf("rendered %d owned cells, want 5", owned)
	}
}

func TestHTML_EscapesContent(t *testing.T) {
	out := HTML(testMatrix())
	if !strings.Contains(out, "&lt;") {
		t.Errorf("HTML() did not escape '<': %q", out)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("HTML() leaked raw markup: %q", out)
	}
}

func TestHTML_Nil(t *testing.T) {
	out := HTML(nil)
	if !strings.Contains(out, "<table>") || strings.Contains(out, "<td") {
		t.Errorf("HTML(nil) = %q, want an empty table", out)
	}
}
