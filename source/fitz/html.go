package fitz

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/fusegrid/model"
)

// defaultFontSize is assumed when a span carries no font-size style.
const defaultFontSize = 12.0

// averageAdvance estimates a glyph's horizontal advance as a fraction of
// the font size, for run widths MuPDF's HTML output does not report.
const averageAdvance = 0.5

// parseRuns converts MuPDF positioned-HTML output for one page into glyph
// runs. MuPDF emits absolutely placed paragraphs:
//
//	<p style="top:70.1pt;left:72.0pt;line-height:11.5pt">
//	  <span style="font-family:...;font-size:9.6pt">Some text</span>
//	</p>
//
// Positions are top-left origin with Y down; the returned runs are flipped
// into PDF-point space (Y up) using the page height so the standard
// point-to-page transform applies downstream.
func parseRuns(pageHTML string, pageHeight float64) []model.GlyphRun {
	var runs []model.GlyphRun

	z := html.NewTokenizer(strings.NewReader(pageHTML))
	var top, left, lineHeight float64
	var fontSize float64
	inPara := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			return runs

		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "p":
				style := attrValue(tok, "style")
				top = styleValue(style, "top")
				left = styleValue(style, "left")
				lineHeight = styleValue(style, "line-height")
				fontSize = 0
				inPara = true
			case "span":
				if fs := styleValue(attrValue(tok, "style"), "font-size"); fs > 0 {
					fontSize = fs
				}
			}

		case html.EndTagToken:
			if z.Token().Data == "p" {
				inPara = false
			}

		case html.TextToken:
			if !inPara {
				continue
			}
			text := strings.TrimSpace(string(z.Text()))
			if text == "" {
				continue
			}
			size := fontSize
			if size <= 0 {
				size = lineHeight
			}
			if size <= 0 {
				size = defaultFontSize
			}
			width := float64(len([]rune(text))) * size * averageAdvance

			// Flip top-left-origin coordinates into PDF-point space.
			y := pageHeight - top - size
			runs = append(runs, model.GlyphRun{
				Text:     text,
				BBox:     model.NewBBox(left, y, width, size),
				FontSize: size,
			})
			// Successive spans on one line advance past each other.
			left += width
		}
	}
}

// attrValue returns the value of the named attribute, or "".
func attrValue(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// styleValue extracts a "key:123.4pt" numeric value from an inline style
// declaration, returning 0 when the key is absent or malformed.
func styleValue(style, key string) float64 {
	for _, decl := range strings.Split(style, ";") {
		k, v, found := strings.Cut(decl, ":")
		if !found || strings.TrimSpace(k) != key {
			continue
		}
		v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "pt"))
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
