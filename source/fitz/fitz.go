// Package fitz adapts MuPDF (via go-fitz) as the pipeline's rasterizer and
// glyph-run extractor.
//
// Run extraction parses MuPDF's positioned-HTML output for a page, which
// carries absolute top/left placement and font sizes for each text span.
// Span widths are not reported, so run widths are estimated from the font
// size; the estimate only needs to be good enough for IoU assignment, not
// for rendering.
package fitz

import (
	"context"
	"fmt"
	"sync"

	"github.com/gen2brain/go-fitz"

	"github.com/tsawler/fusegrid/model"
	"github.com/tsawler/fusegrid/source"
)

// Config holds configuration options for the adapter.
type Config struct {
	// DPI is the raster resolution handed to the vision detector.
	DPI float64
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{DPI: 150}
}

// Reader adapts one open document. It implements [source.Source].
//
// MuPDF handles are not safe for concurrent use, so all calls serialize on
// an internal mutex; the pipeline's per-page parallelism still overlaps
// fusion work, just not MuPDF calls.
type Reader struct {
	mu     sync.Mutex
	doc    *fitz.Document
	config Config
}

// Open opens a document from a file path.
func Open(path string) (*Reader, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig opens a document with custom configuration.
func OpenWithConfig(path string, config Config) (*Reader, error) {
	if config.DPI <= 0 {
		config.DPI = DefaultConfig().DPI
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return &Reader{doc: doc, config: config}, nil
}

// OpenBytes opens a document from memory.
func OpenBytes(data []byte) (*Reader, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return &Reader{doc: doc, config: DefaultConfig()}, nil
}

// Close releases the underlying document.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Close()
}

// PageCount returns the number of pages.
func (r *Reader) PageCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.NumPage()
}

// PageSize returns a page's dimensions in points.
func (r *Reader) PageSize(pageIndex int) (float64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bound, err := r.doc.Bound(pageIndex)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read page %d bounds: %w", pageIndex, err)
	}
	return float64(bound.Dx()), float64(bound.Dy()), nil
}

// Raster renders a page at the configured DPI. The call honors context
// cancellation: rendering runs in a goroutine and an abandoned result is
// drained and discarded.
func (r *Reader) Raster(ctx context.Context, pageIndex int) (source.PageRaster, error) {
	type result struct {
		raster source.PageRaster
		err    error
	}
	ch := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		img, err := r.doc.ImageDPI(pageIndex, r.config.DPI)
		if err != nil {
			ch <- result{err: fmt.Errorf("failed to rasterize page %d: %w", pageIndex, err)}
			return
		}
		ch <- result{raster: source.PageRaster{
			PageIndex:      pageIndex,
			Image:          img,
			PixelsPerPoint: r.config.DPI / 72.0,
		}}
	}()

	select {
	case res := <-ch:
		return res.raster, res.err
	case <-ctx.Done():
		go func() { <-ch }()
		return source.PageRaster{}, ctx.Err()
	}
}

// Runs extracts a page's glyph runs in PDF-point space. The call honors
// context cancellation the same way Raster does.
func (r *Reader) Runs(ctx context.Context, pageIndex int) ([]model.GlyphRun, error) {
	type result struct {
		runs []model.GlyphRun
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		r.mu.Lock()
		pageHTML, err := r.doc.HTML(pageIndex, false)
		var bound = 0.0
		if err == nil {
			if b, berr := r.doc.Bound(pageIndex); berr == nil {
				bound = float64(b.Dy())
			}
		}
		r.mu.Unlock()

		if err != nil {
			ch <- result{err: fmt.Errorf("failed to extract page %d text: %w", pageIndex, err)}
			return
		}
		ch <- result{runs: parseRuns(pageHTML, bound)}
	}()

	select {
	case res := <-ch:
		return res.runs, res.err
	case <-ctx.Done():
		go func() { <-ch }()
		return nil, ctx.Err()
	}
}
