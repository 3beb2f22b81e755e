// Package fusegrid reconciles two views of a document page, vision-detected
// semantic regions and extracted text glyph runs, into typed blocks with a
// reading order, and projects each page onto a character matrix that can be
// edited interactively.
//
// Basic usage:
//
//	src, err := fitz.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	doc, warnings, err := fusegrid.From(src).Document(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", fusegrid.FormatWarnings(warnings))
//	}
//
// With a vision detector and options:
//
//	doc, _, err := fusegrid.From(src).
//	    Detector(det).
//	    Pages(0, 1, 2).
//	    MinIoU(0.1).
//	    Document(ctx)
//
// Editing a fused page goes through the editor package:
//
//	session := editor.NewSession(doc.GetPage(0), doc.GetMatrix(0))
//
// For advanced use cases, the lower-level fusion, grid, assemble, and
// source packages are also available.
package fusegrid

import (
	"github.com/tsawler/fusegrid/source"
)

// From creates a Pipeline over an open source document. Without a detector
// every run lands in a synthetic Unclassified block per page; attach one via
// Detector to get typed blocks.
//
// The pipeline does not own the source; the caller closes it.
func From(src source.Source) *Pipeline {
	return &Pipeline{
		src:     src,
		options: defaultPipelineOptions(),
	}
}

// Pipeline provides a fluent interface for fusing a document. Each
// configuration method returns a new Pipeline instance, making it safe for
// concurrent use and allowing method chaining.
type Pipeline struct {
	src      source.Source
	detector source.RegionDetector

	options PipelineOptions

	// Accumulated error (fail-fast).
	err error
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		src:      p.src,
		detector: p.detector,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// Detector attaches a vision region detector. Pages are rasterized and
// handed to it; if it fails on a page, that page degrades to Unclassified
// blocks with a warning.
func (p *Pipeline) Detector(det source.RegionDetector) *Pipeline {
	newPipe := p.clone()
	newPipe.detector = det
	return newPipe
}

// Pages restricts the run to specific pages (0-indexed). Multiple calls are
// cumulative. Out-of-range indexes produce a warning and are skipped.
//
// Example:
//
//	doc, _, err := fusegrid.From(src).Pages(0, 2).Document(ctx)
func (p *Pipeline) Pages(pages ...int) *Pipeline {
	newPipe := p.clone()
	newPipe.options.pages = append(newPipe.options.pages, pages...)
	return newPipe
}

// MinIoU sets the minimum intersection-over-union for a run to join a
// region. Values at or above the threshold (and strictly above zero) assign;
// anything else leaves the run Unclassified.
func (p *Pipeline) MinIoU(threshold float64) *Pipeline {
	newPipe := p.clone()
	newPipe.options.fusion.MinIoU = threshold
	return newPipe
}

// Parallelism caps how many pages are processed concurrently. Values below 1
// are treated as 1.
func (p *Pipeline) Parallelism(n int) *Pipeline {
	newPipe := p.clone()
	if n < 1 {
		n = 1
	}
	newPipe.options.parallelism = n
	return newPipe
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	doc := fusegrid.MustResult(fusegrid.From(src).Document(ctx))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
