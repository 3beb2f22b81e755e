package source

import (
	"context"
	"image"

	"github.com/tsawler/fusegrid/model"
)

// PageRaster is one page rendered to pixels, with the scale needed to build
// the page's pixel-to-page transform.
type PageRaster struct {
	PageIndex int
	Image     image.Image

	// PixelsPerPoint is the raster scale: how many image pixels cover one
	// PDF point.
	PixelsPerPoint float64
}

// Document reports page-level metadata for a source document.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageSize returns a page's width and height in points.
	PageSize(pageIndex int) (width, height float64, err error)
}

// Rasterizer renders pages to pixels for the vision detector.
type Rasterizer interface {
	Raster(ctx context.Context, pageIndex int) (PageRaster, error)
}

// RunExtractor produces a page's glyph runs with bounding boxes in
// PDF-point space (origin bottom-left, Y up).
type RunExtractor interface {
	Runs(ctx context.Context, pageIndex int) ([]model.GlyphRun, error)
}

// RegionDetector proposes semantic regions for a rasterized page, with
// bounding boxes in image-pixel space.
type RegionDetector interface {
	Detect(ctx context.Context, raster PageRaster) ([]model.Region, error)
}

// Source is the combined collaborator surface the pipeline drives: page
// metadata, rasterization, and run extraction from one document.
type Source interface {
	Document
	Rasterizer
	RunExtractor
}
