// Package source defines the contracts for the external collaborators the
// fusion pipeline consumes: a page rasterizer, a vision region detector,
// and a glyph-run extractor.
//
// The core imposes no timeout policy on collaborators; calls take a
// context.Context so the caller can cancel work when the host document is
// closed or replaced, and implementations are expected to honor it.
//
// Concrete adapters live in subpackages: source/fitz wraps MuPDF via
// go-fitz for rasterization and run extraction, and source/detect wraps
// Tesseract for region detection (behind the "ocr" build tag).
package source
