// Package model defines the core data structures shared by all fusegrid
// components.
//
// # Coordinate spaces
//
// Three coordinate spaces are involved in fusing a page:
//
//   - Image-pixel space: output of the rasterizer and vision detector.
//     Origin top-left, Y increases downward.
//   - PDF-point space: output of the text extractor. Origin bottom-left,
//     Y increases upward.
//   - Page space: the canonical frame everything is reconciled into.
//     Measured in points, origin top-left, Y increases downward.
//
// Conversion between spaces is expressed with [Affine] transforms built once
// per page ([PixelToPage], [PointToPage]) and reused, never recomputed per
// comparison.
//
// # Structures
//
// [Region] and [GlyphRun] are the read-only per-page inputs. [Block] is the
// fused, semantically labeled group of glyph runs. [Matrix] is the per-page
// character grid of [Cell] values. [Document] collects pages and their
// matrices; separate per-page matrices guarantee no adjacency across page
// boundaries.
package model
