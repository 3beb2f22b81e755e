// Package fusion reconciles vision-detected regions with extracted glyph
// runs into semantically labeled blocks.
//
// The [Engine] maps both inputs into a common page-space frame through the
// page's affine transforms, assigns each glyph run to the region with the
// highest intersection-over-union overlap, and accumulates runs sharing a
// region into one block of the region's type. Runs with no region above the
// acceptance threshold collect into a single synthetic Unclassified block
// anchored to the union of their own bounding boxes.
//
//	engine := fusion.NewEngine()
//	blocks := engine.Fuse(fusion.Input{
//	    PageIndex:    0,
//	    Regions:      regions,
//	    Runs:         runs,
//	    RegionToPage: page.PixelTransform,
//	    RunToPage:    page.PointTransform,
//	})
//
// Fusion is deterministic: iteration order is fixed by (page, region, run)
// index and IoU ties break toward the lowest region index, so identical
// inputs always produce bit-identical block membership and confidence.
//
// The acceptance threshold and the Unclassified confidence are tunable
// through [Config]; the defaults (0.05 and 0) are calibration starting
// points, not measured constants.
package fusion
