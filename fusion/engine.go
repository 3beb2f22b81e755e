package fusion

import (
	"unicode/utf8"

	"github.com/tsawler/fusegrid/model"
)

// Config holds configuration options for the fusion engine.
type Config struct {
	// MinIoU is the minimum intersection-over-union overlap a region must
	// reach for a run to be assigned to it. Runs below the threshold for
	// every region become Unclassified.
	MinIoU float64

	// UnclassifiedConfidence is the confidence reported for the synthetic
	// Unclassified block.
	UnclassifiedConfidence float64
}

// DefaultConfig returns the default fusion configuration.
func DefaultConfig() Config {
	return Config{
		MinIoU:                 0.05,
		UnclassifiedConfidence: 0,
	}
}

// Input carries one page's fusion inputs. Both bounding-box sets are mapped
// into page space through the supplied transforms, computed once per page.
type Input struct {
	PageIndex int

	// Regions from the vision detector, boxes in image-pixel space.
	Regions []model.Region

	// Runs from the text extractor, boxes in PDF-point space.
	Runs []model.GlyphRun

	// RegionToPage maps region boxes into page space.
	RegionToPage model.Affine

	// RunToPage maps run boxes into page space.
	RunToPage model.Affine
}

// Engine assigns glyph runs to regions and emits fused blocks.
type Engine struct {
	config Config
}

// NewEngine creates a fusion engine with default configuration.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates a fusion engine with custom configuration.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Fuse assigns every run in the input to exactly one block and returns the
// blocks in region-index order, with the synthetic Unclassified block (if
// any) last. Block ids are sequential from 0. The function is pure: it reads
// only its input and is safe to call for independent pages in parallel.
func (e *Engine) Fuse(in Input) []*model.Block {
	// Map everything into page space once.
	regionBoxes := make([]model.BBox, len(in.Regions))
	for i, reg := range in.Regions {
		regionBoxes[i] = in.RegionToPage.ApplyBBox(reg.BBox)
	}
	pageRuns := make([]model.GlyphRun, len(in.Runs))
	for i, run := range in.Runs {
		pageRuns[i] = model.GlyphRun{
			Text:     run.Text,
			BBox:     in.RunToPage.ApplyBBox(run.BBox),
			FontSize: run.FontSize,
		}
	}

	// assignment[i] is the region index for run i, or -1 for Unclassified.
	assignment := make([]int, len(pageRuns))
	for i, run := range pageRuns {
		assignment[i] = e.assign(run.BBox, regionBoxes)
	}

	// Accumulate runs into blocks in (region, run) index order.
	var blocks []*model.Block
	for regIdx, reg := range in.Regions {
		var members []model.GlyphRun
		for runIdx, target := range assignment {
			if target == regIdx {
				members = append(members, pageRuns[runIdx])
			}
		}
		if len(members) == 0 {
			// A region nothing maps to yields no block.
			continue
		}

		bbox := regionBoxes[regIdx]
		for _, m := range members {
			bbox = bbox.Union(m.BBox)
		}

		blocks = append(blocks, &model.Block{
			ID:         len(blocks),
			Type:       reg.Type,
			OtherTag:   reg.OtherTag,
			BBox:       bbox,
			Runs:       members,
			Confidence: weightedConfidence(members, in.Regions[regIdx].Confidence),
			PageIndex:  in.PageIndex,
		})
	}

	// Leftover runs join one synthetic Unclassified block.
	var orphans []model.GlyphRun
	for runIdx, target := range assignment {
		if target < 0 {
			orphans = append(orphans, pageRuns[runIdx])
		}
	}
	if len(orphans) > 0 {
		bbox := orphans[0].BBox
		for _, m := range orphans[1:] {
			bbox = bbox.Union(m.BBox)
		}
		blocks = append(blocks, &model.Block{
			ID:         len(blocks),
			Type:       model.BlockUnclassified,
			BBox:       bbox,
			Runs:       orphans,
			Confidence: e.config.UnclassifiedConfidence,
			PageIndex:  in.PageIndex,
		})
	}

	return blocks
}

// assign returns the index of the region with maximal IoU against the run
// box, or -1 when no region reaches the threshold. Ties keep the lowest
// region index because only a strictly greater IoU displaces the incumbent.
func (e *Engine) assign(runBox model.BBox, regionBoxes []model.BBox) int {
	best := -1
	bestIoU := 0.0
	for i, regBox := range regionBoxes {
		iou := runBox.IoU(regBox)
		if iou <= 0 || iou < e.config.MinIoU {
			continue
		}
		if iou > bestIoU {
			best = i
			bestIoU = iou
		}
	}
	return best
}

// weightedConfidence computes the rune-length-weighted average of the source
// region confidence across member runs. With a single source region the
// average collapses to that region's confidence, but the weighting matters
// once assembly merges blocks or callers recompute over mixed members.
func weightedConfidence(members []model.GlyphRun, regionConfidence float64) float64 {
	total := 0
	for _, m := range members {
		total += runeLen(m.Text)
	}
	if total == 0 {
		return regionConfidence
	}
	weighted := 0.0
	for _, m := range members {
		weighted += regionConfidence * float64(runeLen(m.Text))
	}
	return weighted / float64(total)
}

func runeLen(s string) int {
	n := utf8.RuneCountInString(s)
	if n < 1 {
		return 1
	}
	return n
}
