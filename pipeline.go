package fusegrid

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tsawler/fusegrid/assemble"
	"github.com/tsawler/fusegrid/fusion"
	"github.com/tsawler/fusegrid/grid"
	"github.com/tsawler/fusegrid/model"
)

// pageResult holds one processed page, or the reason it failed.
type pageResult struct {
	index    int
	page     *model.Page
	matrix   *model.Matrix
	warnings []Warning
	err      error
}

// Document fuses the selected pages and returns the assembled document.
// Pages are processed concurrently up to the configured parallelism and
// merged in ascending page order. Per-page collaborator failures degrade
// the affected page and surface as warnings; only context cancellation and
// setup failures abort the run.
func (p *Pipeline) Document(ctx context.Context) (*model.Document, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if p.src == nil {
		return nil, nil, fmt.Errorf("no source specified")
	}

	indexes, warnings := p.pageIndexes(p.src.PageCount())

	results := make([]pageResult, len(indexes))
	sem := make(chan struct{}, p.options.parallelism)
	var wg sync.WaitGroup

	for i, pageIndex := range indexes {
		wg.Add(1)
		go func(slot, pageIndex int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				results[slot] = pageResult{index: pageIndex, err: err}
				return
			}
			results[slot] = p.processPage(ctx, pageIndex)
		}(i, pageIndex)
	}
	wg.Wait()

	doc := model.NewDocument()
	for _, res := range results {
		if res.err != nil {
			return nil, nil, res.err
		}
		doc.AddPage(res.page, res.matrix)
		warnings = append(warnings, res.warnings...)
	}
	return doc, warnings, nil
}

// Page fuses a single page and returns it with its matrix. Unlike Document,
// an out-of-range index is an error here rather than a warning.
func (p *Pipeline) Page(ctx context.Context, pageIndex int) (*model.Page, *model.Matrix, []Warning, error) {
	if p.err != nil {
		return nil, nil, nil, p.err
	}
	if p.src == nil {
		return nil, nil, nil, fmt.Errorf("no source specified")
	}
	if total := p.src.PageCount(); pageIndex < 0 || pageIndex >= total {
		return nil, nil, nil, fmt.Errorf("page %d out of range (document has %d pages)", pageIndex, total)
	}

	res := p.processPage(ctx, pageIndex)
	if res.err != nil {
		return nil, nil, nil, res.err
	}
	return res.page, res.matrix, res.warnings, nil
}

// pageIndexes resolves the page selection against the document size,
// returning ascending deduplicated indexes plus warnings for any selected
// page that does not exist.
func (p *Pipeline) pageIndexes(total int) ([]int, []Warning) {
	if p.options.pages == nil {
		indexes := make([]int, total)
		for i := range indexes {
			indexes[i] = i
		}
		return indexes, nil
	}

	var warnings []Warning
	seen := make(map[int]bool)
	var indexes []int
	for _, pageIndex := range p.options.pages {
		if pageIndex < 0 || pageIndex >= total {
			warnings = append(warnings, warnf(-1, "pages",
				"page %d out of range (document has %d pages)", pageIndex, total))
			continue
		}
		if !seen[pageIndex] {
			seen[pageIndex] = true
			indexes = append(indexes, pageIndex)
		}
	}
	sort.Ints(indexes)
	return indexes, warnings
}

// processPage runs the full per-page pipeline: size, raster, detect,
// extract, fuse, assemble. Collaborator failures degrade the page with a
// warning; only context cancellation is returned as an error.
func (p *Pipeline) processPage(ctx context.Context, pageIndex int) pageResult {
	res := pageResult{index: pageIndex}

	width, height, err := p.src.PageSize(pageIndex)
	if err != nil {
		if ctx.Err() != nil {
			res.err = ctx.Err()
			return res
		}
		res.warnings = append(res.warnings, warnf(pageIndex, "size", "%v", err))
		width, height = 0, 0
	}

	pixelsPerPoint := 1.0
	var regions []model.Region
	if p.detector != nil {
		raster, err := p.src.Raster(ctx, pageIndex)
		if err != nil {
			if ctx.Err() != nil {
				res.err = ctx.Err()
				return res
			}
			res.warnings = append(res.warnings, warnf(pageIndex, "raster", "%v", err))
		} else {
			if raster.PixelsPerPoint > 0 {
				pixelsPerPoint = raster.PixelsPerPoint
			}
			regions, err = p.detector.Detect(ctx, raster)
			if err != nil {
				if ctx.Err() != nil {
					res.err = ctx.Err()
					return res
				}
				res.warnings = append(res.warnings, warnf(pageIndex, "detect", "%v", err))
				regions = nil
			}
		}
	}

	runs, err := p.src.Runs(ctx, pageIndex)
	if err != nil {
		if ctx.Err() != nil {
			res.err = ctx.Err()
			return res
		}
		res.warnings = append(res.warnings, warnf(pageIndex, "extract", "%v", err))
		runs = nil
	}

	page := model.NewPage(pageIndex, width, height, pixelsPerPoint)

	engine := fusion.NewEngineWithConfig(p.options.fusion)
	blocks := engine.Fuse(fusion.Input{
		PageIndex:    pageIndex,
		Regions:      regions,
		Runs:         runs,
		RegionToPage: page.PixelTransform,
		RunToPage:    page.PointTransform,
	})

	assembler := assemble.NewAssemblerWithConfig(p.options.assemble, grid.NewBuilderWithConfig(p.options.grid))
	res.page = page
	res.matrix = assembler.Assemble(page, blocks)
	return res
}
