package fusegrid

import (
	"github.com/tsawler/fusegrid/assemble"
	"github.com/tsawler/fusegrid/fusion"
	"github.com/tsawler/fusegrid/grid"
)

// PipelineOptions holds configuration for a fusion run.
type PipelineOptions struct {
	// Page selection (0-indexed). nil means all pages.
	pages []int

	// Per-stage configuration.
	fusion   fusion.Config
	grid     grid.Config
	assemble assemble.Config

	// Maximum number of pages processed concurrently.
	parallelism int
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		pages:       nil,
		fusion:      fusion.DefaultConfig(),
		grid:        grid.DefaultConfig(),
		assemble:    assemble.DefaultConfig(),
		parallelism: 4,
	}
}

// clone creates a deep copy of PipelineOptions.
func (o PipelineOptions) clone() PipelineOptions {
	newOpts := PipelineOptions{
		fusion:      o.fusion,
		grid:        o.grid,
		assemble:    o.assemble,
		parallelism: o.parallelism,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
