package model

// BlockType represents the semantic type of a fused block.
type BlockType int

const (
	BlockUnclassified BlockType = iota
	BlockTitle
	BlockHeading
	BlockParagraph
	BlockTable
	// BlockOther is an escape hatch for detector types outside the closed
	// set; the tag travels on Region.OtherTag / Block.OtherTag.
	BlockOther
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTitle:
		return "Title"
	case BlockHeading:
		return "Heading"
	case BlockParagraph:
		return "Paragraph"
	case BlockTable:
		return "Table"
	case BlockOther:
		return "Other"
	default:
		return "Unclassified"
	}
}

// Region is a vision detector's proposed bounding box and semantic type for
// part of a page. The bounding box is in image-pixel space; the fusion engine
// maps it into page space through the page's pixel transform.
type Region struct {
	BBox       BBox
	Type       BlockType
	OtherTag   string  // set when Type == BlockOther
	Confidence float64 // detector confidence in [0, 1]
}

// GlyphRun is a contiguous span of extracted text sharing one bounding box
// and font-size hint. The bounding box is in PDF-point space; the fusion
// engine maps it into page space through the page's point transform.
// GlyphRuns are read-only inputs and are never mutated after extraction.
type GlyphRun struct {
	Text     string
	BBox     BBox
	FontSize float64
}

// Block is a semantically labeled group of glyph runs forming one logical
// document unit. Blocks are built once by fusion and assembly and never
// mutated afterward. All member runs and the bounding box belong to a single
// page.
type Block struct {
	ID       int
	Type     BlockType
	OtherTag string

	// BBox is the block's bounding box in page space.
	BBox BBox

	// Runs are the member glyph runs in source order, with bounding boxes
	// already mapped into page space.
	Runs []GlyphRun

	// Confidence is the length-weighted average of the detector confidences
	// of the member runs' source regions.
	Confidence float64

	// ReadingOrder is the block's index in the page's reading sequence,
	// assigned by the assembler. Within a page the indices form a gap-free
	// permutation of [0, blockCount).
	ReadingOrder int

	// PageIndex is the zero-based index of the owning page.
	PageIndex int
}

// Text concatenates the member runs' text in source order, separated by
// spaces.
func (b *Block) Text() string {
	var out string
	for i, r := range b.Runs {
		if i > 0 {
			out += " "
		}
		out += r.Text
	}
	return out
}
