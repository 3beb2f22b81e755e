package model

// Page represents a single fused page. It is immutable once built: the block
// list is assembled exactly once per extraction pass and later edits never
// touch it.
type Page struct {
	Index  int     // zero-based page index
	Width  float64 // page width in points
	Height float64 // page height in points

	// Blocks in reading order.
	Blocks []*Block

	// PixelToPage maps image-pixel space into page space for this page.
	PixelTransform Affine

	// PointToPage maps PDF-point space into page space for this page.
	PointTransform Affine
}

// NewPage creates a page with its per-page coordinate transforms computed
// once from the page dimensions and raster scale.
func NewPage(index int, width, height, pixelsPerPoint float64) *Page {
	return &Page{
		Index:          index,
		Width:          width,
		Height:         height,
		PixelTransform: PixelToPage(pixelsPerPoint),
		PointTransform: PointToPage(height),
	}
}

// BlockByID returns the block with the given id, or nil.
func (p *Page) BlockByID(id int) *Block {
	for _, b := range p.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BlocksOfType returns the page's blocks of the given type, in reading order.
func (p *Page) BlocksOfType(bt BlockType) []*Block {
	var out []*Block
	for _, b := range p.Blocks {
		if b.Type == bt {
			out = append(out, b)
		}
	}
	return out
}

// Text concatenates block text in reading order, one block per line.
func (p *Page) Text() string {
	var out string
	for _, b := range p.Blocks {
		out += b.Text() + "\n"
	}
	return out
}
