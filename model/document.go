package model

// Document represents a fully fused document: one page and one matrix per
// source page, in ascending page order.
type Document struct {
	Pages    []*Page
	Matrices []*Matrix
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages:    make([]*Page, 0),
		Matrices: make([]*Matrix, 0),
	}
}

// AddPage appends a page and its matrix. Pages must be added in ascending
// page order; the pipeline's merge barrier guarantees this.
func (d *Document) AddPage(page *Page, matrix *Matrix) {
	d.Pages = append(d.Pages, page)
	d.Matrices = append(d.Matrices, matrix)
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by zero-based index, or nil.
func (d *Document) GetPage(index int) *Page {
	for _, p := range d.Pages {
		if p.Index == index {
			return p
		}
	}
	return nil
}

// GetMatrix returns the matrix for a zero-based page index, or nil.
func (d *Document) GetMatrix(index int) *Matrix {
	for _, m := range d.Matrices {
		if m.PageIndex == index {
			return m
		}
	}
	return nil
}

// Text concatenates page text in page order, pages separated by a blank
// line.
func (d *Document) Text() string {
	var out string
	for i, p := range d.Pages {
		if i > 0 {
			out += "\n"
		}
		out += p.Text()
	}
	return out
}

// BlockCount returns the total number of blocks across all pages.
func (d *Document) BlockCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Blocks)
	}
	return n
}

// AllBlocks returns all blocks in page order, each page's blocks in reading
// order.
func (d *Document) AllBlocks() []*Block {
	var out []*Block
	for _, p := range d.Pages {
		out = append(out, p.Blocks...)
	}
	return out
}
