package model

import "math"

// Point represents a 2D point in some coordinate space.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box. In page space the origin is
// the top-left corner and Y increases downward, so Top() < Bottom().
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its top-left corner and dimensions.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates the smallest bounding box containing both points.
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	return BBox{X: x, Y: y, Width: math.Abs(p2.X - p1.X), Height: math.Abs(p2.Y - p1.Y)}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// TopLeft returns the top-left corner.
func (b BBox) TopLeft() Point { return Point{X: b.X, Y: b.Y} }

// Center returns the center point.
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes, or a zero box
// when they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())
	return BBox{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest bounding box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())
	return BBox{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 { return b.Width * b.Height }

// IoU returns the intersection-over-union overlap ratio with another box,
// a value between 0 and 1.
func (b BBox) IoU(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}
	inter := b.Intersection(other).Area()
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// IsEmpty returns true if the bounding box has zero or negative area.
func (b BBox) IsEmpty() bool { return b.Width <= 0 || b.Height <= 0 }

// IsValid returns true if the bounding box has positive dimensions.
func (b BBox) IsValid() bool { return b.Width > 0 && b.Height > 0 }

// Affine represents a 2D affine transformation in the order
// [a b c d e f], mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation transform.
func Translate(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling transform.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// PixelToPage returns the transform from image-pixel space into page space
// for a raster rendered at pixelsPerPoint (pixels per PDF point). Both spaces
// share the top-left origin, so only scaling is involved.
func PixelToPage(pixelsPerPoint float64) Affine {
	if pixelsPerPoint <= 0 {
		return Identity()
	}
	return Scale(1/pixelsPerPoint, 1/pixelsPerPoint)
}

// PointToPage returns the transform from PDF-point space (origin bottom-left,
// Y up) into page space (origin top-left, Y down) for a page of the given
// height in points.
func PointToPage(pageHeight float64) Affine {
	return Affine{1, 0, 0, -1, 0, pageHeight}
}

// Apply applies the transform to a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// ApplyBBox applies the transform to a bounding box and renormalizes the
// result so width and height stay positive under axis flips.
func (a Affine) ApplyBBox(b BBox) BBox {
	p1 := a.Apply(Point{X: b.Left(), Y: b.Top()})
	p2 := a.Apply(Point{X: b.Right(), Y: b.Bottom()})
	return NewBBoxFromPoints(p1, p2)
}

// Mul composes two transforms: applying the result is equivalent to applying
// a first, then other.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		a[0]*other[0] + a[1]*other[2],
		a[0]*other[1] + a[1]*other[3],
		a[2]*other[0] + a[3]*other[2],
		a[2]*other[1] + a[3]*other[3],
		a[4]*other[0] + a[5]*other[2] + other[4],
		a[4]*other[1] + a[5]*other[3] + other[5],
	}
}

// IsIdentity returns true if the transform is the identity.
func (a Affine) IsIdentity() bool {
	return a[0] == 1 && a[1] == 0 && a[2] == 0 && a[3] == 1 && a[4] == 0 && a[5] == 0
}
