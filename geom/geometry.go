// Package geom provides the geometric primitives the rest of the pipeline
// reasons about: normalized bounding boxes and the overlap, alignment, and
// distance predicates that drive element merging.
//
// All boxes live in page-normalized coordinates: X and Y in [0,1], origin at
// the bottom-left corner, Y increasing upward. A box with Width or Height
// <= 0 is not valid page content and callers should reject it at the
// boundary (see model.Element.Valid).
package geom

import "math"

// Point is a 2D point in normalized page coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in normalized page coordinates
// (origin bottom-left, Y up).
type Box struct {
	X      float64 // left edge
	Y      float64 // bottom edge
	Width  float64
	Height float64
}

// NewBox creates a box from its left/bottom corner and size.
func NewBox(x, y, width, height float64) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// Left returns the box's minimum X.
func (b Box) Left() float64 { return b.X }

// Right returns the box's maximum X.
func (b Box) Right() float64 { return b.X + b.Width }

// Bottom returns the box's minimum Y.
func (b Box) Bottom() float64 { return b.Y }

// Top returns the box's maximum Y.
func (b Box) Top() float64 { return b.Y + b.Height }

// Center returns the box's center point.
func (b Box) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Area returns the box's area.
func (b Box) Area() float64 { return b.Width * b.Height }

// IsValid reports whether the box has strictly positive width and height,
// per the Element invariant that all committed boxes do.
func (b Box) IsValid() bool { return b.Width > 0 && b.Height > 0 }

// Intersects reports whether two boxes share any area or touch along an
// edge.
func (b Box) Intersects(other Box) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Intersection returns the overlapping region of two boxes, or the zero Box
// if they do not intersect.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return Box{}
	}
	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Bottom(), other.Bottom())
	right := math.Min(b.Right(), other.Right())
	top := math.Min(b.Top(), other.Top())
	return Box{X: x, Y: y, Width: right - x, Height: top - y}
}

// Union returns the smallest box containing both inputs.
func (b Box) Union(other Box) Box {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())
	return Box{X: x, Y: y, Width: right - x, Height: top - y}
}

// OverlapRatio returns the intersection area divided by the area of the
// smaller of the two boxes, in [0,1].
func (b Box) OverlapRatio(other Box) float64 {
	if !b.Intersects(other) {
		return 0
	}
	inter := b.Intersection(other)
	minArea := math.Min(b.Area(), other.Area())
	if minArea == 0 {
		return 0
	}
	return inter.Area() / minArea
}

// Overlaps reports whether two boxes overlap by at least ratio t (§4.1).
func Overlaps(a, b Box, t float64) bool {
	return a.OverlapRatio(b) >= t
}

// VerticallyAligned reports whether a and b sit on the same text line: their
// minimum Y values are within tol, and their vertical extents overlap by at
// least 50% of the shorter box's height (§4.1).
func VerticallyAligned(a, b Box, tol float64) bool {
	if math.Abs(a.Bottom()-b.Bottom()) > tol {
		return false
	}
	overlap := math.Min(a.Top(), b.Top()) - math.Max(a.Bottom(), b.Bottom())
	if overlap <= 0 {
		return false
	}
	shorter := math.Min(a.Height, b.Height)
	if shorter <= 0 {
		return false
	}
	return overlap/shorter >= 0.5
}

// HorizontallyAligned reports whether a and b are stacked vertically: their
// minimum X values are within tol, and their horizontal extents overlap by
// at least 50% of the narrower box's width (§4.1).
func HorizontallyAligned(a, b Box, tol float64) bool {
	if math.Abs(a.Left()-b.Left()) > tol {
		return false
	}
	overlap := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	if overlap <= 0 {
		return false
	}
	narrower := math.Min(a.Width, b.Width)
	if narrower <= 0 {
		return false
	}
	return overlap/narrower >= 0.5
}

// MergeDistance returns the shortest edge-to-edge gap between a and b,
// normalized to the page dimension along the dominant axis of separation
// (§4.1). Returns 0 if the boxes touch or overlap.
func MergeDistance(a, b Box) float64 {
	if a.Intersects(b) {
		return 0
	}

	dx := 0.0
	if a.Right() < b.Left() {
		dx = b.Left() - a.Right()
	} else if b.Right() < a.Left() {
		dx = a.Left() - b.Right()
	}

	dy := 0.0
	if a.Top() < b.Bottom() {
		dy = b.Bottom() - a.Top()
	} else if b.Top() < a.Bottom() {
		dy = a.Bottom() - b.Top()
	}

	if dx >= dy {
		return dx
	}
	return dy
}
