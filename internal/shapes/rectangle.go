package shapes

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// Rectangle is an axis-aligned, half-open box: Min is inclusive and Max is
// exclusive. A rectangle from (0,0) to (1,1) holds the single position (0,0).
type Rectangle struct {
	Min grid.Point `yaml:"min"`
	Max grid.Point `yaml:"max"`
}

// NewRectangle creates a rectangle from two corners in any order.
func NewRectangle(p1, p2 grid.Point) Rectangle {
	return Rectangle{
		Min: grid.Point{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)},
		Max: grid.Point{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)},
	}
}

// NewRectangleWithSize creates a rectangle from its Min corner and size.
func NewRectangleWithSize(origin grid.Point, size grid.Size) Rectangle {
	return Rectangle{
		Min: origin,
		Max: grid.Point{X: origin.X + size.W, Y: origin.Y + size.H},
	}
}

// RectangleFromCenter creates a square around center.
// Radius 0 is the single center cell, radius 1 is 3x3.
func RectangleFromCenter(center grid.Point, radius int) Rectangle {
	return NewRectangle(
		grid.Point{X: center.X - radius, Y: center.Y - radius},
		grid.Point{X: center.X + radius + 1, Y: center.Y + radius + 1},
	)
}

// Width returns Max.X - Min.X.
func (r Rectangle) Width() int { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rectangle) Height() int { return r.Max.Y - r.Min.Y }

// Size returns the rectangle dimensions.
func (r Rectangle) Size() grid.Size { return grid.Size{W: r.Width(), H: r.Height()} }

// IsSquare returns true if width equals height.
func (r Rectangle) IsSquare() bool { return r.Width() == r.Height() }

// Center returns Min plus half the size, rounded toward Min.
func (r Rectangle) Center() grid.Point {
	return grid.Point{X: r.Min.X + r.Width()/2, Y: r.Min.Y + r.Height()/2}
}

// Intersects returns true if the two rectangles share at least one position.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}

// Intersection returns the overlap of both rectangles.
// Disjoint rectangles produce an empty rectangle positioned at r.Min.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	if !r.Intersects(o) {
		return Rectangle{Min: r.Min, Max: r.Min}
	}
	return NewRectangle(
		grid.Point{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		grid.Point{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	)
}

// Count returns width*height, or 0 for an inverted rectangle.
func (r Rectangle) Count() int {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Contains checks Min <= p < Max on both axes.
func (r Rectangle) Contains(p grid.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Points yields the positions row by row, starting at Min.
func (r Rectangle) Points() iter.Seq[grid.Point] {
	return seq(func() *rectIter { return newRectIter(r) })
}

// BorderCount returns the number of positions touching an edge.
// Rectangles one cell wide or tall are all border.
func (r Rectangle) BorderCount() int {
	w, h := r.Width(), r.Height()
	switch {
	case w <= 0 || h <= 0:
		return 0
	case w == 1 || h == 1:
		return w * h
	default:
		return 2*w + 2*h - 4
	}
}

// BorderContains reports whether p is inside r and on its first or last
// row or column.
func (r Rectangle) BorderContains(p grid.Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.Min.X || p.X == r.Max.X-1 || p.Y == r.Min.Y || p.Y == r.Max.Y-1
}

// BorderPoints walks the perimeter clockwise from Min: top edge, right edge,
// bottom edge, then left edge. Every corner is yielded once.
func (r Rectangle) BorderPoints() iter.Seq[grid.Point] {
	return seq(func() *rectBorderIter { return newRectBorderIter(r) })
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle[min %v, max %v, size %v]", r.Min, r.Max, r.Size())
}
