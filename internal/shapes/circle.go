package shapes

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// Circle is a filled disc of grid cells.
// A negative Radius describes no positions.
type Circle struct {
	Center grid.Point `yaml:"center"`
	Radius int        `yaml:"radius"`
}

// NewCircle creates a circle.
func NewCircle(center grid.Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// Left returns the leftmost cell on the center row.
func (c Circle) Left() grid.Point {
	return grid.Point{X: c.Center.X - c.Radius, Y: c.Center.Y}
}

// Right returns the rightmost cell on the center row.
func (c Circle) Right() grid.Point {
	return grid.Point{X: c.Center.X + c.Radius, Y: c.Center.Y}
}

// Top returns the cell with the largest Y on the center column.
func (c Circle) Top() grid.Point {
	return grid.Point{X: c.Center.X, Y: c.Center.Y + c.Radius}
}

// Bottom returns the cell with the smallest Y on the center column.
func (c Circle) Bottom() grid.Point {
	return grid.Point{X: c.Center.X, Y: c.Center.Y - c.Radius}
}

// HorizontalLine returns the diameter from Left to Right.
func (c Circle) HorizontalLine() Line {
	return NewLine(c.Left(), c.Right())
}

// VerticalLine returns the diameter from Bottom to Top.
func (c Circle) VerticalLine() Line {
	return NewLine(c.Bottom(), c.Top())
}

// Bounds returns the smallest rectangle holding the circle.
func (c Circle) Bounds() Rectangle {
	if c.Radius < 0 {
		return Rectangle{Min: c.Center, Max: c.Center}
	}
	return RectangleFromCenter(c.Center, c.Radius)
}

// Count sums the scanline widths without visiting every cell.
func (c Circle) Count() int {
	n := 0
	for dy := -c.Radius; dy <= c.Radius; dy++ {
		n += 2*halfWidth(c.Radius, dy) + 1
	}
	return n
}

// Contains checks dx*dx + dy*dy <= r*r.
func (c Circle) Contains(p grid.Point) bool {
	if c.Radius < 0 {
		return false
	}
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Points yields the disc row by row from Center.Y-Radius upwards,
// each row from left to right.
func (c Circle) Points() iter.Seq[grid.Point] {
	return seq(func() *circleIter { return newCircleIter(c) })
}

// BorderCount returns the number of cells on the rasterised ring.
func (c Circle) BorderCount() int {
	n := 0
	for range c.BorderPoints() {
		n++
	}
	return n
}

// BorderContains reports whether p lies on the rasterised ring.
//
// The midpoint ring can step just outside the r*r disc (radius 2 yields
// (1,2)), so the filter is the bounding box rather than Contains.
func (c Circle) BorderContains(p grid.Point) bool {
	if !c.Bounds().Contains(p) {
		return false
	}
	for q := range c.BorderPoints() {
		if q == p {
			return true
		}
	}
	return false
}

// BorderPoints yields the ring produced by the midpoint circle algorithm,
// eight symmetric cells per step. Radius 0 yields the center only.
func (c Circle) BorderPoints() iter.Seq[grid.Point] {
	return seq(func() *circleBorderIter { return newCircleBorderIter(c) })
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle[center %v, radius %d]", c.Center, c.Radius)
}
