// Package shapes provides immutable integer point sets (rectangles, circles
// and lines) that can be tested for membership and enumerated lazily.
// Shapes never touch a grid themselves; callers write the yielded positions
// into whatever container they own.
package shapes

import (
	"iter"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// Shape is a finite set of grid positions.
// Contains(p) is true exactly for the positions yielded by Points().
type Shape interface {
	// Count returns the number of positions in the shape.
	Count() int

	// Contains reports whether p belongs to the shape.
	Contains(p grid.Point) bool

	// Points yields every position exactly once. The sequence can be
	// ranged over any number of times.
	Points() iter.Seq[grid.Point]
}

// ShapeWithBorder is a shape that also exposes its outer ring.
type ShapeWithBorder interface {
	Shape

	BorderCount() int
	BorderContains(p grid.Point) bool
	BorderPoints() iter.Seq[grid.Point]
}

// CountPoints counts the positions of s by iterating them.
func CountPoints(s Shape) int {
	n := 0
	for range s.Points() {
		n++
	}
	return n
}

// Border returns the perimeter of s as a Shape of its own.
func Border(s ShapeWithBorder) Shape {
	return border{s: s}
}

type border struct {
	s ShapeWithBorder
}

func (b border) Count() int                   { return b.s.BorderCount() }
func (b border) Contains(p grid.Point) bool   { return b.s.BorderContains(p) }
func (b border) Points() iter.Seq[grid.Point] { return b.s.BorderPoints() }

// cursor is a single-pass position generator.
type cursor interface {
	next() (grid.Point, bool)
}

// seq restarts a fresh cursor for every range loop.
func seq[C cursor](start func() C) iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		c := start()
		for {
			p, ok := c.next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
