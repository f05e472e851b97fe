package shapes

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// Line is a rasterised segment between two cells, both included.
type Line struct {
	Start grid.Point `yaml:"start"`
	End   grid.Point `yaml:"end"`
}

// NewLine creates a line segment.
func NewLine(start, end grid.Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the Chebyshev distance between the endpoints, which is the
// number of steps an 8-way walk needs.
func (l Line) Length() int {
	return l.Start.Chebyshev(l.End)
}

// Count returns Length()+1.
func (l Line) Count() int {
	return l.Length() + 1
}

// Contains rejects positions outside the bounding box, then matches the
// exact rasterised path.
func (l Line) Contains(p grid.Point) bool {
	if p.X < min(l.Start.X, l.End.X) || p.X > max(l.Start.X, l.End.X) ||
		p.Y < min(l.Start.Y, l.End.Y) || p.Y > max(l.Start.Y, l.End.Y) {
		return false
	}
	for q := range l.Points() {
		if q == p {
			return true
		}
	}
	return false
}

// Points yields the Bresenham path from Start to End inclusive.
func (l Line) Points() iter.Seq[grid.Point] {
	return seq(func() *lineIter { return newLineIter(l.Start, l.End) })
}

// Reverse returns the segment walked from End to Start.
// The rasterised path is not guaranteed to be the mirror of l.Points().
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

func (l Line) String() string {
	return fmt.Sprintf("Line[start %v, end %v, length %d]", l.Start, l.End, l.Length())
}

type lineIter struct {
	cur, end grid.Point
	dx, dy   int
	sx, sy   int
	err      int
	done     bool
}

func newLineIter(start, end grid.Point) *lineIter {
	it := &lineIter{
		cur: start,
		end: end,
		dx:  abs(end.X - start.X),
		dy:  abs(end.Y - start.Y),
		sx:  -1,
		sy:  -1,
	}
	if start.X < end.X {
		it.sx = 1
	}
	if start.Y < end.Y {
		it.sy = 1
	}
	it.err = it.dx - it.dy
	return it
}

func (it *lineIter) next() (grid.Point, bool) {
	if it.done {
		return grid.Point{}, false
	}

	p := it.cur
	if p == it.end {
		it.done = true
		return p, true
	}

	e2 := 2 * it.err
	if e2 > -it.dy {
		it.err -= it.dy
		it.cur.X += it.sx
	}
	if e2 < it.dx {
		it.err += it.dx
		it.cur.Y += it.sy
	}
	return p, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
