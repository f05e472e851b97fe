package shapes

import (
	"math"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// halfWidth returns trunc(sqrt(r*r - dy*dy)), the number of cells on each
// side of the center column for row dy. float64 keeps the square root exact
// for every perfect square a grid radius can produce, so the scanline agrees
// with Circle.Contains.
func halfWidth(r, dy int) int {
	rem := r*r - dy*dy
	if rem < 0 {
		return -1
	}
	return int(math.Sqrt(float64(rem)))
}

type circleIter struct {
	center grid.Point
	radius int
	dy, dx int
	width  int
}

func newCircleIter(c Circle) *circleIter {
	// dx > width forces the first row to load on the first call.
	return &circleIter{
		center: c.Center,
		radius: c.Radius,
		dy:     -c.Radius - 1,
		dx:     1,
		width:  0,
	}
}

func (it *circleIter) next() (grid.Point, bool) {
	if it.dx > it.width {
		it.dy++
		if it.dy > it.radius {
			return grid.Point{}, false
		}
		it.width = halfWidth(it.radius, it.dy)
		it.dx = -it.width
	}

	p := grid.Point{X: it.center.X + it.dx, Y: it.center.Y + it.dy}
	it.dx++
	return p, true
}

// circleBorderIter buffers the up to eight distinct cells of one midpoint
// step at a time.
type circleBorderIter struct {
	center grid.Point
	x, y   int
	d      int

	buf  [8]grid.Point
	n, i int
	done bool
}

func newCircleBorderIter(c Circle) *circleBorderIter {
	it := &circleBorderIter{
		center: c.Center,
		x:      0,
		y:      c.Radius,
		d:      3 - 2*c.Radius,
	}
	switch {
	case c.Radius == 0:
		it.buf[0] = c.Center
		it.n = 1
		it.done = true
	case c.Radius < 0:
		it.done = true
	}
	return it
}

func (it *circleBorderIter) next() (grid.Point, bool) {
	if it.i >= it.n {
		if it.done {
			return grid.Point{}, false
		}
		it.refill()
		if it.n == 0 {
			return grid.Point{}, false
		}
	}

	p := it.buf[it.i]
	it.i++
	return p, true
}

func (it *circleBorderIter) refill() {
	it.n, it.i = 0, 0
	if it.x > it.y {
		it.done = true
		return
	}

	cx, cy := it.center.X, it.center.Y
	x, y := it.x, it.y
	raw := [8]grid.Point{
		{X: cx + x, Y: cy + y},
		{X: cx - x, Y: cy + y},
		{X: cx + x, Y: cy - y},
		{X: cx - x, Y: cy - y},
		{X: cx + y, Y: cy + x},
		{X: cx - y, Y: cy + x},
		{X: cx + y, Y: cy - x},
		{X: cx - y, Y: cy - x},
	}

	// Symmetry collapses at x == 0 and x == y.
	for _, p := range raw {
		dup := false
		for _, q := range it.buf[:it.n] {
			if q == p {
				dup = true
				break
			}
		}
		if !dup {
			it.buf[it.n] = p
			it.n++
		}
	}

	if it.d < 0 {
		it.d += 4*it.x + 6
	} else {
		it.d += 4*(it.x-it.y) + 10
		it.y--
	}
	it.x++
}
