package shapes

import "github.com/vovakirdan/sector-shift/internal/grid"

type rectIter struct {
	current  grid.Point
	min, max grid.Point
}

func newRectIter(r Rectangle) *rectIter {
	return &rectIter{current: r.Min, min: r.Min, max: r.Max}
}

func (it *rectIter) next() (grid.Point, bool) {
	if it.current.Y >= it.max.Y || it.min.X >= it.max.X {
		return grid.Point{}, false
	}

	p := it.current
	it.current.X++
	if it.current.X >= it.max.X {
		it.current.X = it.min.X
		it.current.Y++
	}
	return p, true
}

type borderPhase uint8

const (
	phaseTop borderPhase = iota
	phaseRight
	phaseBottom
	phaseLeft
	phaseDone
)

type rectBorderIter struct {
	current  grid.Point
	min, max grid.Point
	phase    borderPhase

	// Set for rectangles one cell wide or tall.
	flat *rectIter
}

func newRectBorderIter(r Rectangle) *rectBorderIter {
	it := &rectBorderIter{current: r.Min, min: r.Min, max: r.Max}
	w, h := r.Width(), r.Height()
	switch {
	case w <= 0 || h <= 0:
		it.phase = phaseDone
	case w == 1 || h == 1:
		it.flat = newRectIter(r)
	}
	return it
}

func (it *rectBorderIter) next() (grid.Point, bool) {
	if it.flat != nil {
		return it.flat.next()
	}

	for {
		switch it.phase {
		case phaseTop:
			// (min.x .. max.x-2, min.y)
			if it.current.X < it.max.X-1 {
				p := grid.Point{X: it.current.X, Y: it.min.Y}
				it.current.X++
				return p, true
			}
			it.phase = phaseRight
			it.current.Y = it.min.Y
		case phaseRight:
			// (max.x-1, min.y .. max.y-2)
			if it.current.Y < it.max.Y-1 {
				p := grid.Point{X: it.max.X - 1, Y: it.current.Y}
				it.current.Y++
				return p, true
			}
			it.phase = phaseBottom
			it.current.X = it.max.X - 1
		case phaseBottom:
			// (max.x-1 .. min.x+1, max.y-1)
			if it.current.X > it.min.X {
				p := grid.Point{X: it.current.X, Y: it.max.Y - 1}
				it.current.X--
				return p, true
			}
			it.phase = phaseLeft
			it.current.Y = it.max.Y - 1
		case phaseLeft:
			// (min.x, max.y-1 .. min.y+1)
			if it.current.Y > it.min.Y {
				p := grid.Point{X: it.min.X, Y: it.current.Y}
				it.current.Y--
				return p, true
			}
			it.phase = phaseDone
		default:
			return grid.Point{}, false
		}
	}
}
