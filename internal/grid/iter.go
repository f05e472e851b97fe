package grid

import "iter"

// All returns every value in row-major order.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate pairs each position with its value, row-major.
func (g *Grid[T]) Enumerate() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(g.IndexToPositionUnchecked(i), v) {
				return
			}
		}
	}
}

// EnumerateRefs pairs each position with a pointer to its cell, row-major.
func (g *Grid[T]) EnumerateRefs() iter.Seq2[Point, *T] {
	return func(yield func(Point, *T) bool) {
		for i := range g.data {
			if !yield(g.IndexToPositionUnchecked(i), &g.data[i]) {
				return
			}
		}
	}
}

// Positions returns every in-bounds position, row-major.
func (g *Grid[T]) Positions() iter.Seq[Point] {
	return RowMajor(g.size)
}

// RowMajor returns every position of a W x H area, row by row.
func RowMajor(size Size) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range size.H {
			for x := range size.W {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Row returns row y as a slice view into the grid.
// Writes through the slice modify the grid.
func (g *Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.size.H {
		return nil, false
	}
	start := y * g.size.W
	return g.data[start : start+g.size.W : start+g.size.W], true
}

// Rows returns every row as a slice view, top to bottom.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := range g.size.H {
			row, _ := g.Row(y)
			if !yield(y, row) {
				return
			}
		}
	}
}

// Column is a strided view over one column of a grid.
type Column[T any] struct {
	data   []T
	x      int
	stride int
	height int
}

// Column returns a view over column x.
func (g *Grid[T]) Column(x int) (Column[T], bool) {
	if x < 0 || x >= g.size.W {
		return Column[T]{}, false
	}
	return Column[T]{data: g.data, x: x, stride: g.size.W, height: g.size.H}, true
}

// Columns returns a view over every column, left to right.
func (g *Grid[T]) Columns() iter.Seq2[int, Column[T]] {
	return func(yield func(int, Column[T]) bool) {
		for x := range g.size.W {
			col, _ := g.Column(x)
			if !yield(x, col) {
				return
			}
		}
	}
}

// X returns the column index.
func (c Column[T]) X() int { return c.x }

// Len returns the number of cells in the column.
func (c Column[T]) Len() int { return c.height }

// At returns the value at row y. Panics if y is out of range.
func (c Column[T]) At(y int) T {
	return *c.Ref(y)
}

// Ref returns a pointer to the cell at row y. Panics if y is out of range.
func (c Column[T]) Ref(y int) *T {
	if y < 0 || y >= c.height {
		panic("grid: column row out of range")
	}
	return &c.data[y*c.stride+c.x]
}

// All returns the column values top to bottom.
func (c Column[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := range c.height {
			if !yield(c.data[y*c.stride+c.x]) {
				return
			}
		}
	}
}

// Refs returns a pointer to each cell of the column, top to bottom.
// Every pointer addresses a distinct element (offset y*W + x), so they can
// all be held and written at the same time.
func (c Column[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for y := range c.height {
			if !yield(&c.data[y*c.stride+c.x]) {
				return
			}
		}
	}
}

// Slice copies the column values into a new slice.
func (c Column[T]) Slice() []T {
	out := make([]T, 0, c.height)
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}

// Ray walks from start by step while positions stay in bounds.
// A zero step yields start once.
func (g *Grid[T]) Ray(start, step Point) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for p := start; g.InBounds(p); p = p.Add(step) {
			if !yield(p, g.data[g.PositionToIndexUnchecked(p)]) {
				return
			}
			if step == (Point{}) {
				return
			}
		}
	}
}

// Diagonal walks from start towards +X/+Y.
func (g *Grid[T]) Diagonal(start Point) iter.Seq2[Point, T] {
	return g.Ray(start, Point{X: 1, Y: 1})
}

// AntiDiagonal walks from start towards -X/+Y.
func (g *Grid[T]) AntiDiagonal(start Point) iter.Seq2[Point, T] {
	return g.Ray(start, Point{X: -1, Y: 1})
}
