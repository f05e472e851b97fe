package grid

import (
	"fmt"
	"math"
)

// Grid is a fixed-size 2D buffer stored in row-major order: index = y*W + x.
// The length of the backing slice always equals W*H.
type Grid[T any] struct {
	size Size
	data []T
}

// Cloner is implemented by values that need a deep copy per cell.
type Cloner[T any] interface {
	Clone() T
}

// checkSize rejects sizes whose area is negative or does not fit in an int.
func checkSize(size Size) error {
	if size.W < 0 || size.H < 0 {
		return fmt.Errorf("grid: negative size %v", size)
	}
	if size.W != 0 && size.H > math.MaxInt/size.W {
		return fmt.Errorf("grid: size %v overflows", size)
	}
	return nil
}

// mustArea returns size.Area() or panics if the size is invalid.
func mustArea(size Size) int {
	if err := checkSize(size); err != nil {
		panic(err.Error())
	}
	return size.Area()
}

// New creates a grid from a size and its row-major data.
// Panics if the size is negative or overflows, or if len(data) does not
// equal size.W*size.H.
func New[T any](size Size, data []T) *Grid[T] {
	if len(data) != mustArea(size) {
		panic(fmt.Sprintf("grid: data length %d does not match grid size %v", len(data), size))
	}
	return &Grid[T]{size: size, data: data}
}

// NewFilled creates a grid with every cell set to a copy of value.
func NewFilled[T any](size Size, value T) *Grid[T] {
	data := make([]T, mustArea(size))
	for i := range data {
		data[i] = value
	}
	return New(size, data)
}

// NewCloned creates a grid with every cell set to value.Clone().
func NewCloned[T Cloner[T]](size Size, value T) *Grid[T] {
	data := make([]T, mustArea(size))
	for i := range data {
		data[i] = value.Clone()
	}
	return New(size, data)
}

// NewDefault creates a grid with every cell set to the zero value of T.
func NewDefault[T any](size Size) *Grid[T] {
	return New(size, make([]T, mustArea(size)))
}

// NewFunc creates a grid by calling f for each cell in row-major order
// with the cell's linear index and position.
func NewFunc[T any](size Size, f func(index int, p Point) T) *Grid[T] {
	data := make([]T, 0, mustArea(size))
	i := 0
	for y := range size.H {
		for x := range size.W {
			data = append(data, f(i, Point{X: x, Y: y}))
			i++
		}
	}
	return New(size, data)
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return g.size }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.size.W }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.size.H }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds returns true if 0 <= x < W and 0 <= y < H.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size.W && p.Y >= 0 && p.Y < g.size.H
}

// OnBorder returns true if p is in bounds and touches any edge.
func (g *Grid[T]) OnBorder(p Point) bool {
	return g.InBounds(p) &&
		(p.X == 0 || p.X == g.size.W-1 || p.Y == 0 || p.Y == g.size.H-1)
}

// IsValidIndex returns true if i addresses a cell of the backing slice.
//
// NOTE: this is not the same check as InBounds. A position outside the grid
// can still convert to a valid index: on a 3x3 grid (4, 0) maps to index 4.
func (g *Grid[T]) IsValidIndex(i int) bool {
	return i >= 0 && i < len(g.data)
}

// IsBorderIndex returns true if the cell at index i lies on the border.
func (g *Grid[T]) IsBorderIndex(i int) bool {
	if g.size.W == 0 {
		return false
	}
	return g.OnBorder(g.IndexToPositionUnchecked(i))
}

// PositionToIndex converts a position to a linear index.
// Returns false if the position is out of bounds.
func (g *Grid[T]) PositionToIndex(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.PositionToIndexUnchecked(p), true
}

// PositionToIndexUnchecked converts a position to a linear index without a
// bounds check. The result may be negative or exceed the grid.
func (g *Grid[T]) PositionToIndexUnchecked(p Point) int {
	return p.Y*g.size.W + p.X
}

// IndexToPosition converts a linear index to a position.
// Returns false if the resulting position is out of bounds.
func (g *Grid[T]) IndexToPosition(i int) (Point, bool) {
	if g.size.W == 0 || i < 0 {
		return Point{}, false
	}
	p := g.IndexToPositionUnchecked(i)
	if !g.InBounds(p) {
		return Point{}, false
	}
	return p, true
}

// IndexToPositionUnchecked converts a linear index to a position without a
// bounds check. Panics on a zero-width grid.
func (g *Grid[T]) IndexToPositionUnchecked(i int) Point {
	return Point{X: i % g.size.W, Y: i / g.size.W}
}

// Data returns the backing slice. Writes through it modify the grid.
func (g *Grid[T]) Data() []T { return g.data }

// GetIndex returns the value at index i.
func (g *Grid[T]) GetIndex(i int) (T, bool) {
	if !g.IsValidIndex(i) {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// RefIndex returns a pointer to the cell at index i, or nil if invalid.
func (g *Grid[T]) RefIndex(i int) *T {
	if !g.IsValidIndex(i) {
		return nil
	}
	return &g.data[i]
}

// Get returns the value at a position.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.data[g.PositionToIndexUnchecked(p)], true
}

// Ref returns a pointer to the cell at a position, or nil if out of bounds.
func (g *Grid[T]) Ref(p Point) *T {
	if !g.InBounds(p) {
		return nil
	}
	return &g.data[g.PositionToIndexUnchecked(p)]
}

// Take returns the value at a position and leaves the zero value behind.
func (g *Grid[T]) Take(p Point) (T, bool) {
	var zero T
	dst := g.Ref(p)
	if dst == nil {
		return zero, false
	}
	old := *dst
	*dst = zero
	return old, true
}

// Replace stores v at a position and returns the previous value.
func (g *Grid[T]) Replace(p Point, v T) (T, bool) {
	dst := g.Ref(p)
	if dst == nil {
		var zero T
		return zero, false
	}
	old := *dst
	*dst = v
	return old, true
}

// Swap exchanges the value at a position with *v.
// Does nothing if the position is out of bounds.
func (g *Grid[T]) Swap(p Point, v *T) bool {
	dst := g.Ref(p)
	if dst == nil {
		return false
	}
	*dst, *v = *v, *dst
	return true
}

// At returns the value at a position.
// Panics if the position is out of bounds; use Get for a checked read.
func (g *Grid[T]) At(p Point) T {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: invalid index position %v for size %v", p, g.size))
	}
	return g.data[g.PositionToIndexUnchecked(p)]
}

// Set stores v at a position.
// Panics if the position is out of bounds; use Ref or Replace for a checked write.
func (g *Grid[T]) Set(p Point, v T) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: invalid index position %v for size %v", p, g.size))
	}
	g.data[g.PositionToIndexUnchecked(p)] = v
}

// AtIndex returns the value at index i. Panics if i is not a valid index.
func (g *Grid[T]) AtIndex(i int) T {
	return g.data[i]
}

// Clone returns a shallow copy of the grid with its own backing slice.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{size: g.size, data: data}
}
