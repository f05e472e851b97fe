// Package grid provides a dense, row-major 2D container and the integer
// point type shared by the shape library.
package grid

import "fmt"

// Point is an integer position on the grid.
// X increases to the east and Y increases to the north.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Chebyshev returns max(|dx|, |dy|) to another point.
func (p Point) Chebyshev(o Point) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points row-major (by Y, then X).
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Size is a grid extent in cells.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// S is a convenience constructor for Size.
func S(w, h int) Size {
	return Size{W: w, H: h}
}

// Area returns W*H.
func (s Size) Area() int {
	return s.W * s.H
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
