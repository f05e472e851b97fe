package shapes

import (
	"slices"
	"testing"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

func TestNewRectangleNormalises(t *testing.T) {
	r := NewRectangle(grid.P(3, 4), grid.P(1, 1))
	if r.Min != grid.P(1, 1) || r.Max != grid.P(3, 4) {
		t.Errorf("NewRectangle() = %v, expected min (1,1) max (3,4)", r)
	}
	if r.Width() != 2 || r.Height() != 3 {
		t.Errorf("size = %dx%d, expected 2x3", r.Width(), r.Height())
	}
	if r.IsSquare() {
		t.Error("2x3 should not be square")
	}
}

func TestRectangleConstructors(t *testing.T) {
	tests := []struct {
		name     string
		r        Rectangle
		min, max grid.Point
	}{
		{"with size", NewRectangleWithSize(grid.P(2, 3), grid.S(4, 1)), grid.P(2, 3), grid.P(6, 4)},
		{"center radius 0", RectangleFromCenter(grid.P(5, 5), 0), grid.P(5, 5), grid.P(6, 6)},
		{"center radius 1", RectangleFromCenter(grid.P(5, 5), 1), grid.P(4, 4), grid.P(7, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Min != tc.min || tc.r.Max != tc.max {
				t.Errorf("got %v, expected min %v max %v", tc.r, tc.min, tc.max)
			}
		})
	}
}

func TestRectangleCenter(t *testing.T) {
	r := NewRectangle(grid.P(0, 0), grid.P(4, 3))
	if got := r.Center(); got != grid.P(2, 1) {
		t.Errorf("Center() = %v, expected (2,1)", got)
	}
}

func TestRectangleIntersection(t *testing.T) {
	a := NewRectangle(grid.P(0, 0), grid.P(4, 4))

	tests := []struct {
		name       string
		b          Rectangle
		intersects bool
		expected   Rectangle
	}{
		{"overlap", NewRectangle(grid.P(2, 1), grid.P(6, 3)), true, NewRectangle(grid.P(2, 1), grid.P(4, 3))},
		{"inside", NewRectangle(grid.P(1, 1), grid.P(2, 2)), true, NewRectangle(grid.P(1, 1), grid.P(2, 2))},
		{"touching edge", NewRectangle(grid.P(4, 0), grid.P(6, 4)), false, Rectangle{}},
		{"disjoint", NewRectangle(grid.P(5, 5), grid.P(7, 7)), false, Rectangle{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.intersects {
				t.Errorf("Intersects() = %v, expected %v", got, tc.intersects)
			}
			got := a.Intersection(tc.b)
			if got != tc.expected {
				t.Errorf("Intersection() = %v, expected %v", got, tc.expected)
			}
			if !tc.intersects && (got.Width() != 0 || got.Height() != 0) {
				t.Errorf("disjoint intersection should be empty, got %v", got)
			}
		})
	}

	far := NewRectangle(grid.P(10, 10), grid.P(12, 12))
	if got := far.Intersection(a); got.Min != far.Min || got.Count() != 0 {
		t.Errorf("empty intersection should sit at the receiver's Min, got %v", got)
	}
}

func TestRectanglePoints(t *testing.T) {
	r := NewRectangle(grid.P(1, 1), grid.P(3, 3))
	got := slices.Collect(r.Points())
	expected := []grid.Point{grid.P(1, 1), grid.P(2, 1), grid.P(1, 2), grid.P(2, 2)}
	if !slices.Equal(got, expected) {
		t.Errorf("Points() = %v, expected %v", got, expected)
	}

	empty := NewRectangle(grid.P(1, 1), grid.P(1, 5))
	if n := CountPoints(empty); n != 0 {
		t.Errorf("zero-width rectangle yielded %d points", n)
	}
}

func TestRectangleBorderWalk(t *testing.T) {
	r := NewRectangle(grid.P(0, 0), grid.P(3, 3))

	got := slices.Collect(r.BorderPoints())
	expected := []grid.Point{
		grid.P(0, 0), grid.P(1, 0), grid.P(2, 0),
		grid.P(2, 1), grid.P(2, 2),
		grid.P(1, 2), grid.P(0, 2),
		grid.P(0, 1),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("BorderPoints() = %v, expected %v", got, expected)
	}
	if r.BorderCount() != 8 {
		t.Errorf("BorderCount() = %d, expected 8", r.BorderCount())
	}
	if slices.Contains(got, grid.P(1, 1)) || r.BorderContains(grid.P(1, 1)) {
		t.Error("center of 3x3 should not be on the border")
	}
}

func TestRectangleBorderCount(t *testing.T) {
	tests := []struct {
		w, h     int
		expected int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 1, 1},
		{1, 4, 4},
		{5, 1, 5},
		{2, 2, 4},
		{4, 3, 10},
		{6, 6, 20},
	}

	for _, tc := range tests {
		r := NewRectangleWithSize(grid.P(-2, 7), grid.S(tc.w, tc.h))
		t.Run(r.Size().String(), func(t *testing.T) {
			if got := r.BorderCount(); got != tc.expected {
				t.Errorf("BorderCount() = %d, expected %d", got, tc.expected)
			}
			if got := CountPoints(Border(r)); got != tc.expected {
				t.Errorf("border walk yielded %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestRectangleMembershipMatchesIteration(t *testing.T) {
	rects := []Rectangle{
		NewRectangleWithSize(grid.P(0, 0), grid.S(1, 1)),
		NewRectangleWithSize(grid.P(-3, 2), grid.S(1, 4)),
		NewRectangleWithSize(grid.P(1, -1), grid.S(5, 2)),
		NewRectangleWithSize(grid.P(0, 0), grid.S(4, 7)),
	}

	for _, r := range rects {
		t.Run(r.String(), func(t *testing.T) {
			checkMembership(t, r, r.Min.Sub(grid.P(2, 2)), r.Max.Add(grid.P(2, 2)))
			checkMembership(t, Border(r), r.Min.Sub(grid.P(2, 2)), r.Max.Add(grid.P(2, 2)))
		})
	}
}

// checkMembership verifies Points yields no duplicates, agrees with Count,
// and matches Contains for every cell of the [lo, hi) window.
func checkMembership(t *testing.T, s Shape, lo, hi grid.Point) {
	t.Helper()

	seen := make(map[grid.Point]bool)
	for p := range s.Points() {
		if seen[p] {
			t.Fatalf("%v yielded twice", p)
		}
		seen[p] = true
	}
	if len(seen) != s.Count() {
		t.Errorf("Count() = %d, iteration yielded %d", s.Count(), len(seen))
	}

	for y := lo.Y; y < hi.Y; y++ {
		for x := lo.X; x < hi.X; x++ {
			p := grid.P(x, y)
			if s.Contains(p) != seen[p] {
				t.Errorf("Contains(%v) = %v, iteration says %v", p, s.Contains(p), seen[p])
			}
		}
	}
}
