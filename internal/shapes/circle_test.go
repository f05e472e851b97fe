package shapes

import (
	"slices"
	"testing"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

func TestCircleContains(t *testing.T) {
	c := NewCircle(grid.P(0, 0), 2)

	tests := []struct {
		p        grid.Point
		expected bool
	}{
		{grid.P(0, 0), true},
		{grid.P(2, 0), true},
		{grid.P(0, -2), true},
		{grid.P(1, 1), true},
		{grid.P(2, 1), false},
		{grid.P(3, 0), false},
	}

	for _, tc := range tests {
		if got := c.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestCircleFill(t *testing.T) {
	c := NewCircle(grid.P(0, 0), 2)

	got := slices.Collect(c.Points())
	if len(got) != 13 || c.Count() != 13 {
		t.Fatalf("radius 2 disc: %d points, Count() = %d, expected 13", len(got), c.Count())
	}
	if got[0] != grid.P(0, -2) || got[len(got)-1] != grid.P(0, 2) {
		t.Errorf("scanline should run from (0,-2) to (0,2), got %v", got)
	}

	zero := NewCircle(grid.P(4, -1), 0)
	if pts := slices.Collect(zero.Points()); !slices.Equal(pts, []grid.Point{grid.P(4, -1)}) {
		t.Errorf("radius 0 Points() = %v", pts)
	}
}

func TestCircleFillMatchesContains(t *testing.T) {
	for r := range 25 {
		c := NewCircle(grid.P(3, -2), r)
		b := c.Bounds()
		checkMembership(t, c, b.Min.Sub(grid.P(1, 1)), b.Max.Add(grid.P(1, 1)))
	}
}

func TestCircleBorder(t *testing.T) {
	tests := []struct {
		radius   int
		expected int
	}{
		{0, 1},
		{1, 4},
		{2, 12},
		{3, 16},
		{4, 24},
		{5, 28},
	}

	for _, tc := range tests {
		c := NewCircle(grid.P(1, 1), tc.radius)
		if got := c.BorderCount(); got != tc.expected {
			t.Errorf("radius %d BorderCount() = %d, expected %d", tc.radius, got, tc.expected)
		}
	}

	zero := slices.Collect(NewCircle(grid.P(7, 7), 0).BorderPoints())
	if !slices.Equal(zero, []grid.Point{grid.P(7, 7)}) {
		t.Errorf("radius 0 border = %v", zero)
	}
}

func TestCircleBorderMembership(t *testing.T) {
	for r := range 12 {
		c := NewCircle(grid.P(-1, 2), r)
		b := c.Bounds()
		checkMembership(t, Border(c), b.Min.Sub(grid.P(1, 1)), b.Max.Add(grid.P(1, 1)))
	}

	// The ring may leave the r*r disc.
	c := NewCircle(grid.P(0, 0), 2)
	if !c.BorderContains(grid.P(1, 2)) || c.Contains(grid.P(1, 2)) {
		t.Error("(1,2) should be on the radius 2 ring but outside the disc")
	}
}

func TestCircleExtremes(t *testing.T) {
	c := NewCircle(grid.P(5, 5), 3)

	if c.Left() != grid.P(2, 5) || c.Right() != grid.P(8, 5) {
		t.Errorf("Left/Right = %v %v", c.Left(), c.Right())
	}
	if c.Top() != grid.P(5, 8) || c.Bottom() != grid.P(5, 2) {
		t.Errorf("Top/Bottom = %v %v", c.Top(), c.Bottom())
	}
	if n := c.HorizontalLine().Count(); n != 7 {
		t.Errorf("HorizontalLine().Count() = %d, expected 7", n)
	}
	if v := c.VerticalLine(); v.Start != c.Bottom() || v.End != c.Top() {
		t.Errorf("VerticalLine() = %v", v)
	}
}

func TestNegativeRadiusIsEmpty(t *testing.T) {
	c := NewCircle(grid.P(0, 0), -3)
	if c.Count() != 0 || CountPoints(c) != 0 || c.BorderCount() != 0 {
		t.Errorf("negative radius should describe no cells")
	}
	if c.Contains(grid.P(0, 0)) {
		t.Error("negative radius should contain nothing")
	}
}
