package brush

import (
	"testing"

	"github.com/vovakirdan/sector-shift/internal/direction"
	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/maps"
	"github.com/vovakirdan/sector-shift/internal/shapes"
)

func TestParse(t *testing.T) {
	tests := []struct {
		kind, arg string
		expected  Brush
	}{
		{"tile", "floor", Brush{Kind: Tile, Tile: maps.Floor}},
		{"tile", "|", Brush{Kind: Tile, Tile: maps.DoorVertical}},
		{"start", "", Brush{Kind: PlayerStart, Facing: direction.North}},
		{"player_start", "south-west", Brush{Kind: PlayerStart, Facing: direction.SouthWest}},
		{"enemy", "grunt", Brush{Kind: Enemy, ID: "grunt"}},
		{"ERASE-ENEMY", "", Brush{Kind: EraseEnemy}},
		{"exit", "level_02", Brush{Kind: Exit, ID: "level_02"}},
		{"erase-exit", "", Brush{Kind: EraseExit}},
		{"item", "medkit", Brush{Kind: Item, ID: "medkit"}},
		{"erase-item", "", Brush{Kind: EraseItem}},
	}

	for _, tc := range tests {
		t.Run(tc.kind+"/"+tc.arg, func(t *testing.T) {
			got, err := Parse(tc.kind, tc.arg)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Parse() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		kind, arg string
	}{
		{"spray", ""},
		{"tile", "lava"},
		{"start", "up"},
		{"start", "sideways"},
		{"enemy", ""},
		{"exit", ""},
	}

	for _, tc := range tests {
		if _, err := Parse(tc.kind, tc.arg); err == nil {
			t.Errorf("Parse(%q, %q) should fail", tc.kind, tc.arg)
		}
	}
}

func TestApply(t *testing.T) {
	l := maps.NewLevel("edit", grid.S(4, 4))
	p := grid.P(1, 2)

	steps := []struct {
		brush Brush
		check func() bool
	}{
		{Brush{Kind: Tile, Tile: maps.Floor}, func() bool { return l.Tiles.At(p) == maps.Floor }},
		{Brush{Kind: PlayerStart, Facing: direction.West}, func() bool {
			return l.Start.Position == p && l.Start.Facing == direction.West
		}},
		{Brush{Kind: Enemy, ID: "grunt"}, func() bool { return len(l.ObjectsAt(p)) == 1 }},
		{Brush{Kind: Item, ID: "ammo"}, func() bool { return len(l.ObjectsAt(p)) == 2 }},
		{Brush{Kind: Exit, ID: "next"}, func() bool { return len(l.ObjectsAt(p)) == 3 }},
		{Brush{Kind: EraseEnemy}, func() bool { return len(l.ObjectsAt(p)) == 2 }},
		{Brush{Kind: EraseItem}, func() bool { return len(l.ObjectsAt(p)) == 1 }},
		{Brush{Kind: EraseExit}, func() bool { return l.ObjectCount() == 0 }},
	}

	for _, s := range steps {
		if !s.brush.Apply(l, p) {
			t.Fatalf("%v.Apply() reported false", s.brush)
		}
		if !s.check() {
			t.Errorf("%v did not take effect:\n%s", s.brush, maps.RenderASCII(l))
		}
	}

	if (Brush{Kind: Tile, Tile: maps.Floor}).Apply(l, grid.P(4, 0)) {
		t.Error("Apply outside the level should report false")
	}
}

func TestPaintShapes(t *testing.T) {
	l := maps.NewLevel("room", grid.S(6, 6))
	floor := Brush{Kind: Tile, Tile: maps.Floor}

	n := floor.Paint(l, shapes.NewRectangle(grid.P(1, 1), grid.P(5, 5)))
	if n != 16 || l.Count(maps.Floor) != 16 {
		t.Errorf("rectangle painted %d, level has %d floor tiles", n, l.Count(maps.Floor))
	}

	wall := Brush{Kind: Tile, Tile: maps.Wall}
	n = wall.Paint(l, shapes.Border(shapes.NewRectangle(grid.P(1, 1), grid.P(5, 5))))
	if n != 12 || l.Count(maps.Floor) != 4 {
		t.Errorf("border painted %d, %d floor tiles left", n, l.Count(maps.Floor))
	}

	// Clipped against the level edge.
	n = floor.Paint(l, shapes.NewCircle(grid.P(0, 0), 1))
	if n != 3 {
		t.Errorf("clipped circle painted %d, expected 3", n)
	}
}

func TestStroke(t *testing.T) {
	l := maps.NewLevel("hall", grid.S(5, 3))
	b := Brush{Kind: Tile, Tile: maps.Floor}

	if n := b.Stroke(l, grid.P(0, 1), grid.P(4, 1)); n != 5 {
		t.Errorf("Stroke() = %d, expected 5", n)
	}
	for x := range 5 {
		if l.Tiles.At(grid.P(x, 1)) != maps.Floor {
			t.Errorf("(%d,1) not painted", x)
		}
	}

	if n := b.Stroke(l, grid.P(-2, 0), grid.P(1, 0)); n != 2 {
		t.Errorf("partially outside stroke = %d, expected 2", n)
	}
}

func TestStrokeIgnoresDirection(t *testing.T) {
	b := Brush{Kind: Tile, Tile: maps.Floor}

	// (0,0)->(2,1) passes (1,0); the raw line from (2,1) to (0,0) passes
	// (1,1) instead.
	reversed := shapes.NewLine(grid.P(0, 0), grid.P(2, 1)).Reverse()
	if !reversed.Contains(grid.P(1, 1)) || reversed.Contains(grid.P(1, 0)) {
		t.Fatalf("unexpected reversed path for %v", reversed)
	}

	forward := maps.NewLevel("forward", grid.S(3, 2))
	backward := maps.NewLevel("backward", grid.S(3, 2))
	b.Stroke(forward, grid.P(0, 0), grid.P(2, 1))
	b.Stroke(backward, grid.P(2, 1), grid.P(0, 0))

	if got, want := maps.RenderASCII(backward)[len("Level: backward"):], maps.RenderASCII(forward)[len("Level: forward"):]; got != want {
		t.Errorf("reverse stroke painted\n%s\nforward stroke painted\n%s", got, want)
	}
	if backward.Tiles.At(grid.P(1, 0)) != maps.Floor || backward.Tiles.At(grid.P(1, 1)) != maps.Wall {
		t.Error("reverse stroke did not follow the forward path")
	}
}
