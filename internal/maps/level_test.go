package maps

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/sector-shift/internal/direction"
	"github.com/vovakirdan/sector-shift/internal/grid"
)

// sampleLevel builds a 5x4 room:
//
//	#####
//	#@.iX
//	#.E.#
//	#####
func sampleLevel() *Level {
	l := NewLevel("alpha", grid.S(5, 4))
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			l.Tiles.Set(grid.P(x, y), Floor)
		}
	}
	l.Tiles.Set(grid.P(4, 1), Door(Vertical))
	l.SetPlayerStart(grid.P(1, 1), direction.East)
	l.AddEnemy(grid.P(2, 2), "grunt")
	l.AddItem(grid.P(3, 1), "medkit")
	l.AddExit(grid.P(4, 1), "beta")
	return l
}

func TestNewLevel(t *testing.T) {
	l := NewLevel("alpha", grid.S(3, 2))

	if l.Width() != 3 || l.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", l.Width(), l.Height())
	}
	if l.Count(Wall) != 6 {
		t.Errorf("new level should be solid, got %d walls", l.Count(Wall))
	}
	if l.Start.Position != grid.P(0, 0) || l.Start.Facing != direction.North {
		t.Errorf("unexpected start %+v", l.Start)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestObjectsReplaceByKind(t *testing.T) {
	l := NewLevel("alpha", grid.S(4, 4))
	p := grid.P(1, 2)

	l.AddEnemy(p, "grunt")
	l.AddItem(p, "ammo")
	l.AddEnemy(p, "brute")

	got := l.ObjectsAt(p)
	expected := []MapObject{{Kind: Enemy, ID: "brute"}, {Kind: Item, ID: "ammo"}}
	if !slices.Equal(got, expected) {
		t.Errorf("ObjectsAt() = %v, expected %v", got, expected)
	}

	l.RemoveEnemy(p)
	if got := l.ObjectsAt(p); len(got) != 1 || got[0].Kind != Item {
		t.Errorf("after RemoveEnemy: %v", got)
	}

	l.RemoveItem(p)
	if _, ok := l.Objects[p]; ok {
		t.Error("empty positions should be dropped")
	}

	l.RemoveExit(grid.P(0, 0))
	if l.ObjectCount() != 0 {
		t.Errorf("ObjectCount() = %d, expected 0", l.ObjectCount())
	}
}

func TestObjectsAtReturnsCopy(t *testing.T) {
	l := sampleLevel()
	objs := l.ObjectsAt(grid.P(2, 2))
	objs[0].ID = "changed"
	if l.ObjectsAt(grid.P(2, 2))[0].ID != "grunt" {
		t.Error("ObjectsAt should not expose the level's slice")
	}
}

func TestObjectPositionsSorted(t *testing.T) {
	l := sampleLevel()
	got := l.ObjectPositions()
	expected := []grid.Point{grid.P(3, 1), grid.P(4, 1), grid.P(2, 2)}
	if !slices.Equal(got, expected) {
		t.Errorf("ObjectPositions() = %v, expected %v", got, expected)
	}
}

func TestExposedTiles(t *testing.T) {
	l := NewLevel("pit", grid.S(7, 7))
	l.Tiles.Set(grid.P(3, 3), Floor)

	var got []grid.Point
	for p, tile := range l.ExposedTiles() {
		if tile != Wall {
			t.Errorf("exposed tile %v is %v, expected wall", p, tile)
		}
		got = append(got, p)
	}

	// The ring around the floor cell; the floor itself only touches walls.
	if len(got) != 8 {
		t.Fatalf("ExposedTiles() = %v, expected 8 tiles", got)
	}
	for _, p := range got {
		if p.Chebyshev(grid.P(3, 3)) != 1 {
			t.Errorf("%v is not next to the floor", p)
		}
	}

	solid := NewLevel("rock", grid.S(4, 4))
	for range solid.ExposedTiles() {
		t.Fatal("a solid level exposes nothing")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(l *Level)
		errMsg string
	}{
		{"empty name", func(l *Level) { l.Name = "" }, "name is empty"},
		{"path name", func(l *Level) { l.Name = "../x" }, "invalid level name"},
		{"start outside", func(l *Level) { l.Start.Position = grid.P(5, 0) }, "player start"},
		{"vertical facing", func(l *Level) { l.Start.Facing = direction.UpNorth }, "facing"},
		{"no facing", func(l *Level) { l.Start.Facing = direction.None }, "facing"},
		{"object outside", func(l *Level) { l.AddItem(grid.P(-1, 0), "key") }, "outside"},
		{"object without id", func(l *Level) { l.AddEnemy(grid.P(1, 1), "") }, "no id"},
		{"no tiles", func(l *Level) { l.Tiles = nil }, "no tiles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := sampleLevel()
			tc.modify(l)
			err := l.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q does not mention %q", err, tc.errMsg)
			}
		})
	}

	if err := sampleLevel().Validate(); err != nil {
		t.Errorf("sample level should be valid: %v", err)
	}
}

func TestClone(t *testing.T) {
	l := sampleLevel()
	c := l.Clone()

	c.Tiles.Set(grid.P(1, 2), Wall)
	c.AddEnemy(grid.P(2, 2), "boss")

	if l.Tiles.At(grid.P(1, 2)) != Floor {
		t.Error("Clone shares tiles")
	}
	if l.ObjectsAt(grid.P(2, 2))[0].ID != "grunt" {
		t.Error("Clone shares objects")
	}
}

func TestRenderASCII(t *testing.T) {
	expected := strings.Join([]string{
		"Level: alpha | Size: 5x4 | Objects: 3",
		"-----",
		"#####",
		"#@.iX",
		"#.E.#",
		"#####",
		"-----",
		"Start: (1,1) facing EAST",
		"(3,1) item medkit",
		"(4,1) exit beta",
		"(2,2) enemy grunt",
		"",
	}, "\n")

	if got := RenderASCII(sampleLevel()); got != expected {
		t.Errorf("RenderASCII mismatch\ngot:\n%s\nexpected:\n%s", got, expected)
	}
}
