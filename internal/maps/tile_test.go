package maps

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseTileType(t *testing.T) {
	tests := []struct {
		input    string
		expected TileType
		ok       bool
	}{
		{"wall", Wall, true},
		{"#", Wall, true},
		{"Floor", Floor, true},
		{".", Floor, true},
		{"door", DoorHorizontal, true},
		{"door_vertical", DoorVertical, true},
		{"|", DoorVertical, true},
		{"-", DoorHorizontal, true},
		{"lava", Wall, false},
		{"", Wall, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseTileType(tc.input)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseTileType(%q) = %v, %v, expected %v, %v", tc.input, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for _, tile := range []TileType{Wall, Floor, DoorHorizontal, DoorVertical} {
		got, ok := TileFromGlyph(tile.Glyph())
		if !ok || got != tile {
			t.Errorf("TileFromGlyph(%q) = %v, %v, expected %v", tile.Glyph(), got, ok, tile)
		}
	}
}

func TestDoors(t *testing.T) {
	if Door(Vertical) != DoorVertical || Door(Horizontal) != DoorHorizontal {
		t.Error("Door() mapped the wrong axis")
	}
	if axis, ok := DoorVertical.Axis(); !ok || axis != Vertical {
		t.Errorf("DoorVertical.Axis() = %v, %v", axis, ok)
	}
	if _, ok := Floor.Axis(); ok {
		t.Error("Floor has no door axis")
	}
	if !DoorHorizontal.IsDoor() || Wall.IsDoor() {
		t.Error("IsDoor mismatch")
	}

	var zero TileType
	if zero != Wall {
		t.Error("zero tile should be a wall")
	}
}

func TestTileYAML(t *testing.T) {
	var v struct {
		Tiles []TileType `yaml:"tiles"`
	}
	if err := yaml.Unmarshal([]byte("tiles: [floor, '#', door-vertical]\n"), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	expected := []TileType{Floor, Wall, DoorVertical}
	for i := range expected {
		if v.Tiles[i] != expected[i] {
			t.Errorf("tile %d = %v, expected %v", i, v.Tiles[i], expected[i])
		}
	}

	if err := yaml.Unmarshal([]byte("tiles: [lava]\n"), &v); err == nil {
		t.Error("expected error for unknown tile")
	}
}
