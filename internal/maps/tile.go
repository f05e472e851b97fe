// Package maps holds the level model painted onto a grid: tile types, map
// objects, the player start and the YAML level files they are stored in.
package maps

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DoorAxis is the orientation of a door tile.
type DoorAxis uint8

const (
	Horizontal DoorAxis = iota
	Vertical
)

func (a DoorAxis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDoorAxis converts "horizontal"/"h" or "vertical"/"v" to an axis.
func ParseDoorAxis(s string) (DoorAxis, bool) {
	switch strings.ToLower(s) {
	case "horizontal", "h":
		return Horizontal, true
	case "vertical", "v":
		return Vertical, true
	default:
		return Horizontal, false
	}
}

// TileType is the content of one level cell. The zero value is Wall, so a
// freshly allocated tile grid is solid.
type TileType uint8

const (
	Wall TileType = iota
	Floor
	DoorHorizontal
	DoorVertical
)

// Door returns the door tile for an axis.
func Door(axis DoorAxis) TileType {
	if axis == Vertical {
		return DoorVertical
	}
	return DoorHorizontal
}

// IsDoor returns true for both door orientations.
func (t TileType) IsDoor() bool {
	return t == DoorHorizontal || t == DoorVertical
}

// Axis returns the door axis, or false if t is not a door.
func (t TileType) Axis() (DoorAxis, bool) {
	switch t {
	case DoorHorizontal:
		return Horizontal, true
	case DoorVertical:
		return Vertical, true
	default:
		return Horizontal, false
	}
}

func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case DoorHorizontal:
		return "door-horizontal"
	case DoorVertical:
		return "door-vertical"
	default:
		return "unknown"
	}
}

// Glyph returns the character used for t in level files and ASCII dumps.
func (t TileType) Glyph() rune {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return '.'
	case DoorHorizontal:
		return '-'
	case DoorVertical:
		return '|'
	default:
		return '?'
	}
}

// TileFromGlyph is the inverse of Glyph.
func TileFromGlyph(r rune) (TileType, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Floor, true
	case '-':
		return DoorHorizontal, true
	case '|':
		return DoorVertical, true
	default:
		return Wall, false
	}
}

// ParseTileType accepts a tile name ("floor", "door-vertical", "door" for a
// horizontal door) or a single glyph.
func ParseTileType(s string) (TileType, bool) {
	if r := []rune(s); len(r) == 1 {
		if t, ok := TileFromGlyph(r[0]); ok {
			return t, true
		}
	}

	switch strings.ReplaceAll(strings.ToLower(s), "_", "-") {
	case "wall", "w":
		return Wall, true
	case "floor", "f":
		return Floor, true
	case "door", "door-horizontal", "door-h", "d":
		return DoorHorizontal, true
	case "door-vertical", "door-v":
		return DoorVertical, true
	default:
		return Wall, false
	}
}

// MarshalYAML encodes the tile by name.
func (t TileType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a tile name or glyph.
func (t *TileType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("maps: tile: %w", err)
	}
	v, ok := ParseTileType(s)
	if !ok {
		return fmt.Errorf("maps: unknown tile %q", s)
	}
	*t = v
	return nil
}
