// Package direction provides the Direction bit set used for facings,
// adjacency and movement on a tile grid.
// It contains no external dependencies besides YAML encoding support.
package direction

import (
	"math/bits"
	"strings"
)

// Direction is a set of up to six facing flags stored in a single byte.
// Opposite flags may be set at the same time; Simplify cancels them out.
type Direction uint8

// Single flags.
const (
	North Direction = 1 << iota
	East
	South
	West
	Up
	Down
)

// None is the empty direction.
const None Direction = 0

// Ordinal (diagonal) directions.
const (
	NorthEast = North | East
	SouthEast = South | East
	SouthWest = South | West
	NorthWest = North | West
)

// Vertical combinations.
const (
	UpNorth     = Up | North
	UpNorthEast = Up | North | East
	UpEast      = Up | East
	UpSouthEast = Up | South | East
	UpSouth     = Up | South
	UpSouthWest = Up | South | West
	UpWest      = Up | West
	UpNorthWest = Up | North | West

	DownNorth     = Down | North
	DownNorthEast = Down | North | East
	DownEast      = Down | East
	DownSouthEast = Down | South | East
	DownSouth     = Down | South
	DownSouthWest = Down | South | West
	DownWest      = Down | West
	DownNorthWest = Down | North | West
)

// Masks.
const (
	CardinalMask = North | East | South | West
	VerticalMask = Up | Down
)

// Has returns true if every flag of f is set in d.
func (d Direction) Has(f Direction) bool {
	return d&f == f
}

// HasNorth returns true if the NORTH flag is set.
func (d Direction) HasNorth() bool { return d&North != 0 }

// HasEast returns true if the EAST flag is set.
func (d Direction) HasEast() bool { return d&East != 0 }

// HasSouth returns true if the SOUTH flag is set.
func (d Direction) HasSouth() bool { return d&South != 0 }

// HasWest returns true if the WEST flag is set.
func (d Direction) HasWest() bool { return d&West != 0 }

// HasUp returns true if the UP flag is set.
func (d Direction) HasUp() bool { return d&Up != 0 }

// HasDown returns true if the DOWN flag is set.
func (d Direction) HasDown() bool { return d&Down != 0 }

// Coord returns the 2D unit offset of the direction.
// EAST is +1 and WEST is -1 on X, NORTH is +1 and SOUTH is -1 on Y.
func (d Direction) Coord() (x, y int) {
	x = b2i(d.HasEast()) - b2i(d.HasWest())
	y = b2i(d.HasNorth()) - b2i(d.HasSouth())
	return x, y
}

// Coord3D returns the 3D unit offset of the direction.
// UP is +1 and DOWN is -1 on Z.
func (d Direction) Coord3D() (x, y, z int) {
	x, y = d.Coord()
	z = b2i(d.HasUp()) - b2i(d.HasDown())
	return x, y, z
}

// FromCoord builds a direction from the signs of a 2D offset.
func FromCoord(x, y int) Direction {
	return FromCoord3D(x, y, 0)
}

// FromCoord3D builds a direction from the signs of a 3D offset.
// Zero components contribute no flag.
func FromCoord3D(x, y, z int) Direction {
	d := None

	switch {
	case x < 0:
		d |= West
	case x > 0:
		d |= East
	}

	switch {
	case y < 0:
		d |= South
	case y > 0:
		d |= North
	}

	switch {
	case z < 0:
		d |= Down
	case z > 0:
		d |= Up
	}

	return d
}

// Left45 rotates counter clockwise by one step.
// NORTH becomes NORTH_WEST, NORTH_EAST becomes NORTH.
func (d Direction) Left45() Direction {
	return d.rotate45(d.Left90())
}

// Left90 rotates counter clockwise by two steps.
// NORTH becomes WEST, NORTH_EAST becomes NORTH_WEST.
func (d Direction) Left90() Direction {
	r := d & VerticalMask
	if d.HasNorth() {
		r |= West
	}
	if d.HasEast() {
		r |= North
	}
	if d.HasSouth() {
		r |= East
	}
	if d.HasWest() {
		r |= South
	}
	return r
}

// Left135 rotates counter clockwise by three steps.
// NORTH becomes SOUTH_WEST, NORTH_EAST becomes WEST.
func (d Direction) Left135() Direction {
	return d.Left90().Left45()
}

// Right45 rotates clockwise by one step.
// NORTH becomes NORTH_EAST, NORTH_EAST becomes EAST.
func (d Direction) Right45() Direction {
	return d.rotate45(d.Right90())
}

// Right90 rotates clockwise by two steps.
// NORTH becomes EAST, NORTH_EAST becomes SOUTH_EAST.
func (d Direction) Right90() Direction {
	r := d & VerticalMask
	if d.HasNorth() {
		r |= East
	}
	if d.HasEast() {
		r |= South
	}
	if d.HasSouth() {
		r |= West
	}
	if d.HasWest() {
		r |= North
	}
	return r
}

// Right135 rotates clockwise by three steps.
// NORTH becomes SOUTH_EAST, NORTH_EAST becomes SOUTH.
func (d Direction) Right135() Direction {
	return d.Right90().Right45()
}

// rotate45 merges a cardinal with its 90 degree rotation into an ordinal,
// or strips an ordinal back down to the cardinal both share.
func (d Direction) rotate45(rotated Direction) Direction {
	if bits.OnesCount8(uint8(d&CardinalMask)) == 1 {
		return d | rotated
	}
	return d & rotated
}

// Opposite returns the direction with every axis negated.
func (d Direction) Opposite() Direction {
	x, y, z := d.Coord3D()
	return FromCoord3D(-x, -y, -z)
}

// IsCardinal returns true if exactly one horizontal axis is populated.
// UP and DOWN are ignored, so UP_NORTH is cardinal and UP alone is not.
func (d Direction) IsCardinal() bool {
	ns := d.HasNorth() || d.HasSouth()
	ew := d.HasEast() || d.HasWest()
	return ns != ew
}

// IsOrdinal returns true if both horizontal axes are populated.
// UP and DOWN are ignored, so UP_NORTH_EAST is ordinal.
func (d Direction) IsOrdinal() bool {
	return (d.HasNorth() || d.HasSouth()) && (d.HasEast() || d.HasWest())
}

// Simplify clears every axis whose two opposing flags are both set.
func (d Direction) Simplify() Direction {
	if d.Has(North | South) {
		d &^= North | South
	}
	if d.Has(East | West) {
		d &^= East | West
	}
	if d.Has(Up | Down) {
		d &^= Up | Down
	}
	return d
}

// Add returns the union of both directions.
func (d Direction) Add(o Direction) Direction { return d | o }

// Union is the same as Add.
func (d Direction) Union(o Direction) Direction { return d | o }

// Sub returns d with the flags of o cleared.
func (d Direction) Sub(o Direction) Direction { return d &^ o }

// Intersect returns the flags present in both directions.
func (d Direction) Intersect(o Direction) Direction { return d & o }

// Xor returns the flags present in exactly one of the directions.
func (d Direction) Xor(o Direction) Direction { return d ^ o }

var flagNames = [...]struct {
	flag Direction
	name string
}{
	{North, "NORTH"},
	{East, "EAST"},
	{South, "SOUTH"},
	{West, "WEST"},
	{Up, "UP"},
	{Down, "DOWN"},
}

// String returns the set flags joined by ", ", or "NO-DIRECTION".
func (d Direction) String() string {
	var parts []string
	for _, f := range flagNames {
		if d&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "NO-DIRECTION"
	}
	return strings.Join(parts, ", ")
}

// Name returns the canonical constant-style name, e.g. "UP_NORTH_EAST".
// Vertical flags come first, then NORTH/SOUTH, then EAST/WEST.
func (d Direction) Name() string {
	if d == None {
		return "NONE"
	}
	var parts []string
	for _, f := range [...]struct {
		flag Direction
		name string
	}{
		{Up, "UP"}, {Down, "DOWN"},
		{North, "NORTH"}, {South, "SOUTH"},
		{East, "EAST"}, {West, "WEST"},
	} {
		if d&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "_")
}

// Parse converts a canonical name ("NORTH_EAST", "up-north", "none") into a
// direction. Words may be separated by '_', '-', ' ' or ','.
func Parse(s string) (Direction, bool) {
	fields := strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return None, false
	}
	if len(fields) == 1 && fields[0] == "NONE" {
		return None, true
	}

	d := None
	for _, word := range fields {
		found := false
		for _, f := range flagNames {
			if f.name == word {
				d |= f.flag
				found = true
				break
			}
		}
		if !found {
			return None, false
		}
	}
	return d, true
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
