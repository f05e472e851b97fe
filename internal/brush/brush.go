// Package brush applies editing tools to a level: tile painting, player
// start placement and object placement or removal, one cell or a whole
// shape at a time.
package brush

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/sector-shift/internal/direction"
	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/maps"
	"github.com/vovakirdan/sector-shift/internal/shapes"
)

// Kind selects what a brush does to a cell.
type Kind uint8

const (
	Tile Kind = iota
	PlayerStart
	Enemy
	EraseEnemy
	Exit
	EraseExit
	Item
	EraseItem
)

var kindNames = map[Kind]string{
	Tile:        "tile",
	PlayerStart: "start",
	Enemy:       "enemy",
	EraseEnemy:  "erase-enemy",
	Exit:        "exit",
	EraseExit:   "erase-exit",
	Item:        "item",
	EraseItem:   "erase-item",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds returns every brush kind name in declaration order.
func Kinds() []string {
	names := make([]string, 0, len(kindNames))
	for k := Tile; k <= EraseItem; k++ {
		names = append(names, k.String())
	}
	return names
}

// Brush is one editing tool. Tile is used by Tile brushes, ID by the
// object brushes and Facing by PlayerStart.
type Brush struct {
	Kind   Kind
	Tile   maps.TileType
	ID     string
	Facing direction.Direction
}

// Parse builds a brush from a kind name and its argument:
//
//	tile <tile>          start [facing]
//	enemy <id>           erase-enemy
//	exit <level>         erase-exit
//	item <id>            erase-item
func Parse(kind, arg string) (Brush, error) {
	k, ok := parseKind(kind)
	if !ok {
		return Brush{}, fmt.Errorf("brush: unknown kind %q", kind)
	}

	b := Brush{Kind: k}
	switch k {
	case Tile:
		t, ok := maps.ParseTileType(arg)
		if !ok {
			return Brush{}, fmt.Errorf("brush: unknown tile %q", arg)
		}
		b.Tile = t
	case PlayerStart:
		b.Facing = direction.North
		if arg != "" {
			d, ok := direction.Parse(arg)
			if !ok || d == direction.None || d&direction.VerticalMask != 0 {
				return Brush{}, fmt.Errorf("brush: invalid facing %q", arg)
			}
			b.Facing = d
		}
	case Enemy, Exit, Item:
		if arg == "" {
			return Brush{}, fmt.Errorf("brush: %s needs an id", k)
		}
		b.ID = arg
	}
	return b, nil
}

func parseKind(s string) (Kind, bool) {
	s = strings.ReplaceAll(strings.ToLower(s), "_", "-")
	if s == "player-start" {
		return PlayerStart, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Tile, false
}

// Apply uses the brush on a single cell. Positions outside the level are
// ignored and report false.
func (b Brush) Apply(l *maps.Level, p grid.Point) bool {
	if !l.Tiles.InBounds(p) {
		return false
	}

	switch b.Kind {
	case Tile:
		l.Tiles.Set(p, b.Tile)
	case PlayerStart:
		l.SetPlayerStart(p, b.Facing)
	case Enemy:
		l.AddEnemy(p, b.ID)
	case EraseEnemy:
		l.RemoveEnemy(p)
	case Exit:
		l.AddExit(p, b.ID)
	case EraseExit:
		l.RemoveExit(p)
	case Item:
		l.AddItem(p, b.ID)
	case EraseItem:
		l.RemoveItem(p)
	default:
		return false
	}
	return true
}

// Paint applies the brush to every position of s and returns how many
// were inside the level. A PlayerStart brush ends on the last position.
func (b Brush) Paint(l *maps.Level, s shapes.Shape) int {
	n := 0
	for p := range s.Points() {
		if b.Apply(l, p) {
			n++
		}
	}
	return n
}

// Stroke paints a line from one cell to another, both included.
// The line is always rasterised from the row-major first endpoint, so a
// stroke and its reverse cover the same cells.
func (b Brush) Stroke(l *maps.Level, from, to grid.Point) int {
	line := shapes.NewLine(from, to)
	if to.Less(from) {
		line = line.Reverse()
	}
	return b.Paint(l, line)
}

func (b Brush) String() string {
	switch b.Kind {
	case Tile:
		return fmt.Sprintf("tile(%s)", b.Tile)
	case PlayerStart:
		return fmt.Sprintf("start(%s)", b.Facing.Name())
	case Enemy, Exit, Item:
		return fmt.Sprintf("%s(%s)", b.Kind, b.ID)
	default:
		return b.Kind.String()
	}
}
