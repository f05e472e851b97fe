package maps

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// RenderASCII dumps a level as text for debugging and golden tests.
//
// Format:
//   - Header with name, size and object count
//   - One line per row, row 0 first, each cell drawn by CellGlyph
//   - A listing of every object, sorted by position
func RenderASCII(l *Level) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Level: %s | Size: %v | Objects: %d\n", l.Name, l.Tiles.Size(), l.ObjectCount())
	sb.WriteString(strings.Repeat("-", l.Width()) + "\n")

	for y, row := range l.Tiles.Rows() {
		for x, t := range row {
			sb.WriteRune(CellGlyph(l, grid.Point{X: x, Y: y}, t))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("-", l.Width()) + "\n")
	fmt.Fprintf(&sb, "Start: %v facing %s\n", l.Start.Position, l.Start.Facing.Name())
	for _, p := range l.ObjectPositions() {
		for _, o := range l.Objects[p] {
			fmt.Fprintf(&sb, "%v %s %s\n", p, o.Kind, o.ID)
		}
	}

	return sb.String()
}

// CellGlyph returns the character drawn for the cell at p holding tile t:
// '@' for the player start, else the glyph of the first object on the cell,
// else the tile glyph.
func CellGlyph(l *Level, p grid.Point, t TileType) rune {
	if p == l.Start.Position {
		return '@'
	}
	if objs := l.Objects[p]; len(objs) > 0 {
		return objs[0].Kind.Glyph()
	}
	return t.Glyph()
}
