package maps

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sector-shift/internal/direction"
	"github.com/vovakirdan/sector-shift/internal/grid"
)

// levelFile is the on-disk layout of a level. Tiles are stored one string
// per row using tile glyphs, row 0 first.
type levelFile struct {
	Name    string       `yaml:"name"`
	Size    grid.Size    `yaml:"size,flow"`
	Tiles   []string     `yaml:"tiles"`
	Start   startFile    `yaml:"player_start"`
	Objects []objectFile `yaml:"objects,omitempty"`
}

type startFile struct {
	Position grid.Point `yaml:"position,flow"`
	Facing   facing     `yaml:"facing"`
}

// facing writes directions by name. Reading also accepts the raw byte.
type facing direction.Direction

func (f facing) MarshalYAML() (any, error) {
	return direction.Direction(f).Name(), nil
}

func (f *facing) UnmarshalYAML(node *yaml.Node) error {
	return (*direction.Direction)(f).UnmarshalYAML(node)
}

type objectFile struct {
	At   grid.Point `yaml:"at,flow"`
	Kind ObjectKind `yaml:"kind"`
	ID   string     `yaml:"id"`
}

// MarshalYAML encodes the level with objects sorted by position.
func (l *Level) MarshalYAML() (any, error) {
	f := levelFile{
		Name:  l.Name,
		Size:  l.Tiles.Size(),
		Tiles: make([]string, 0, l.Height()),
		Start: startFile{Position: l.Start.Position, Facing: facing(l.Start.Facing)},
	}

	var sb strings.Builder
	for _, row := range l.Tiles.Rows() {
		sb.Reset()
		for _, t := range row {
			sb.WriteRune(t.Glyph())
		}
		f.Tiles = append(f.Tiles, sb.String())
	}

	for _, p := range l.ObjectPositions() {
		for _, o := range l.Objects[p] {
			f.Objects = append(f.Objects, objectFile{At: p, Kind: o.Kind, ID: o.ID})
		}
	}

	return f, nil
}

// UnmarshalYAML decodes a level. Structural validation is left to Decode.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var f levelFile
	if err := node.Decode(&f); err != nil {
		return err
	}

	if f.Size.W < 0 || f.Size.H < 0 {
		return fmt.Errorf("maps: negative level size %v", f.Size)
	}
	if len(f.Tiles) != f.Size.H {
		return fmt.Errorf("maps: level has %d tile rows, size says %d", len(f.Tiles), f.Size.H)
	}

	data := make([]TileType, 0, f.Size.Area())
	for y, row := range f.Tiles {
		runes := []rune(row)
		if len(runes) != f.Size.W {
			return fmt.Errorf("maps: tile row %d has %d cells, expected %d", y, len(runes), f.Size.W)
		}
		for x, r := range runes {
			t, ok := TileFromGlyph(r)
			if !ok {
				return fmt.Errorf("maps: unknown tile glyph %q at (%d,%d)", r, x, y)
			}
			data = append(data, t)
		}
	}

	*l = Level{
		Name:    f.Name,
		Tiles:   grid.New(f.Size, data),
		Start:   PlayerStart{Position: f.Start.Position, Facing: direction.Direction(f.Start.Facing)},
		Objects: make(map[grid.Point][]MapObject),
	}
	for _, o := range f.Objects {
		l.addObject(o.At, o.Kind, o.ID)
	}
	return nil
}

// Encode serialises a level to YAML.
func Encode(l *Level) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("maps: encode %s: %w", l.Name, err)
	}
	return data, nil
}

// Decode parses and validates a YAML level.
func Decode(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("maps: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}
