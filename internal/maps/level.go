package maps

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/vovakirdan/sector-shift/internal/direction"
	"github.com/vovakirdan/sector-shift/internal/grid"
)

// DefaultSize is the size of a level created without explicit dimensions.
var DefaultSize = grid.Size{W: 32, H: 32}

// PlayerStart is where the player spawns and which way they face.
type PlayerStart struct {
	Position grid.Point
	Facing   direction.Direction
}

// Level is a named tile grid with a player start and placed objects.
type Level struct {
	Name    string
	Tiles   *grid.Grid[TileType]
	Start   PlayerStart
	Objects map[grid.Point][]MapObject
}

// NewLevel creates a level of solid walls with the player at (0,0)
// facing north.
func NewLevel(name string, size grid.Size) *Level {
	return &Level{
		Name:    name,
		Tiles:   grid.NewDefault[TileType](size),
		Start:   PlayerStart{Facing: direction.North},
		Objects: make(map[grid.Point][]MapObject),
	}
}

// Width returns the number of tile columns.
func (l *Level) Width() int { return l.Tiles.Width() }

// Height returns the number of tile rows.
func (l *Level) Height() int { return l.Tiles.Height() }

// SetPlayerStart moves the player start.
func (l *Level) SetPlayerStart(p grid.Point, facing direction.Direction) {
	l.Start = PlayerStart{Position: p, Facing: facing}
}

// AddExit places or replaces the exit at p.
func (l *Level) AddExit(p grid.Point, target string) { l.addObject(p, Exit, target) }

// RemoveExit removes the exit at p, if any.
func (l *Level) RemoveExit(p grid.Point) { l.removeObject(p, Exit) }

// AddEnemy places or replaces the enemy at p.
func (l *Level) AddEnemy(p grid.Point, id string) { l.addObject(p, Enemy, id) }

// RemoveEnemy removes the enemy at p, if any.
func (l *Level) RemoveEnemy(p grid.Point) { l.removeObject(p, Enemy) }

// AddItem places or replaces the item at p.
func (l *Level) AddItem(p grid.Point, id string) { l.addObject(p, Item, id) }

// RemoveItem removes the item at p, if any.
func (l *Level) RemoveItem(p grid.Point) { l.removeObject(p, Item) }

// A cell holds at most one object of each kind.
func (l *Level) addObject(p grid.Point, kind ObjectKind, id string) {
	if l.Objects == nil {
		l.Objects = make(map[grid.Point][]MapObject)
	}
	objs := l.Objects[p]
	for i := range objs {
		if objs[i].Kind == kind {
			objs[i].ID = id
			return
		}
	}
	l.Objects[p] = append(objs, MapObject{Kind: kind, ID: id})
}

func (l *Level) removeObject(p grid.Point, kind ObjectKind) {
	objs, ok := l.Objects[p]
	if !ok {
		return
	}
	objs = slices.DeleteFunc(objs, func(o MapObject) bool { return o.Kind == kind })
	if len(objs) == 0 {
		delete(l.Objects, p)
		return
	}
	l.Objects[p] = objs
}

// ObjectsAt returns a copy of the objects placed at p.
func (l *Level) ObjectsAt(p grid.Point) []MapObject {
	return slices.Clone(l.Objects[p])
}

// ObjectPositions returns every position holding objects in row-major order.
func (l *Level) ObjectPositions() []grid.Point {
	positions := make([]grid.Point, 0, len(l.Objects))
	for p := range l.Objects {
		positions = append(positions, p)
	}
	slices.SortFunc(positions, func(a, b grid.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return positions
}

// ObjectCount returns the number of placed objects.
func (l *Level) ObjectCount() int {
	n := 0
	for _, objs := range l.Objects {
		n += len(objs)
	}
	return n
}

// ExposedTiles yields every tile with at least one non-wall neighbour.
// Tiles buried inside solid rock are skipped; these are the only cells a
// spawner has to build.
func (l *Level) ExposedTiles() iter.Seq2[grid.Point, TileType] {
	return func(yield func(grid.Point, TileType) bool) {
		for p, tile := range l.Tiles.Enumerate() {
			if l.enclosed(p) {
				continue
			}
			if !yield(p, tile) {
				return
			}
		}
	}
}

func (l *Level) enclosed(p grid.Point) bool {
	for n := range l.Tiles.Neighbors(p) {
		if l.Tiles.At(n) != Wall {
			return false
		}
	}
	return true
}

// Count returns the number of tiles of type t.
func (l *Level) Count(t TileType) int {
	n := 0
	for v := range l.Tiles.All() {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := &Level{
		Name:    l.Name,
		Tiles:   l.Tiles.Clone(),
		Start:   l.Start,
		Objects: make(map[grid.Point][]MapObject, len(l.Objects)),
	}
	for p, objs := range l.Objects {
		c.Objects[p] = slices.Clone(objs)
	}
	return c
}

// Validate reports every structural problem with the level.
func (l *Level) Validate() error {
	var errs []error

	if err := ValidateName(l.Name); err != nil {
		errs = append(errs, err)
	}
	if l.Tiles == nil {
		return errors.Join(append(errs, errors.New("maps: level has no tiles"))...)
	}
	if !l.Tiles.InBounds(l.Start.Position) {
		errs = append(errs, fmt.Errorf("maps: player start %v outside %v level", l.Start.Position, l.Tiles.Size()))
	}
	if f := l.Start.Facing; f == direction.None || f&direction.VerticalMask != 0 || f.Simplify() != f {
		errs = append(errs, fmt.Errorf("maps: invalid player facing %s", f))
	}
	for _, p := range l.ObjectPositions() {
		if !l.Tiles.InBounds(p) {
			errs = append(errs, fmt.Errorf("maps: objects at %v outside %v level", p, l.Tiles.Size()))
		}
		for _, o := range l.Objects[p] {
			if o.ID == "" {
				errs = append(errs, fmt.Errorf("maps: %s at %v has no id", o.Kind, p))
			}
		}
	}

	return errors.Join(errs...)
}

// ValidateName checks that name can be used as a level file name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New("maps: level name is empty")
	case strings.ContainsAny(name, `/\:`) || name == "." || name == "..":
		return fmt.Errorf("maps: invalid level name %q", name)
	default:
		return nil
	}
}
