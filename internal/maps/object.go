package maps

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ObjectKind identifies what a MapObject places on a cell.
type ObjectKind uint8

const (
	Exit ObjectKind = iota
	Enemy
	Item
)

func (k ObjectKind) String() string {
	switch k {
	case Exit:
		return "exit"
	case Enemy:
		return "enemy"
	case Item:
		return "item"
	default:
		return "unknown"
	}
}

// Glyph returns the overlay character used by RenderASCII.
func (k ObjectKind) Glyph() rune {
	switch k {
	case Exit:
		return 'X'
	case Enemy:
		return 'E'
	case Item:
		return 'i'
	default:
		return '?'
	}
}

// ParseObjectKind converts "exit", "enemy" or "item" to a kind.
func ParseObjectKind(s string) (ObjectKind, bool) {
	switch strings.ToLower(s) {
	case "exit":
		return Exit, true
	case "enemy":
		return Enemy, true
	case "item":
		return Item, true
	default:
		return Exit, false
	}
}

func (k ObjectKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *ObjectKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("maps: object kind: %w", err)
	}
	v, ok := ParseObjectKind(s)
	if !ok {
		return fmt.Errorf("maps: unknown object kind %q", s)
	}
	*k = v
	return nil
}

// MapObject is something placed on a cell.
// For an Exit, ID is the name of the level it leads to; for enemies and
// items it is the library entry to spawn.
type MapObject struct {
	Kind ObjectKind `yaml:"kind"`
	ID   string     `yaml:"id"`
}

func (o MapObject) String() string {
	return fmt.Sprintf("%s(%s)", o.Kind, o.ID)
}
