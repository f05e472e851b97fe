package direction

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the direction as its raw byte.
func (d Direction) MarshalYAML() (any, error) {
	return uint8(d), nil
}

// UnmarshalYAML accepts the raw byte or a canonical name such as NORTH_EAST.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("direction: expected scalar at line %d", node.Line)
	}

	if n, err := strconv.ParseUint(node.Value, 0, 8); err == nil {
		if Direction(n)&^(CardinalMask|VerticalMask) != 0 {
			return fmt.Errorf("direction: value %d has unknown flags", n)
		}
		*d = Direction(n)
		return nil
	}

	parsed, ok := Parse(node.Value)
	if !ok {
		return fmt.Errorf("direction: unknown direction %q", node.Value)
	}
	*d = parsed
	return nil
}
