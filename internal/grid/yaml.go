package grid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlGrid is the on-disk layout of a grid: its size and flat data.
type yamlGrid[T any] struct {
	Size [2]int `yaml:"size,flow"`
	Data []T    `yaml:"data,flow"`
}

// MarshalYAML encodes the grid as {size: [w, h], data: [...]}.
func (g *Grid[T]) MarshalYAML() (any, error) {
	return yamlGrid[T]{Size: [2]int{g.size.W, g.size.H}, Data: g.data}, nil
}

// UnmarshalYAML decodes a grid and checks the data length against the size.
func (g *Grid[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlGrid[T]
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	size := Size{W: raw.Size[0], H: raw.Size[1]}
	if err := checkSize(size); err != nil {
		return err
	}
	if len(raw.Data) != size.Area() {
		return fmt.Errorf("grid: data length %d does not match grid size %v", len(raw.Data), size)
	}
	if raw.Data == nil {
		raw.Data = []T{}
	}

	g.size = size
	g.data = raw.Data
	return nil
}
