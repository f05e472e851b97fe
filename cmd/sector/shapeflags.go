package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/shapes"
)

// shapeFlags are the flags shared by commands that take a shape.
type shapeFlags struct {
	from   string
	to     string
	radius int
	border bool
}

func (f *shapeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "0,0", "First point or center, as x,y")
	cmd.Flags().StringVar(&f.to, "to", "", "Second point, as x,y (rect, line)")
	cmd.Flags().IntVar(&f.radius, "radius", 0, "Radius (circle, square)")
	cmd.Flags().BoolVar(&f.border, "border", false, "Use only the border of the shape")
}

// build creates the shape of the given kind from the flag values.
func (f *shapeFlags) build(kind string) (shapes.Shape, shapes.Spec, error) {
	spec := shapes.Spec{Kind: kind, Radius: f.radius, Border: f.border}

	from, err := parsePoint(f.from)
	if err != nil {
		return nil, spec, err
	}
	spec.From = from

	spec.To = from
	if f.to != "" {
		if spec.To, err = parsePoint(f.to); err != nil {
			return nil, spec, err
		}
	}

	s, err := shapes.Build(spec)
	if err != nil {
		return nil, spec, err
	}
	return s, spec, nil
}

// describeSpec formats a spec for the edit history.
func describeSpec(s shapes.Spec) string {
	var desc string
	switch s.Kind {
	case "circle", "square":
		desc = fmt.Sprintf("%s %v r=%d", s.Kind, s.From, s.Radius)
	case "point":
		desc = fmt.Sprintf("%s %v", s.Kind, s.From)
	default:
		desc = fmt.Sprintf("%s %v-%v", s.Kind, s.From, s.To)
	}
	if s.Border {
		desc += " border"
	}
	return desc
}
