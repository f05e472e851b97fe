package shapes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// Spec describes a shape by kind name so it can come from flags or YAML.
// Which fields matter depends on the kind.
type Spec struct {
	Kind   string     `yaml:"kind"`
	From   grid.Point `yaml:"from"`
	To     grid.Point `yaml:"to"`
	Radius int        `yaml:"radius,omitempty"`
	Border bool       `yaml:"border,omitempty"`
}

// Factory builds a shape from a spec.
type Factory func(s Spec) (Shape, error)

// KindInfo describes a registered shape kind.
type KindInfo struct {
	Kind        string
	Description string
	HasBorder   bool
}

type entry struct {
	factory Factory
	info    KindInfo
}

var (
	kinds = make(map[string]entry)
	mu    sync.RWMutex
)

func init() {
	Register(KindInfo{Kind: "rect", Description: "half-open rectangle between from and to", HasBorder: true},
		func(s Spec) (Shape, error) {
			return NewRectangle(s.From, s.To), nil
		})
	Register(KindInfo{Kind: "square", Description: "square of the given radius around from", HasBorder: true},
		func(s Spec) (Shape, error) {
			if s.Radius < 0 {
				return nil, fmt.Errorf("shapes: negative radius %d", s.Radius)
			}
			return RectangleFromCenter(s.From, s.Radius), nil
		})
	Register(KindInfo{Kind: "circle", Description: "filled circle of the given radius around from", HasBorder: true},
		func(s Spec) (Shape, error) {
			if s.Radius < 0 {
				return nil, fmt.Errorf("shapes: negative radius %d", s.Radius)
			}
			return NewCircle(s.From, s.Radius), nil
		})
	Register(KindInfo{Kind: "line", Description: "rasterised line from from to to"},
		func(s Spec) (Shape, error) {
			return NewLine(s.From, s.To), nil
		})
	Register(KindInfo{Kind: "point", Description: "the single cell at from"},
		func(s Spec) (Shape, error) {
			return NewLine(s.From, s.From), nil
		})
}

// Register adds a shape kind.
// Panics if the kind is empty or already registered.
func Register(info KindInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.Kind == "" {
		panic("shapes: empty kind")
	}
	if _, exists := kinds[info.Kind]; exists {
		panic(fmt.Sprintf("shapes: kind %q already registered", info.Kind))
	}
	kinds[info.Kind] = entry{factory: f, info: info}
}

// Kinds returns all registered kinds sorted by name.
func Kinds() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(kinds))
	for _, e := range kinds {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Build creates the shape described by s. With s.Border set the result is
// the perimeter of the shape.
func Build(s Spec) (Shape, error) {
	mu.RLock()
	e, ok := kinds[s.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("shapes: unknown kind %q", s.Kind)
	}

	shape, err := e.factory(s)
	if err != nil {
		return nil, err
	}
	if !s.Border {
		return shape, nil
	}

	b, ok := shape.(ShapeWithBorder)
	if !ok {
		return nil, fmt.Errorf("shapes: kind %q has no border", s.Kind)
	}
	return Border(b), nil
}
