package grid

import "iter"

// Blit copies a size-sized region of src starting at fromOffset into dst at
// toOffset. A cell is copied only when both its source and destination
// positions are in bounds; everything else is silently clipped.
func Blit[T any](dst *Grid[T], toOffset Point, size Size, src *Grid[T], fromOffset Point) {
	for y := range size.H {
		for x := range size.W {
			from := Point{X: x + fromOffset.X, Y: y + fromOffset.Y}
			to := Point{X: x + toOffset.X, Y: y + toOffset.Y}

			v, ok := src.Get(from)
			if !ok {
				continue
			}
			if ref := dst.Ref(to); ref != nil {
				*ref = v
			}
		}
	}
}

// Neighbors returns the in-bounds positions of the 8 cells around p,
// row by row, excluding p itself.
func (g *Grid[T]) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Point{X: p.X + dx, Y: p.Y + dy}
				if !g.InBounds(n) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}
