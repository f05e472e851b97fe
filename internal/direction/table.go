package direction

import "iter"

// table holds every canonical direction in a fixed order.
// DO NOT REORDER: the iterators below slice it by index range.
var table = [26]Direction{
	North,         // 0
	East,          // 1
	South,         // 2
	West,          // 3
	NorthEast,     // 4
	SouthEast,     // 5
	SouthWest,     // 6
	NorthWest,     // 7
	Up,            // 8
	Down,          // 9
	UpNorth,       // 10
	UpNorthEast,   // 11
	UpEast,        // 12
	UpSouthEast,   // 13
	UpSouth,       // 14
	UpSouthWest,   // 15
	UpWest,        // 16
	UpNorthWest,   // 17
	DownNorth,     // 18
	DownNorthEast, // 19
	DownEast,      // 20
	DownSouthEast, // 21
	DownSouth,     // 22
	DownSouthWest, // 23
	DownWest,      // 24
	DownNorthWest, // 25
}

// Table returns a copy of the canonical direction table.
func Table() [26]Direction {
	return table
}

// Iter is a cursor over an inclusive range of the direction table.
type Iter struct {
	current int
	end     int
}

// Cardinal iterates NORTH, EAST, SOUTH, WEST.
func Cardinal() Iter { return Iter{current: 0, end: 3} }

// Ordinal iterates NORTH_EAST, SOUTH_EAST, SOUTH_WEST, NORTH_WEST.
func Ordinal() Iter { return Iter{current: 4, end: 7} }

// Vertical iterates UP, DOWN.
func Vertical() Iter { return Iter{current: 8, end: 9} }

// CardinalOrdinal iterates the four cardinals followed by the four ordinals.
func CardinalOrdinal() Iter { return Iter{current: 0, end: 7} }

// CardinalOrdinalVertical iterates the cardinals, ordinals, then UP and DOWN.
func CardinalOrdinalVertical() Iter { return Iter{current: 0, end: 9} }

// All3D iterates all 26 directions of the table.
func All3D() Iter { return Iter{current: 0, end: len(table) - 1} }

// Next returns the next direction and false once the range is exhausted.
func (it *Iter) Next() (Direction, bool) {
	if it.current > it.end {
		return None, false
	}
	d := table[it.current]
	it.current++
	return d, true
}

// Remaining returns how many directions Next will still produce.
func (it *Iter) Remaining() int {
	if it.current > it.end {
		return 0
	}
	return it.end - it.current + 1
}

// All returns the remaining directions as a sequence.
// The cursor is copied, so the sequence can be ranged over more than once.
func (it Iter) All() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for i := it.current; i <= it.end; i++ {
			if !yield(table[i]) {
				return
			}
		}
	}
}

// Slice collects the remaining directions.
func (it Iter) Slice() []Direction {
	out := make([]Direction, 0, it.Remaining())
	for d := range it.All() {
		out = append(out, d)
	}
	return out
}
