package grid

import (
	"fmt"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Coordinate is the set of integer types a grid axis may use.
// Both components of a point must fit in half of a Key.
type Coordinate interface {
	~int8 | ~int16 | ~int32
}

// Priority is the set of types usable for path costs and search priorities.
type Priority interface {
	constraints.Integer | constraints.Float
}

// Key is the packed form of a Point.
type Key uint64

// Point is an unpacked (x, y) coordinate pair.
// It is comparable and is what the search uses as a map key.
type Point[C Coordinate] struct {
	X, Y C
}

var hashSeed = maphash.MakeSeed()

// Pack encodes x in the low half of the key and y in the half above it.
// The half width is the bit width of C.
func Pack[C Coordinate](x, y C) Key {
	w := bitWidth[C]()
	mask := uint64(1)<<w - 1
	return Key(uint64(x)&mask | (uint64(y)&mask)<<w)
}

// Unpack is the inverse of Pack.
func Unpack[C Coordinate](k Key) (x, y C) {
	w := bitWidth[C]()
	// integer conversion truncates to the width of C and keeps the sign
	return C(uint64(k)), C(uint64(k) >> w)
}

// bitWidth returns the number of bits in C.
func bitWidth[C Coordinate]() uint {
	var n uint
	for c := C(1); c != 0; c <<= 1 {
		n++
	}
	return n
}

// Key returns the packed form of p.
func (p Point[C]) Key() Key {
	return Pack(p.X, p.Y)
}

// Hash returns a hash of the (x, y) pair. Equal points hash equally for the
// lifetime of the process.
func (p Point[C]) Hash() uint64 {
	return maphash.Comparable(hashSeed, p)
}

// Add returns p offset by (dx, dy).
func (p Point[C]) Add(dx, dy int) Point[C] {
	return Point[C]{X: p.X + C(dx), Y: p.Y + C(dy)}
}

func (p Point[C]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
