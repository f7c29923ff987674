package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_RoundTripInt8(t *testing.T) {
	seen := make(map[Key]Point[int8], 1<<16)
	for x := math.MinInt8; x <= math.MaxInt8; x++ {
		for y := math.MinInt8; y <= math.MaxInt8; y++ {
			k := Pack(int8(x), int8(y))
			gx, gy := Unpack[int8](k)
			require.Equal(t, int8(x), gx)
			require.Equal(t, int8(y), gy)

			prev, dup := seen[k]
			require.Falsef(t, dup, "key %d shared by %v and (%d, %d)", k, prev, x, y)
			seen[k] = Point[int8]{X: int8(x), Y: int8(y)}
		}
	}
	assert.Len(t, seen, 1<<16)
}

func TestPack_RoundTripWide(t *testing.T) {
	cases16 := [][2]int16{{0, 0}, {1, -1}, {math.MaxInt16, math.MinInt16}, {-300, 4000}}
	for _, c := range cases16 {
		x, y := Unpack[int16](Pack(c[0], c[1]))
		assert.Equal(t, c[0], x)
		assert.Equal(t, c[1], y)
	}

	cases32 := [][2]int32{{0, 0}, {-1, 1}, {math.MaxInt32, math.MinInt32}, {70000, -70000}}
	for _, c := range cases32 {
		x, y := Unpack[int32](Pack(c[0], c[1]))
		assert.Equal(t, c[0], x)
		assert.Equal(t, c[1], y)
	}
}

func TestPack_Layout(t *testing.T) {
	assert.Equal(t, Key(0x0201), Pack[int8](1, 2))
	assert.Equal(t, Key(0x0002_0001), Pack[int16](1, 2))
	assert.Equal(t, Key(0xFFFF), Pack[int8](-1, -1))
}

type tile int16

func TestPack_NamedCoordinateType(t *testing.T) {
	x, y := Unpack[tile](Pack[tile](-5, 12))
	assert.Equal(t, tile(-5), x)
	assert.Equal(t, tile(12), y)
}

func TestPoint_Hash(t *testing.T) {
	a := Point[int16]{X: 3, Y: 7}
	b := Point[int16]{X: 3, Y: 7}
	x, y := Unpack[int16](Pack[int16](3, 7))
	c := Point[int16]{X: x, Y: y}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), c.Hash())
	assert.Equal(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Hash(), Point[int16]{X: 7, Y: 3}.Hash())
}
