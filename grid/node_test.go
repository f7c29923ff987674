package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_IdentityIgnoresPriorityAndMask(t *testing.T) {
	a := NewNode[int8, int16](4, 2)
	b := NewNode[int8, int16](4, 2)
	b.SetPriority(99)
	b.neighbors = North | West

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(NewNode[int8, int16](2, 4)))
}

func TestNode_Accessors(t *testing.T) {
	n := NodeFromKey[int16, int32](Pack[int16](-3, 9))
	assert.Equal(t, int16(-3), n.X())
	assert.Equal(t, int16(9), n.Y())
	assert.Equal(t, Point[int16]{X: -3, Y: 9}, n.Point())
	assert.Equal(t, None, n.Neighbors())
	assert.Equal(t, int32(0), n.Priority())

	n.SetPriority(12)
	assert.Equal(t, int32(12), n.Priority())
	assert.Equal(t, "Node[-3, 9]", n.String())
}

func TestDirection(t *testing.T) {
	mask := North | East
	assert.True(t, mask.Has(North))
	assert.True(t, mask.Has(North|East))
	assert.False(t, mask.Has(South))
	assert.False(t, mask.Has(None))
	assert.True(t, All.Has(West))

	assert.Equal(t, South|West, mask.Opposite())
	assert.Equal(t, All, All.Opposite())
	assert.Equal(t, None, None.Opposite())

	assert.Equal(t, "N|E", mask.String())
	assert.Equal(t, "ALL", All.String())
	assert.Equal(t, "NONE", None.String())
	assert.Equal(t, "S|W", (South | West).String())

	for _, d := range Cardinals {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 1, dx*dx+dy*dy)
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	assert.Equal(t, Direction(0xF), All)
}
