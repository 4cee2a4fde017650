package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStridePositionColor(t *testing.T) {
	// position(3xfloat32) + color(4xfloat32) => 28 byte records.
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 3, Float32, false))
	require.NoError(t, l.AddAttribute(1, 4, Float32, false))
	l.Finalize()

	assert.Equal(t, 28, l.Stride())

	attrs := l.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, 0, attrs[0].Offset)
	assert.Equal(t, 12, attrs[1].Offset)
}

func TestLayoutStrideMixedTypesAligned(t *testing.T) {
	// 3xfloat32 position + 4xuint8 color: the color packs right after the
	// position (byte alignment), the stride pads back up to 4.
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 3, Float32, false))
	require.NoError(t, l.AddAttribute(1, 4, Uint8, true))
	l.Finalize()

	assert.Equal(t, 16, l.Stride())

	// uint16 texcoords after a 3-byte field must land on a 2-byte boundary.
	l2 := NewLayout()
	require.NoError(t, l2.AddAttribute(0, 3, Uint8, false))
	require.NoError(t, l2.AddAttribute(1, 2, Uint16, false))
	l2.Finalize()

	attrs := l2.Attributes()
	assert.Equal(t, 4, attrs[1].Offset)
	assert.Equal(t, 8, l2.Stride())
}

func TestLayoutOffsetsAscendingAndNonOverlapping(t *testing.T) {
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 2, Float32, false))
	require.NoError(t, l.AddAttribute(1, 2, Float32, false))
	require.NoError(t, l.AddAttribute(2, 4, Uint8, true))
	l.Finalize()

	attrs := l.Attributes()
	prevEnd := 0
	for _, a := range attrs {
		assert.GreaterOrEqual(t, a.Offset, prevEnd, "attributes must not overlap")
		prevEnd = a.Offset + a.Size()
	}
	assert.LessOrEqual(t, prevEnd, l.Stride())
}

func TestLayoutDuplicateSlot(t *testing.T) {
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 3, Float32, false))

	err := l.AddAttribute(0, 4, Float32, false)
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	// Order does not matter, later slots collide just the same.
	require.NoError(t, l.AddAttribute(5, 2, Float32, false))
	err = l.AddAttribute(5, 2, Float32, false)
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestLayoutInvalidComponentCount(t *testing.T) {
	l := NewLayout()
	assert.ErrorIs(t, l.AddAttribute(0, 0, Float32, false), ErrInvalidComponentCount)
	assert.ErrorIs(t, l.AddAttribute(0, 5, Float32, false), ErrInvalidComponentCount)
	assert.ErrorIs(t, l.AddAttribute(0, -1, Float32, false), ErrInvalidComponentCount)
}

func TestLayoutFrozenRejectsAdd(t *testing.T) {
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 3, Float32, false))
	l.Finalize()

	assert.ErrorIs(t, l.AddAttribute(1, 4, Float32, false), ErrLayoutFrozen)
	assert.True(t, l.Frozen())

	// Finalize is idempotent.
	stride := l.Stride()
	l.Finalize()
	assert.Equal(t, stride, l.Stride())
}

func TestComponentTypeSizes(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 4, Uint32.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 2, Uint16.Size())
	assert.Equal(t, 1, Int8.Size())
	assert.Equal(t, 1, Uint8.Size())
}

func TestLayoutAttributesReturnsCopy(t *testing.T) {
	l := NewLayout()
	require.NoError(t, l.AddAttribute(0, 3, Float32, false))
	l.Finalize()

	attrs := l.Attributes()
	attrs[0].Offset = 999

	assert.Equal(t, 0, l.Attributes()[0].Offset)
}
