package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New[float32](Shape{4, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{4, 3}, r.Shape())
	assert.Equal(t, F32, r.DType())
	assert.Equal(t, 12, r.NumElements())
	for _, v := range r.Data() {
		assert.Zero(t, v)
	}
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New[uint8](Shape{4, 0})
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	r, err := FromSlice([]int16{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	require.NoError(t, err)

	assert.Equal(t, Int16, r.DType())
	assert.Equal(t, int16(1), r.AtCoord(Coordinates{0, 0}))
	assert.Equal(t, int16(3), r.AtCoord(Coordinates{2, 0}))
	assert.Equal(t, int16(4), r.AtCoord(Coordinates{0, 1}))
	assert.Equal(t, int16(6), r.At(5))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]uint8{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestFull(t *testing.T) {
	r, err := Full(Shape{2, 2}, uint8(7))
	require.NoError(t, err)
	for _, v := range r.Data() {
		assert.Equal(t, uint8(7), v)
	}
}

func TestRaster_SetAt(t *testing.T) {
	r, err := New[float32](Shape{2, 2})
	require.NoError(t, err)

	r.SetAt(3, 1.5)
	assert.Equal(t, float32(1.5), r.At(3))
	assert.Equal(t, float32(1.5), r.AtCoord(Coordinates{1, 1}))

	assert.Panics(t, func() { r.SetAt(4, 0) })
	assert.Panics(t, func() { r.At(-1) })
	assert.Panics(t, func() { r.AtCoord(Coordinates{2, 0}) })
	assert.Panics(t, func() { r.AtCoord(Coordinates{0}) })
}

func TestRaster_Clone(t *testing.T) {
	r, err := FromSlice([]uint8{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := r.Clone()
	require.True(t, r.Equal(c))

	c.SetAt(0, 99)
	assert.Equal(t, uint8(1), r.At(0), "clone must not share storage")
	assert.False(t, r.Equal(c))
}

func TestRaster_Equal(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]float32{1, 2, 3, 4}, Shape{4, 1})
	require.NoError(t, err)

	assert.False(t, a.Equal(b), "same data, different shape")
}

func TestRaster_Float16(t *testing.T) {
	r, err := FromSlice([]Float16{Float16One, ToFloat16(2)}, Shape{2, 1})
	require.NoError(t, err)

	assert.Equal(t, F16, r.DType())
	assert.Equal(t, float32(2), r.At(1).Float32())
}

func TestConvert_RoundTrip(t *testing.T) {
	assert.Equal(t, float32(200), ToFloat32(uint8(200)))
	assert.Equal(t, float32(-300), ToFloat32(int16(-300)))
	assert.Equal(t, float32(1), ToFloat32(Float16One))
	assert.Equal(t, float32(2.5), ToFloat32(float32(2.5)))

	// Integer narrowing truncates toward zero.
	assert.Equal(t, uint8(3), FromFloat32[uint8](3.9))
	assert.Equal(t, int16(-3), FromFloat32[int16](-3.9))
	assert.Equal(t, ToFloat16(1.5), FromFloat32[Float16](1.5))
	assert.Equal(t, float32(3.9), FromFloat32[float32](3.9))
}
