package raster

import "fmt"

// Shape holds the per-dimension extents of a raster.
// Dimension 0 is width (x), dimension 1 is height (y); any further
// dimensions are batch/channel axes carried through untouched.
type Shape []int

// NumElements returns the total number of elements in the raster.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates the memory strides for the shape.
// Dimension 0 is the fastest varying: consecutive flat offsets walk x
// first, then y, then the batch/channel dimensions.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// Coord decodes a flat offset into a coordinate tuple, one index per
// dimension.
func (s Shape) Coord(index int) Coordinates {
	coord := make(Coordinates, len(s))
	for i, dim := range s {
		coord[i] = index % dim
		index /= dim
	}
	return coord
}

// Index encodes a coordinate tuple into a flat offset. It is the
// inverse of Coord for in-bounds coordinates; out-of-bounds indices
// produce offsets outside the raster and must be resolved by the
// caller first.
func (s Shape) Index(coord Coordinates) int {
	index := 0
	stride := 1
	for i, dim := range s {
		index += coord[i] * stride
		stride *= dim
	}
	return index
}

// Coordinates is a tuple of integer indices, one per raster dimension.
type Coordinates []int

// X returns the index along dimension 0.
func (c Coordinates) X() int { return c[0] }

// Y returns the index along dimension 1.
func (c Coordinates) Y() int { return c[1] }

// Clone returns a copy of the coordinates.
func (c Coordinates) Clone() Coordinates {
	clone := make(Coordinates, len(c))
	copy(clone, c)
	return clone
}
