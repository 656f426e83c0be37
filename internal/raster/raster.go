package raster

import "fmt"

// Raster is a dense, owned, element-typed buffer with an associated
// shape. Flat offsets walk dimension 0 (width) fastest; see
// Shape.Strides for the layout.
//
// Example:
//
//	r, err := raster.New[float32](raster.Shape{4, 4})
//	r.SetAt(0, 1.5)
//	v := r.AtCoord(raster.Coordinates{0, 0})
type Raster[T Element] struct {
	data   []T
	shape  Shape
	stride []int
}

// New creates a zero-initialized raster with the given shape.
func New[T Element](shape Shape) (*Raster[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Raster[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.Strides(),
	}, nil
}

// FromSlice creates a raster from a Go slice.
// The slice is copied into the raster's memory.
func FromSlice[T Element](data []T, shape Shape) (*Raster[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	r, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(r.data, data)
	return r, nil
}

// Full creates a raster filled with a specific value.
func Full[T Element](shape Shape, value T) (*Raster[T], error) {
	r, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range r.data {
		r.data[i] = value
	}
	return r, nil
}

// Shape returns the raster's shape.
func (r *Raster[T]) Shape() Shape {
	return r.shape
}

// DType returns the raster's runtime data type.
func (r *Raster[T]) DType() DataType {
	return TypeOf[T]()
}

// NumElements returns the total number of elements.
func (r *Raster[T]) NumElements() int {
	return len(r.data)
}

// Data returns a direct slice view of the raster's storage.
//
// WARNING: Modifications to the returned slice will modify the raster.
func (r *Raster[T]) Data() []T {
	return r.data
}

// At returns the element at the given flat offset.
// Panics if the offset is out of bounds.
func (r *Raster[T]) At(index int) T {
	if index < 0 || index >= len(r.data) {
		panic(fmt.Sprintf("flat offset %d out of bounds for %d elements", index, len(r.data)))
	}
	return r.data[index]
}

// SetAt sets the element at the given flat offset.
// Panics if the offset is out of bounds.
func (r *Raster[T]) SetAt(index int, value T) {
	if index < 0 || index >= len(r.data) {
		panic(fmt.Sprintf("flat offset %d out of bounds for %d elements", index, len(r.data)))
	}
	r.data[index] = value
}

// AtCoord returns the element at the given coordinates.
// Panics if any index is out of bounds.
func (r *Raster[T]) AtCoord(coord Coordinates) T {
	if len(coord) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(coord)))
	}
	offset := 0
	for i, idx := range coord {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return r.data[offset]
}

// Clone creates a deep copy of the raster.
func (r *Raster[T]) Clone() *Raster[T] {
	clone := &Raster[T]{
		data:   make([]T, len(r.data)),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
	copy(clone.data, r.data)
	return clone
}

// Equal reports whether two rasters have the same shape and identical
// element values. Elements compare with ==, so float32 NaN never
// compares equal.
func (r *Raster[T]) Equal(other *Raster[T]) bool {
	if !r.shape.Equal(other.shape) {
		return false
	}
	for i := range r.data {
		if r.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the raster.
func (r *Raster[T]) String() string {
	return fmt.Sprintf("Raster[%s]%v", r.DType(), r.shape)
}
