// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/born-ml/raster/internal/raster"
)

// Type aliases for public API

// Element is a constraint for raster element types.
// Supported types: uint8, int16, Float16, float32.
type Element = raster.Element

// DataType represents the underlying data type of a raster.
type DataType = raster.DataType

// Data type constants.
const (
	Uint8 DataType = raster.Uint8
	Int16 DataType = raster.Int16
	F16   DataType = raster.F16
	F32   DataType = raster.F32
)

// Float16 is an IEEE 754 half-precision value stored as uint16.
type Float16 = raster.Float16

// ToFloat16 narrows a float32 to half precision with round-to-nearest-even.
func ToFloat16(f float32) Float16 {
	return raster.ToFloat16(f)
}

// Shape holds the per-dimension extents of a raster.
// Dimension 0 is width, dimension 1 is height.
type Shape = raster.Shape

// Coordinates is a tuple of integer indices, one per raster dimension.
type Coordinates = raster.Coordinates

// BorderMode selects the rule applied when a sampled coordinate falls
// outside the raster bounds.
type BorderMode = raster.BorderMode

// Border mode constants.
const (
	BorderConstant  BorderMode = raster.BorderConstant
	BorderReplicate BorderMode = raster.BorderReplicate
	BorderUndefined BorderMode = raster.BorderUndefined
)

// Raster is an owned, dense, element-typed buffer with a shape.
//
// Example:
//
//	r, _ := raster.New[uint8](raster.Shape{640, 480, 3})
type Raster[T Element] = raster.Raster[T]

// Creation functions

// New creates a zero-initialized raster with the given shape.
func New[T Element](shape Shape) (*Raster[T], error) {
	return raster.New[T](shape)
}

// FromSlice creates a raster from a Go slice, copying the data.
func FromSlice[T Element](data []T, shape Shape) (*Raster[T], error) {
	return raster.FromSlice(data, shape)
}

// Full creates a raster filled with a specific value.
func Full[T Element](shape Shape, value T) (*Raster[T], error) {
	return raster.Full(shape, value)
}
