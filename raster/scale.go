// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/born-ml/raster/internal/reference"
)

// InterpolationPolicy selects how a destination value is computed from
// neighboring source values.
type InterpolationPolicy = reference.InterpolationPolicy

// Interpolation policy constants.
const (
	NearestNeighbor InterpolationPolicy = reference.NearestNeighbor
	Bilinear        InterpolationPolicy = reference.Bilinear
	Area            InterpolationPolicy = reference.Area
)

// Sentinel errors returned by Scale. Match with errors.Is.
var (
	ErrInvalidRequest    = reference.ErrInvalidRequest
	ErrUnsupportedPolicy = reference.ErrUnsupportedPolicy
	ErrDegenerateBox     = reference.ErrDegenerateBox
)

// ParsePolicy converts a policy name into an InterpolationPolicy.
func ParsePolicy(s string) (InterpolationPolicy, error) {
	return reference.ParsePolicy(s)
}

// Scale resamples the two spatial dimensions of in by scaleX and
// scaleY and returns a freshly allocated raster; batch/channel
// dimensions and the element type are carried through unchanged.
//
// Example:
//
//	out, err := raster.Scale(in, 0.5, 0.5, raster.Area,
//	    raster.BorderConstant, uint8(0))
func Scale[T Element](in *Raster[T], scaleX, scaleY float32, policy InterpolationPolicy, border BorderMode, constant T) (*Raster[T], error) {
	return reference.Scale(in, scaleX, scaleY, policy, border, constant)
}
