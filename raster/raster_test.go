// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package raster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The public package is a thin re-export; these tests exercise the API
// surface end to end rather than the kernels (covered internally).

func TestPublicAPI_ScaleRoundTrip(t *testing.T) {
	in, err := FromSlice([]uint8{
		10, 20,
		30, 40,
	}, Shape{2, 2})
	require.NoError(t, err)

	out, err := Scale(in, 2, 2, NearestNeighbor, BorderReplicate, 0)
	require.NoError(t, err)

	assert.Equal(t, Shape{4, 4}, out.Shape())
	assert.Equal(t, uint8(10), out.AtCoord(Coordinates{1, 1}))
	assert.Equal(t, uint8(40), out.AtCoord(Coordinates{3, 3}))
}

func TestPublicAPI_Errors(t *testing.T) {
	in, err := New[float32](Shape{4, 4})
	require.NoError(t, err)

	_, err = Scale(in, -1, 1, Bilinear, BorderConstant, 0)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = Scale(in, 2, 2, InterpolationPolicy(99), BorderConstant, 0)
	assert.True(t, errors.Is(err, ErrUnsupportedPolicy))
}

func TestPublicAPI_Types(t *testing.T) {
	assert.Equal(t, "float16", F16.String())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, float32(1.5), ToFloat16(1.5).Float32())

	r, err := Full(Shape{3, 3}, ToFloat16(2))
	require.NoError(t, err)
	assert.Equal(t, F16, r.DType())

	p, err := ParsePolicy("area")
	require.NoError(t, err)
	assert.Equal(t, Area, p)
}
