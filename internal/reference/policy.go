// Package reference implements the ground-truth 2D raster resampler.
// It favors literal, numerically careful arithmetic over speed: the
// output of Scale is the value optimized kernels are compared against,
// so every rounding step is fixed and reproducible.
package reference

import (
	"fmt"
	"strings"
)

// InterpolationPolicy selects how a destination value is computed from
// neighboring source values.
type InterpolationPolicy int

// Supported interpolation policies.
const (
	// NearestNeighbor picks the single closest source pixel.
	NearestNeighbor InterpolationPolicy = iota
	// Bilinear blends the 2x2 neighborhood by fractional weights.
	Bilinear
	// Area averages the box of source pixels covered by the
	// destination pixel. Degenerates to NearestNeighbor when
	// up-sampling on both axes.
	Area
)

// String returns a human-readable policy name.
func (p InterpolationPolicy) String() string {
	switch p {
	case NearestNeighbor:
		return "NEAREST_NEIGHBOR"
	case Bilinear:
		return "BILINEAR"
	case Area:
		return "AREA"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name into an InterpolationPolicy.
// Accepts the canonical names case-insensitively plus the short forms
// "nearest" and "box".
func ParsePolicy(s string) (InterpolationPolicy, error) {
	switch strings.ToLower(s) {
	case "nearest", "nearest_neighbor":
		return NearestNeighbor, nil
	case "bilinear":
		return Bilinear, nil
	case "area", "box":
		return Area, nil
	default:
		return 0, fmt.Errorf("ParsePolicy: %w: %q", ErrUnsupportedPolicy, s)
	}
}
