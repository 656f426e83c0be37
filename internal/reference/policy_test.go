package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolationPolicy_String(t *testing.T) {
	assert.Equal(t, "NEAREST_NEIGHBOR", NearestNeighbor.String())
	assert.Equal(t, "BILINEAR", Bilinear.String())
	assert.Equal(t, "AREA", Area.String())
	assert.Equal(t, "unknown", InterpolationPolicy(42).String())
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want InterpolationPolicy
	}{
		{"nearest", NearestNeighbor},
		{"NEAREST_NEIGHBOR", NearestNeighbor},
		{"bilinear", Bilinear},
		{"Bilinear", Bilinear},
		{"area", Area},
		{"box", Area},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePolicy("lanczos")
	assert.ErrorIs(t, err, ErrUnsupportedPolicy)
}
