package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat16_Float32(t *testing.T) {
	tests := []struct {
		name string
		in   Float16
		want float32
	}{
		{"zero", Float16Zero, 0},
		{"one", Float16One, 1},
		{"negative one", 0xBC00, -1},
		{"half", 0x3800, 0.5},
		{"max", Float16MaxValue, 65504},
		{"smallest normal", 0x0400, 6.103515625e-05},
		{"smallest denormal", 0x0001, float32(1) / float32(1<<24)},
		{"largest denormal", 0x03FF, float32(1023) / float32(1<<24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Float32())
		})
	}

	negZero := Float16(0x8000).Float32()
	assert.Equal(t, float32(0), negZero)
	assert.True(t, math.Signbit(float64(negZero)))
}

func TestFloat16_SpecialValues(t *testing.T) {
	assert.True(t, math.IsInf(float64(Float16Inf.Float32()), 1))
	assert.True(t, math.IsInf(float64(Float16NegInf.Float32()), -1))
	assert.True(t, math.IsNaN(float64(Float16NaN.Float32())))

	assert.Equal(t, Float16Inf, ToFloat16(float32(math.Inf(1))))
	assert.Equal(t, Float16NegInf, ToFloat16(float32(math.Inf(-1))))
	assert.Equal(t, Float16NaN, ToFloat16(float32(math.NaN())))
}

func TestToFloat16_Exact(t *testing.T) {
	tests := []struct {
		in   float32
		want Float16
	}{
		{0, Float16Zero},
		{1, Float16One},
		{-1, 0xBC00},
		{0.5, 0x3800},
		{65504, Float16MaxValue},
		{5.9604645e-08, 0x0001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToFloat16(tt.in), "ToFloat16(%v)", tt.in)
	}
}

func TestToFloat16_Rounding(t *testing.T) {
	// Round to nearest even on the dropped mantissa bits.
	tie := float32(1) + float32(1)/2048 // exactly halfway between 1.0 and the next half
	assert.Equal(t, Float16One, ToFloat16(tie), "tie rounds to even")

	above := float32(1) + 3*float32(1)/2048 // halfway again, but the kept bit is odd
	assert.Equal(t, Float16(0x3C02), ToFloat16(above), "odd tie rounds up")

	// Overflow past the largest finite half rounds to infinity.
	assert.Equal(t, Float16MaxValue, ToFloat16(65519))
	assert.Equal(t, Float16Inf, ToFloat16(65520))
	assert.Equal(t, Float16NegInf, ToFloat16(-65520))

	// Values below the smallest denormal flush to signed zero.
	assert.Equal(t, Float16Zero, ToFloat16(1e-9))
	assert.Equal(t, Float16(0x8000), ToFloat16(-1e-9))
}

func TestFloat16_RoundTrip(t *testing.T) {
	// Every half value survives widening and narrowing unchanged.
	for bits := 0; bits <= 0xFFFF; bits++ {
		h := Float16(bits)
		f := h.Float32()
		if math.IsNaN(float64(f)) {
			continue // NaN payloads collapse to the canonical quiet NaN
		}
		if got := ToFloat16(f); got != h {
			t.Fatalf("round trip 0x%04X -> %v -> 0x%04X", bits, f, uint16(got))
		}
	}
}
