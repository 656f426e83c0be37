package raster

// BorderMode selects the rule applied when a sampled coordinate falls
// outside the raster bounds on the spatial axes.
type BorderMode int

// Supported border modes.
const (
	// BorderConstant substitutes a caller-supplied constant value.
	BorderConstant BorderMode = iota
	// BorderReplicate clamps each spatial index to the nearest edge.
	BorderReplicate
	// BorderUndefined marks the value as unspecified; out-of-bounds
	// reads produce the element type's zero value so results stay
	// deterministic.
	BorderUndefined
)

// String returns a human-readable border mode name.
func (m BorderMode) String() string {
	switch m {
	case BorderConstant:
		return "CONSTANT"
	case BorderReplicate:
		return "REPLICATE"
	case BorderUndefined:
		return "UNDEFINED"
	default:
		return "unknown"
	}
}

// Elem returns the element at coord, applying the border mode when the
// x or y index falls outside the raster. Only dimensions 0 and 1 are
// border-checked; batch/channel indices must be in bounds. The input
// coordinates are not modified.
func (r *Raster[T]) Elem(coord Coordinates, mode BorderMode, constant T) T {
	x := coord.X()
	y := coord.Y()
	width := r.shape[0]
	height := r.shape[1]

	if x >= 0 && x < width && y >= 0 && y < height {
		return r.data[r.shape.Index(coord)]
	}

	switch mode {
	case BorderReplicate:
		clamped := coord.Clone()
		clamped[0] = clampInt(x, 0, width-1)
		clamped[1] = clampInt(y, 0, height-1)
		return r.data[r.shape.Index(clamped)]
	case BorderConstant:
		return constant
	default:
		var zero T
		return zero
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
