package reference

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/raster/internal/parallel"
	"github.com/born-ml/raster/internal/raster"
)

// Sentinel errors returned by Scale. Match with errors.Is.
var (
	// ErrInvalidRequest marks parameter violations caught before any
	// computation: non-positive scale factors, too few dimensions, or
	// output extents that truncate to zero.
	ErrInvalidRequest = errors.New("invalid scale request")
	// ErrUnsupportedPolicy marks an interpolation policy value with no
	// defined kernel. Scale never silently substitutes a policy.
	ErrUnsupportedPolicy = errors.New("unsupported interpolation policy")
	// ErrDegenerateBox marks an area contribution box that clamps to
	// zero source elements, which signals broken ratios and must not be
	// masked by averaging nothing.
	ErrDegenerateBox = errors.New("degenerate area box")
)

// Scale resamples the two spatial dimensions of in by the given scale
// factors and returns a freshly allocated raster of the derived shape.
// Dimensions beyond x and y are carried through unchanged, as is the
// element type. The input is never mutated.
//
// The destination extent per axis is the truncated product of the
// source extent and the scale factor. Every destination element is
// computed independently from a half-pixel-centered mapping back into
// source space; coordinates that land outside the source raster are
// resolved by the border mode. All coordinate and accumulator
// arithmetic is float32 regardless of the element storage type, with
// one final conversion into T per element.
func Scale[T raster.Element](in *raster.Raster[T], scaleX, scaleY float32, policy InterpolationPolicy, border raster.BorderMode, constant T) (*raster.Raster[T], error) {
	return scale(in, scaleX, scaleY, policy, border, constant, parallel.DefaultConfig())
}

func scale[T raster.Element](in *raster.Raster[T], scaleX, scaleY float32, policy InterpolationPolicy, border raster.BorderMode, constant T, cfg parallel.Config) (*raster.Raster[T], error) {
	inShape := in.Shape()
	if len(inShape) < 2 {
		return nil, fmt.Errorf("Scale: %w: need at least 2 spatial dimensions, got %d", ErrInvalidRequest, len(inShape))
	}
	if scaleX <= 0 || scaleY <= 0 {
		return nil, fmt.Errorf("Scale: %w: scale factors must be positive, got (%v, %v)", ErrInvalidRequest, scaleX, scaleY)
	}

	outShape := inShape.Clone()
	outShape[0] = int(float32(inShape[0]) * scaleX)
	outShape[1] = int(float32(inShape[1]) * scaleY)
	if outShape[0] < 1 || outShape[1] < 1 {
		return nil, fmt.Errorf("Scale: %w: output extents %dx%d truncate to zero", ErrInvalidRequest, outShape[0], outShape[1])
	}

	out, err := raster.New[T](outShape)
	if err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}

	// Ratio between source and destination extent per axis; this drives
	// the destination-to-source coordinate mapping.
	wr := float32(inShape[0]) / float32(outShape[0])
	hr := float32(inShape[1]) / float32(outShape[1])

	// Area interpolation behaves as nearest neighbor when up-sampling
	// on both axes: the source footprint of one destination pixel
	// covers at most one source pixel.
	if policy == Area && wr <= 1 && hr <= 1 {
		policy = NearestNeighbor
	}

	switch policy {
	case NearestNeighbor:
		scaleNearest(in, out, wr, hr, border, constant, cfg)
	case Bilinear:
		scaleBilinear(in, out, wr, hr, border, constant, cfg)
	case Area:
		if err := scaleArea(in, out, wr, hr, border, constant, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("Scale: %w: %d", ErrUnsupportedPolicy, int(policy))
	}

	return out, nil
}

func scaleNearest[T raster.Element](in, out *raster.Raster[T], wr, hr float32, border raster.BorderMode, constant T, cfg parallel.Config) {
	width := in.Shape()[0]
	height := in.Shape()[1]
	outShape := out.Shape()

	parallel.For(out.NumElements(), func(idx int) {
		coord := outShape.Coord(idx)
		// Mapping without the half-pixel recentering: truncating this
		// value is algebraically the same as rounding the centered
		// mapping to the nearest integer.
		xSrc := (float32(coord.X()) + 0.5) * wr
		ySrc := (float32(coord.Y()) + 0.5) * hr
		coord[0] = int(xSrc)
		coord[1] = int(ySrc)

		if insideWindow(xSrc, ySrc, width, height) {
			out.SetAt(idx, in.Elem(coord, border, constant))
		} else {
			out.SetAt(idx, borderFallback(in, coord, xSrc, ySrc, border, constant))
		}
	}, cfg)
}

func scaleBilinear[T raster.Element](in, out *raster.Raster[T], wr, hr float32, border raster.BorderMode, constant T, cfg parallel.Config) {
	width := in.Shape()[0]
	height := in.Shape()[1]
	outShape := out.Shape()

	parallel.For(out.NumElements(), func(idx int) {
		coord := outShape.Coord(idx)
		xSrc := mapCentered(coord.X(), wr)
		ySrc := mapCentered(coord.Y(), hr)

		if insideWindow(xSrc, ySrc, width, height) {
			out.SetAt(idx, bilinearElem(in, coord, xSrc, ySrc, border, constant))
		} else {
			out.SetAt(idx, borderFallback(in, coord, xSrc, ySrc, border, constant))
		}
	}, cfg)
}

func scaleArea[T raster.Element](in, out *raster.Raster[T], wr, hr float32, border raster.BorderMode, constant T, cfg parallel.Config) error {
	inShape := in.Shape()
	outShape := out.Shape()

	// The contribution box depends only on the destination index along
	// each axis, so the bounds are derived and validated once per
	// column and per row before the sweep.
	xSpans, err := areaSpans(outShape[0], wr, inShape[0])
	if err != nil {
		return err
	}
	ySpans, err := areaSpans(outShape[1], hr, inShape[1])
	if err != nil {
		return err
	}

	parallel.For(out.NumElements(), func(idx int) {
		coord := outShape.Coord(idx)
		xs := xSpans[coord.X()]
		ys := ySpans[coord.Y()]

		// Fixed row-major order, i and j ascending. The summation order
		// is part of the contract: reordering perturbs the rounding.
		sum := float32(0)
		for j := ys.lo; j <= ys.hi; j++ {
			for i := xs.lo; i <= xs.hi; i++ {
				coord[0], coord[1] = i, j
				sum += raster.ToFloat32(in.Elem(coord, border, constant))
			}
		}
		count := (xs.hi - xs.lo + 1) * (ys.hi - ys.lo + 1)
		out.SetAt(idx, raster.FromFloat32[T](sum/float32(count)))
	}, cfg)
	return nil
}

// axisSpan is the inclusive range of source indices contributing to
// one destination index along a single axis.
type axisSpan struct {
	lo, hi int
}

// areaSpans derives the area contribution box bounds for every
// destination index along one axis. The box is clamped so it never
// reaches more than one pixel past the low edge and never exceeds the
// extent on the high side.
func areaSpans(outExtent int, ratio float32, extent int) ([]axisSpan, error) {
	spans := make([]axisSpan, outExtent)
	for id := 0; id < outExtent; id++ {
		src := mapCentered(id, ratio)
		from := int(floor32(float32(float32(id)*ratio) - 0.5 - src))
		to := int(ceil32(float32((float32(id)+1)*ratio) - 0.5 - src))
		base := int(floor32(src))

		src = clamp32(src, -1, float32(extent))
		if src+float32(from) < -1 {
			from = -1
		}
		if src+float32(to) > float32(extent) {
			to = int(float32(extent) - src)
		}
		if to-from+1 == 0 {
			return nil, fmt.Errorf("Scale: %w: destination index %d maps to an empty source range", ErrDegenerateBox, id)
		}
		spans[id] = axisSpan{lo: base + from, hi: base + to}
	}
	return spans, nil
}

// insideWindow reports whether the mapped source location lies within
// the extended validity window, one pixel past the raster bounds on
// each side. The four axis conditions combine with OR; bit-exact
// consumers depend on this exact form, so it must not be tightened to
// a conjunction.
func insideWindow(xSrc, ySrc float32, width, height int) bool {
	return xSrc >= -1 || ySrc >= -1 || xSrc <= float32(width) || ySrc <= float32(height)
}

// borderFallback resolves a destination element whose mapped source
// location fell outside the validity window. coord carries the
// batch/channel indices; x and y are overwritten per the border mode.
func borderFallback[T raster.Element](in *raster.Raster[T], coord raster.Coordinates, xSrc, ySrc float32, border raster.BorderMode, constant T) T {
	switch border {
	case raster.BorderConstant:
		return constant
	case raster.BorderReplicate:
		coord[0] = clampInt(int(xSrc), 0, in.Shape()[0]-1)
		coord[1] = clampInt(int(ySrc), 0, in.Shape()[1]-1)
		return in.AtCoord(coord)
	default:
		var zero T
		return zero
	}
}

// mapCentered maps a destination index to its half-pixel-centered
// source location. The explicit conversion rounds the product before
// the subtraction so the compiler cannot fuse the two operations.
func mapCentered(id int, ratio float32) float32 {
	return float32((float32(id)+0.5)*ratio) - 0.5
}

func floor32(v float32) float32 { return float32(math.Floor(float64(v))) }

func ceil32(v float32) float32 { return float32(math.Ceil(float64(v))) }

func clamp32(v, lo, hi float32) float32 { return min(max(v, lo), hi) }

func clampInt(v, lo, hi int) int { return min(max(v, lo), hi) }
