package reference

import "github.com/born-ml/raster/internal/raster"

// bilinearElem blends the 2x2 source neighborhood around the floored
// source location by its fractional offsets. Neighbors outside the
// raster go through the border-aware accessor. coord carries the
// batch/channel indices; x and y are overwritten while fetching.
func bilinearElem[T raster.Element](in *raster.Raster[T], coord raster.Coordinates, xSrc, ySrc float32, border raster.BorderMode, constant T) T {
	xi := int(floor32(xSrc))
	yi := int(floor32(ySrc))
	dx := xSrc - float32(xi)
	dy := ySrc - float32(yi)
	dx1 := 1 - dx
	dy1 := 1 - dy

	coord[0], coord[1] = xi, yi
	tl := raster.ToFloat32(in.Elem(coord, border, constant))
	coord[0] = xi + 1
	tr := raster.ToFloat32(in.Elem(coord, border, constant))
	coord[0], coord[1] = xi, yi+1
	bl := raster.ToFloat32(in.Elem(coord, border, constant))
	coord[0] = xi + 1
	br := raster.ToFloat32(in.Elem(coord, border, constant))

	// Each weighted term is rounded to float32 before the sum so the
	// compiler cannot fuse a multiply into an add and perturb the
	// final bit pattern.
	return raster.FromFloat32[T](float32(tl*dx1*dy1) + float32(tr*dx*dy1) + float32(bl*dx1*dy) + float32(br*dx*dy))
}
