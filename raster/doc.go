// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package raster provides the public API for reference 2D raster
// resampling.
//
// # Overview
//
// The package is a ground-truth oracle for image scaling: it resamples
// dense typed rasters with deliberately literal, unoptimized arithmetic
// so that optimized production kernels can be validated against its
// output bit for bit. It provides:
//   - Raster[T]: a generic dense N-dimensional container
//   - Scale: nearest-neighbor, bilinear and area resampling
//   - Border handling: constant fill, edge replication, undefined
//   - Float16: IEEE 754 half-precision storage
//
// # Basic Usage
//
//	import "github.com/born-ml/raster/raster"
//
//	func main() {
//	    in, _ := raster.FromSlice([]float32{
//	        10, 20,
//	        30, 40,
//	    }, raster.Shape{2, 2})
//
//	    out, err := raster.Scale(in, 2, 2, raster.NearestNeighbor,
//	        raster.BorderReplicate, 0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = out // 4x4, each input pixel replicated into a 2x2 block
//	}
//
// # Supported Element Types
//
// Rasters hold one of four storage types via the Element constraint:
//   - uint8, int16 (integer imagery)
//   - Float16, float32 (floating-point imagery)
//
// Coordinate and accumulator arithmetic is always float32; only the
// final value per destination element is converted into the storage
// type.
//
// # Layout
//
// Dimension 0 is width (x) and varies fastest in the flat layout,
// dimension 1 is height (y); any further dimensions are batch/channel
// axes that Scale carries through unchanged.
//
// # Determinism
//
// Scale is a pure function of its inputs. Destination elements are
// independent and may be computed concurrently, but the arithmetic
// order within one element (in particular the area summation order)
// is fixed, so results are reproducible bit for bit.
package raster
