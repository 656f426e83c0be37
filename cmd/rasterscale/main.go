// Package main provides the rasterscale CLI, a small driver around the
// reference resampler for eyeballing its output.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/born-ml/raster/raster"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("rasterscale %s\n", version)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		if err := demo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "rasterscale: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("rasterscale - reference 2D raster resampling oracle")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                       Show version")
	fmt.Println("  demo [policy] [sx] [sy]       Scale a sample gradient and print it")
	fmt.Println("")
	fmt.Println("Policies: nearest, bilinear, area")
}

// demo builds a small gradient raster, resamples it with the requested
// policy and scale factors, and prints both grids.
func demo(args []string) error {
	policy := raster.Bilinear
	scaleX, scaleY := float32(2), float32(2)

	if len(args) > 0 {
		p, err := raster.ParsePolicy(args[0])
		if err != nil {
			return err
		}
		policy = p
	}
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return fmt.Errorf("bad scale_x %q: %w", args[1], err)
		}
		scaleX = float32(v)
		scaleY = scaleX
	}
	if len(args) > 2 {
		v, err := strconv.ParseFloat(args[2], 32)
		if err != nil {
			return fmt.Errorf("bad scale_y %q: %w", args[2], err)
		}
		scaleY = float32(v)
	}

	const w, h = 4, 4
	data := make([]float32, w*h)
	for i := range data {
		data[i] = float32(i)
	}
	in, err := raster.FromSlice(data, raster.Shape{w, h})
	if err != nil {
		return err
	}

	out, err := raster.Scale(in, scaleX, scaleY, policy, raster.BorderReplicate, 0)
	if err != nil {
		return err
	}

	fmt.Printf("input %v:\n", in.Shape())
	printGrid(in)
	fmt.Printf("\n%s x%v,%v -> %v:\n", policy, scaleX, scaleY, out.Shape())
	printGrid(out)
	return nil
}

func printGrid(r *raster.Raster[float32]) {
	shape := r.Shape()
	data := r.Data()
	for y := 0; y < shape[1]; y++ {
		for x := 0; x < shape[0]; x++ {
			fmt.Printf("%8.3f", data[y*shape[0]+x])
		}
		fmt.Println()
	}
}
