// Package terrain builds the procedural height-mapped ground mesh and the
// data derived from it: the height blend map and world-space height queries.
package terrain

import (
	"github.com/Faultbox/godrays/internal/engine/mesh"
)

// Sampler produces normalized fractal noise. *noise.Field satisfies it.
type Sampler interface {
	FractalSum(x, y float32, octaves int, persistence float32) float32
}

// Params controls terrain generation.
type Params struct {
	Width         int // samples along X
	Depth         int // samples along Z
	HeightScale   float32
	Octaves       int
	Persistence   float32
	TextureRepeat float32
}

// DefaultParams returns the stock fBm settings for a width x depth grid.
func DefaultParams(width, depth int, heightScale float32) Params {
	return Params{
		Width:         width,
		Depth:         depth,
		HeightScale:   heightScale,
		Octaves:       5,
		Persistence:   0.5,
		TextureRepeat: 4,
	}
}

// HeightField is a Width x Depth grid of heights in z-major order.
type HeightField struct {
	Width   int
	Depth   int
	Samples []float32
}

// At returns the height at grid cell (x, z). The caller keeps x and z in range.
func (h *HeightField) At(x, z int) float32 {
	return h.Samples[z*h.Width+x]
}

// Result is the output of Build.
type Result struct {
	Mesh      *mesh.Mesh
	Heights   HeightField
	MinHeight float32
	MaxHeight float32

	// grid origin offset: vertex (x, z) sits at world (x-offsetX, h, z-offsetZ)
	offsetX int
	offsetZ int
}
