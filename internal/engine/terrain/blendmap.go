package terrain

import (
	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/pkg/math"
)

// BlendMap maps every vertex height of a width x depth terrain mesh to
// (h-min)/(max-min) clamped to [0,1]. A flat terrain (max == min) maps to
// all zeros.
func BlendMap(m *mesh.Mesh, width, depth int, minHeight, maxHeight float32) []float32 {
	out := make([]float32, width*depth)
	span := maxHeight - minHeight
	if span <= 0 || m == nil {
		return out
	}
	for i := range out {
		if i >= len(m.Vertices) {
			break
		}
		out[i] = math.Clamp((m.Vertices[i].Position.Y-minHeight)/span, 0, 1)
	}
	return out
}

// BlendMap derives the blend map of a built terrain.
func (r *Result) BlendMap() []float32 {
	return BlendMap(r.Mesh, r.Heights.Width, r.Heights.Depth, r.MinHeight, r.MaxHeight)
}
