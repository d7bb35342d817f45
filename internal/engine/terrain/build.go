package terrain

import (
	"fmt"

	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/pkg/math"
)

// Build generates the terrain grid. Heights are fractal noise sampled at the
// normalized grid position and scaled by HeightScale. The grid is centred on
// the origin, each cell becomes two triangles and vertex normals always point
// upward.
func Build(p Params, field Sampler) (*Result, error) {
	if p.Width < 2 || p.Depth < 2 {
		return nil, fmt.Errorf("terrain grid %dx%d: need at least 2x2 samples", p.Width, p.Depth)
	}
	if field == nil {
		return nil, fmt.Errorf("terrain: nil noise sampler")
	}

	r := &Result{
		Heights: HeightField{Width: p.Width, Depth: p.Depth, Samples: make([]float32, p.Width*p.Depth)},
		offsetX: p.Width / 2,
		offsetZ: p.Depth / 2,
	}
	vertices := make([]mesh.Vertex, 0, p.Width*p.Depth)

	for z := 0; z < p.Depth; z++ {
		for x := 0; x < p.Width; x++ {
			u := float32(x) / float32(p.Width)
			v := float32(z) / float32(p.Depth)
			h := field.FractalSum(u, v, p.Octaves, p.Persistence) * p.HeightScale

			idx := z*p.Width + x
			r.Heights.Samples[idx] = h
			if idx == 0 || h < r.MinHeight {
				r.MinHeight = h
			}
			if idx == 0 || h > r.MaxHeight {
				r.MaxHeight = h
			}

			vertices = append(vertices, mesh.Vertex{
				Position: math.Vec3{X: float32(x - r.offsetX), Y: h, Z: float32(z - r.offsetZ)},
				TexCoord: math.Vec2{X: u * p.TextureRepeat, Y: v * p.TextureRepeat},
			})
		}
	}

	indices := gridIndices(p.Width, p.Depth)
	accumulateNormals(vertices, indices)
	mesh.ComputeTangents(vertices, indices)

	r.Mesh = &mesh.Mesh{Vertices: vertices, Indices: indices}
	return r, nil
}

// gridIndices emits (TL, BR, BL) and (TL, TR, BR) for every cell.
func gridIndices(width, depth int) []uint32 {
	indices := make([]uint32, 0, (width-1)*(depth-1)*6)
	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			tl := uint32(z*width + x)
			tr := tl + 1
			bl := uint32((z+1)*width + x)
			br := bl + 1
			indices = append(indices, tl, br, bl, tl, tr, br)
		}
	}
	return indices
}

// accumulateNormals sums each triangle's face normal into its corners, then
// normalizes and forces the vertical component non-negative.
func accumulateNormals(vertices []mesh.Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		pa := vertices[a].Position
		n := vertices[c].Position.Sub(pa).Cross(vertices[b].Position.Sub(pa)).Normalize()
		vertices[a].Normal = vertices[a].Normal.Add(n)
		vertices[b].Normal = vertices[b].Normal.Add(n)
		vertices[c].Normal = vertices[c].Normal.Add(n)
	}
	for i := range vertices {
		n := vertices[i].Normal.Normalize()
		if n.Length() == 0 {
			n = math.Up
		}
		if n.Y < 0 {
			n.Y = -n.Y
		}
		vertices[i].Normal = n
	}
}
