package scene

import (
	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/pkg/math"
)

// Octahedron returns two square pyramids sharing an equator ring: 10
// vertices, 8 triangles, radial normals.
func Octahedron() *mesh.Mesh {
	ring := []struct {
		pos math.Vec3
		uv  math.Vec2
	}{
		{math.Vec3{X: -1, Z: -1}, math.Vec2{X: 0, Y: 0}},
		{math.Vec3{X: 1, Z: -1}, math.Vec2{X: 1, Y: 0}},
		{math.Vec3{X: 1, Z: 1}, math.Vec2{X: 1, Y: 0}},
		{math.Vec3{X: -1, Z: 1}, math.Vec2{X: 0, Y: 0}},
	}

	vertices := make([]mesh.Vertex, 0, 10)
	for _, apexY := range []float32{1, -1} {
		apex := math.Vec3{Y: apexY}
		vertices = append(vertices, mesh.Vertex{Position: apex, TexCoord: math.Vec2{X: 0.5, Y: 1}, Normal: apex})
		for _, r := range ring {
			vertices = append(vertices, mesh.Vertex{Position: r.pos, TexCoord: r.uv, Normal: r.pos.Normalize()})
		}
	}

	indices := []uint32{
		0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1,
		5, 6, 7, 5, 7, 8, 5, 8, 9, 5, 9, 6,
	}
	mesh.ComputeTangents(vertices, indices)
	return &mesh.Mesh{Vertices: vertices, Indices: indices}
}

// SunQuad is the unit billboard in the XY plane: position xyz, uv.
var SunQuad = struct {
	Vertices []float32
	Indices  []uint32
}{
	Vertices: []float32{
		-0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0, 1, 1,
		0.5, -0.5, 0, 1, 0,
		-0.5, -0.5, 0, 0, 0,
	},
	Indices: []uint32{0, 1, 2, 0, 2, 3},
}

// ScreenQuad covers clip space with two triangles: position xy, uv.
var ScreenQuad = []float32{
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	1, -1, 1, 0,

	-1, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
}

// SkyboxCube is 36 positions of a unit cube seen from the inside.
var SkyboxCube = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}
