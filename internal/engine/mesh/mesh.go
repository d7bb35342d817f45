// Package mesh holds the shared vertex format, tangent-space generation
// and GPU buffer upload used by terrain, imported models and built-in shapes.
package mesh

import (
	"github.com/Faultbox/godrays/pkg/math"
)

// Vertex is the interleaved layout uploaded to attribute locations 0..4.
type Vertex struct {
	Position  math.Vec3
	TexCoord  math.Vec2
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// Attribute locations shared by every shader that consumes Vertex.
const (
	AttribPosition = iota
	AttribTexCoord
	AttribNormal
	AttribTangent
	AttribBitangent
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Indices) == 0 || len(m.Vertices) == 0
}

// TriangleCount returns the number of whole triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Bounds computes the bounding box of all vertices. An empty mesh yields zero bounds.
func (m *Mesh) Bounds() Bounds {
	if m == nil || len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
