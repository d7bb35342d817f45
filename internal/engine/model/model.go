// Package model turns parsed OBJ files into indexed meshes with a full
// tangent frame.
package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/engine/mesh"
	"github.com/Faultbox/godrays/internal/logger"
	"github.com/Faultbox/godrays/pkg/formats"
	"github.com/Faultbox/godrays/pkg/math"
)

// cornerKey identifies a unique vertex. Corners without a normal index get
// a per-triangle negative key so flat normals are never shared.
type cornerKey struct {
	position, texCoord, normal int
}

// Load parses an OBJ file into a mesh. On failure it returns an empty mesh
// alongside the error so callers can keep rendering.
func Load(path string) (*mesh.Mesh, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return &mesh.Mesh{}, fmt.Errorf("loading model %s: %w", path, err)
	}
	m := Build(obj)
	logger.Debug("model loaded",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()))
	return m, nil
}

// Build converts parsed OBJ data. Identical (position, texcoord, normal)
// triples share one output vertex.
func Build(obj *formats.OBJ) *mesh.Mesh {
	unique := make(map[cornerKey]uint32, len(obj.Positions))
	vertices := make([]mesh.Vertex, 0, len(obj.Positions))
	indices := make([]uint32, 0, len(obj.Triangles)*3)

	for ti, tri := range obj.Triangles {
		faceNormal := triangleNormal(obj, tri)

		for _, c := range tri {
			key := cornerKey{position: c.Position, texCoord: c.TexCoord, normal: c.Normal}
			if c.Normal < 0 {
				key.normal = -2 - ti
			}
			if idx, ok := unique[key]; ok {
				indices = append(indices, idx)
				continue
			}

			v := mesh.Vertex{Position: math.V3(obj.Positions[c.Position]), Normal: faceNormal}
			if c.TexCoord >= 0 {
				uv := obj.TexCoords[c.TexCoord]
				v.TexCoord = math.Vec2{X: uv[0], Y: uv[1]}
			}
			if c.Normal >= 0 {
				if n := math.V3(obj.Normals[c.Normal]).Normalize(); n.Length() > 0 {
					v.Normal = n
				}
			}

			idx := uint32(len(vertices))
			vertices = append(vertices, v)
			unique[key] = idx
			indices = append(indices, idx)
		}
	}

	if skipped := mesh.ComputeTangents(vertices, indices); skipped > 0 {
		logger.Debug("degenerate uv triangles skipped", zap.Int("count", skipped))
	}
	return &mesh.Mesh{Vertices: vertices, Indices: indices}
}

// triangleNormal is the counter-clockwise face normal, or +Y for a
// zero-area triangle.
func triangleNormal(obj *formats.OBJ, tri [3]formats.OBJCorner) math.Vec3 {
	p0 := math.V3(obj.Positions[tri[0].Position])
	p1 := math.V3(obj.Positions[tri[1].Position])
	p2 := math.V3(obj.Positions[tri[2].Position])
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Length() < 1e-5 {
		return math.Up
	}
	return n.Normalize()
}
