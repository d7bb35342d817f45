package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// minUVDeterminant is the smallest |du1*dv2 - du2*dv1| a triangle may have
// and still contribute to the tangent frame.
const minUVDeterminant = 1e-8

// ComputeTangents fills Tangent and Bitangent for every vertex.
//
// Per triangle the UV-gradient system is solved for T and B and accumulated
// on its corners. Afterwards T is Gram-Schmidt orthogonalized against N and
// B = N x T. Triangles with a near-zero UV determinant are skipped; a vertex
// left without a usable tangent gets an arbitrary unit vector perpendicular
// to N. It returns the number of skipped triangles.
func ComputeTangents(vertices []Vertex, indices []uint32) int {
	tangents := make([]math.Vec3, len(vertices))
	skipped := 0

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if int(i0) >= len(vertices) || int(i1) >= len(vertices) || int(i2) >= len(vertices) {
			skipped++
			continue
		}
		v0, v1, v2 := &vertices[i0], &vertices[i1], &vertices[i2]

		edge1 := v1.Position.Sub(v0.Position)
		edge2 := v2.Position.Sub(v0.Position)
		duv1 := v1.TexCoord.Sub(v0.TexCoord)
		duv2 := v2.TexCoord.Sub(v0.TexCoord)

		det := duv1.X*duv2.Y - duv2.X*duv1.Y
		if math32.Abs(det) < minUVDeterminant {
			skipped++
			continue
		}
		f := 1 / det

		t := edge1.Scale(duv2.Y).Sub(edge2.Scale(duv1.Y)).Scale(f)
		tangents[i0] = tangents[i0].Add(t)
		tangents[i1] = tangents[i1].Add(t)
		tangents[i2] = tangents[i2].Add(t)
	}

	for i := range vertices {
		v := &vertices[i]
		n := v.Normal
		t := tangents[i].Sub(n.Scale(n.Dot(tangents[i])))
		if t.Length() < 1e-6 {
			t = Perpendicular(n)
		}
		v.Tangent = t.Normalize()
		v.Bitangent = n.Cross(v.Tangent)
	}
	return skipped
}

// Perpendicular returns a unit vector orthogonal to n, built from the world
// axis least aligned with it. A zero n yields +X.
func Perpendicular(n math.Vec3) math.Vec3 {
	if n.Length() == 0 {
		return math.Vec3{X: 1}
	}
	axis := math.Vec3{X: 1}
	ax, ay, az := math32.Abs(n.X), math32.Abs(n.Y), math32.Abs(n.Z)
	switch {
	case ay <= ax && ay <= az:
		axis = math.Vec3{Y: 1}
	case az <= ax && az <= ay:
		axis = math.Vec3{Z: 1}
	}
	return axis.Sub(n.Scale(n.Dot(axis) / n.Dot(n))).Normalize()
}
