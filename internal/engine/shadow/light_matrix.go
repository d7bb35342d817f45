package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// Frustum is the orthographic volume the directional light renders depth into.
type Frustum struct {
	Extent   float32 // half width and half height
	Near     float32
	Far      float32
	Distance float32 // eye distance from the origin along the light direction
}

// Eye returns the light camera position for a direction toward the sun.
func (f Frustum) Eye(dir math.Vec3) math.Vec3 {
	return dir.Normalize().Scale(f.Distance)
}

// LightSpaceMatrix returns projection times view for the light camera,
// looking from the sun toward the world origin.
func (f Frustum) LightSpaceMatrix(dir math.Vec3) math.Mat4 {
	up := math.Up
	n := dir.Normalize()
	if math32.Abs(n.Y) > 0.999 {
		// LookAt degenerates when the view axis is parallel to up.
		up = math.Vec3{Z: -1}
	}
	view := math.LookAt(f.Eye(n), math.Vec3{}, up)
	proj := math.Ortho(-f.Extent, f.Extent, -f.Extent, f.Extent, f.Near, f.Far)
	return proj.Mul(view)
}

