package scene

import "github.com/Faultbox/godrays/pkg/math"

// SunBillboard orients the sun quad to face the origin from lightPos and
// scales it to the visible disc size.
func SunBillboard(lightPos math.Vec3, scale float32) math.Mat4 {
	dir := lightPos.Normalize()
	right := math.Up.Cross(dir)
	if right.Length() < 1e-6 {
		// sun at the zenith; any horizontal axis works
		right = math.Vec3{X: 1}
	}
	right = right.Normalize()
	up := dir.Cross(right).Normalize()

	return math.Translate(lightPos).
		Mul(math.FromBasis(right, up, dir)).
		Mul(math.UniformScale(scale))
}
