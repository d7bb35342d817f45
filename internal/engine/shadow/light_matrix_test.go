package shadow

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/godrays/internal/engine/daynight"
	"github.com/Faultbox/godrays/pkg/math"
)

func testFrustum() Frustum {
	return Frustum{Extent: 28.5, Near: 22, Far: 70, Distance: 50}
}

func TestEye(t *testing.T) {
	eye := testFrustum().Eye(math.Vec3{X: 0, Y: 2, Z: 0})
	assert.True(t, eye.ApproxEqual(math.Vec3{Y: 50}, 1e-4), "got %v", eye)
}

func TestOriginMapsToFrustumCentre(t *testing.T) {
	f := testFrustum()
	for _, angle := range []float32{-80, -30, 10, 45, 85} {
		m := f.LightSpaceMatrix(daynight.Direction(angle))
		p := m.MulVec4(math.Vec4{0, 0, 0, 1})
		assert.InDelta(t, 0, p[0], 1e-4, "angle %v", angle)
		assert.InDelta(t, 0, p[1], 1e-4, "angle %v", angle)
		// Origin sits 50 units away; NDC z = (2*50 - (far+near)) / (far-near).
		assert.InDelta(t, (100-92)/48.0, p[2], 1e-4, "angle %v", angle)
	}
}

func TestExtentMapsToEdge(t *testing.T) {
	f := testFrustum()
	m := f.LightSpaceMatrix(daynight.Direction(-45))
	p := m.MulVec4(math.Vec4{28.5, 0, 0, 1})
	assert.InDelta(t, 1, math32.Abs(p[0]), 1e-4)
}

func TestZenithHasNoNaN(t *testing.T) {
	m := testFrustum().LightSpaceMatrix(math.Up)
	for i, v := range m {
		assert.False(t, math32.IsNaN(v), "element %d is NaN", i)
	}
	p := m.MulVec4(math.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-4)
	assert.InDelta(t, 0, p[1], 1e-4)
}

func TestNadirHasNoNaN(t *testing.T) {
	m := testFrustum().LightSpaceMatrix(math.Vec3{Y: -1})
	for i, v := range m {
		assert.False(t, math32.IsNaN(v), "element %d is NaN", i)
	}
}
