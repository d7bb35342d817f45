// Package lighting holds the light and material constants shared by the
// shaded passes.
package lighting

import (
	"github.com/Faultbox/godrays/pkg/math"
)

// PointLight is the orbiting light with quadratic falloff.
type PointLight struct {
	Position  math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultPointLight returns the magenta-tinted orbiting light.
func DefaultPointLight() PointLight {
	return PointLight{
		Ambient:   math.Vec3{X: 0.35, Y: 0.035, Z: 0.35},
		Diffuse:   math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		Specular:  math.Vec3{X: 1, Y: 1, Z: 1},
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.02,
	}
}

// At returns a copy of the light moved to pos.
func (p PointLight) At(pos math.Vec3) PointLight {
	p.Position = pos
	return p
}

// MaterialBase holds the material terms shared by every lit surface.
// Specular strength is per drawable.
type MaterialBase struct {
	Ambient math.Vec3
}

// DefaultMaterial returns the linear white ambient base.
func DefaultMaterial() MaterialBase {
	a := math.SRGBToLinear(1, 2.2)
	return MaterialBase{
		Ambient: math.Vec3{X: a, Y: a, Z: a},
	}
}
