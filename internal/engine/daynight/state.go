package daynight

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// LightState is everything the renderer derives from the sun angle.
type LightState struct {
	SunAngle       float32 // degrees in [-90, 90]
	Direction      math.Vec3
	Lighting       Lighting
	ShaftColor     math.Vec3
	ShaftIntensity float32
}

// Direction returns the unit vector pointing toward the sun.
func Direction(angle float32) math.Vec3 {
	r := math.Radians(angle)
	return math.Vec3{X: 0, Y: math32.Cos(r), Z: -math32.Sin(r)}
}

// StateAt derives the full light state for a sun angle.
func StateAt(angle float32) LightState {
	return LightState{
		SunAngle:       angle,
		Direction:      Direction(angle),
		Lighting:       SceneLighting(angle),
		ShaftColor:     ShaftColor(angle),
		ShaftIntensity: ShaftIntensity(angle),
	}
}

// Position places the light at distance along its direction.
func (s LightState) Position(distance float32) math.Vec3 {
	return s.Direction.Normalize().Scale(distance)
}

// SkyBlend is the day cubemap weight for a light direction; the night
// cubemap gets the remainder.
func SkyBlend(dir math.Vec3) float32 {
	return math.Clamp((dir.Y+0.2)*0.25, 0, 1)
}
