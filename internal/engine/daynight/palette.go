package daynight

import "github.com/Faultbox/godrays/pkg/math"

// Light shaft tints, gamma encoded. ShaftColor decodes them.
var (
	ShaftNight          = math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}
	ShaftSunrise        = math.Vec3{X: 0.8, Y: 0.4, Z: 0.3}
	ShaftEarlyMorning   = math.Vec3{X: 0.9, Y: 0.7, Z: 0.5}
	ShaftLateMorning    = math.Vec3{X: 1.0, Y: 0.9, Z: 0.8}
	ShaftNoon           = math.Vec3{X: 1.0, Y: 1.0, Z: 0.9}
	ShaftEarlyAfternoon = math.Vec3{X: 1.0, Y: 0.9, Z: 0.8}
	ShaftLateAfternoon  = math.Vec3{X: 0.9, Y: 0.7, Z: 0.5}
	ShaftSunset         = math.Vec3{X: 0.9, Y: 0.5, Z: 0.4}
	ShaftDusk           = math.Vec3{X: 0.6, Y: 0.3, Z: 0.3}
)

const (
	shaftGamma    = 2.4
	shaftMinColor = 0.5
)

// Lighting is the directional light's ambient, diffuse and specular colour.
type Lighting struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Scene lighting stops.
var (
	LightingNight = Lighting{
		Ambient:  math.Vec3{X: 0.01, Y: 0.01, Z: 0.05},
		Diffuse:  math.Vec3{X: 0, Y: 0, Z: 0.1},
		Specular: math.Vec3{X: 0.25, Y: 0.25, Z: 0.3},
	}
	LightingSunrise = Lighting{
		Ambient:  math.Vec3{X: 0.15, Y: 0.075, Z: 0.075},
		Diffuse:  math.Vec3{X: 0.9, Y: 0.5, Z: 0.3},
		Specular: math.Vec3{X: 0.8, Y: 0.7, Z: 0.6},
	}
	LightingNoon = Lighting{
		Ambient:  math.Vec3{X: 0.3, Y: 0.3, Z: 0.35},
		Diffuse:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Specular: math.Vec3{X: 1.0, Y: 0.95, Z: 0.9},
	}
	LightingSunset = Lighting{
		Ambient:  math.Vec3{X: 0.15, Y: 0.075, Z: 0.075},
		Diffuse:  math.Vec3{X: 0.9, Y: 0.4, Z: 0.3},
		Specular: math.Vec3{X: 0.8, Y: 0.6, Z: 0.5},
	}
)

// decodeShaft converts a tint to linear space and lifts it to the floor
// brightness so shafts never vanish entirely.
func decodeShaft(c math.Vec3) math.Vec3 {
	return math.Vec3{
		X: math.SRGBToLinear(c.X, shaftGamma),
		Y: math.SRGBToLinear(c.Y, shaftGamma),
		Z: math.SRGBToLinear(c.Z, shaftGamma),
	}.Max(shaftMinColor)
}

var (
	shaftTable = MustTable(mixVec3,
		hold(-90, -85, decodeShaft(ShaftNight)),
		Band[math.Vec3]{Start: -85, End: -45, From: decodeShaft(ShaftNight), To: decodeShaft(ShaftSunrise), Easing: Smooth},
		Band[math.Vec3]{Start: -45, End: 0, From: decodeShaft(ShaftSunrise), To: decodeShaft(ShaftNoon), Easing: Smooth},
		Band[math.Vec3]{Start: 0, End: 45, From: decodeShaft(ShaftNoon), To: decodeShaft(ShaftLateAfternoon), Easing: Smooth},
		Band[math.Vec3]{Start: 45, End: 75, From: decodeShaft(ShaftLateAfternoon), To: decodeShaft(ShaftSunset), Easing: Smooth},
		Band[math.Vec3]{Start: 75, End: 85, From: decodeShaft(ShaftSunset), To: decodeShaft(ShaftNight), Easing: Smooth},
		hold(85, 90, decodeShaft(ShaftNight)),
	)

	lightingTable = MustTable(mixLighting,
		hold(-90, -85, LightingNight),
		Band[Lighting]{Start: -85, End: -45, From: LightingNight, To: LightingSunrise, Easing: Smooth},
		Band[Lighting]{Start: -45, End: 45, From: LightingSunrise, To: LightingNoon, Easing: Smooth},
		Band[Lighting]{Start: 45, End: 75, From: LightingNoon, To: LightingSunset, Easing: Smooth},
		Band[Lighting]{Start: 75, End: 85, From: LightingSunset, To: LightingNight, Easing: Smooth},
		hold(85, 90, LightingNight),
	)

	intensityTable = MustTable(mixFloat,
		hold[float32](-90, -80, 0.2),
		Band[float32]{Start: -80, End: -45, From: 0.2, To: 0.55, Easing: Linear},
		Band[float32]{Start: -45, End: 45, From: 0.55, To: 0.4, Easing: Linear},
		Band[float32]{Start: 45, End: 80, From: 0.4, To: 0.55, Easing: Linear},
		Band[float32]{Start: 80, End: 90, From: 0.55, To: 0.2, Easing: Linear},
	)
)

// ShaftColor returns the linear light shaft tint for a sun angle in degrees.
func ShaftColor(angle float32) math.Vec3 {
	return shaftTable.At(angle).Clamp(0, 1)
}

// SceneLighting returns the directional light colours for a sun angle.
func SceneLighting(angle float32) Lighting {
	return lightingTable.At(angle)
}

// ShaftIntensity returns the composite weight of the light shafts.
func ShaftIntensity(angle float32) float32 {
	return intensityTable.At(angle)
}
