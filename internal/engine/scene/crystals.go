package scene

import (
	"github.com/Faultbox/godrays/pkg/math"
)

const (
	towerKeepout   = 4
	obeliskKeepout = 3
	crystalLift    = CrystalScale * 2
)

// Ground reports the terrain height under a world position.
type Ground interface {
	HeightAt(worldX, worldZ float32) float32
}

// Keepouts returns discs around the towers and obelisk where crystals must
// not grow.
func Keepouts() []Circle {
	var out []Circle
	add := func(m math.Mat4, r float32) {
		p := m.TransformPoint(math.Vec3{})
		out = append(out, Circle{Center: math.Vec2{X: p.X, Y: p.Z}, Radius: r})
	}
	for _, p := range tower1Positions {
		add(towerMatrix(p, 0), towerKeepout)
	}
	for _, p := range tower2Positions {
		add(towerMatrix(p, tower2Yaw), towerKeepout)
	}
	add(towerMatrix(tower3Position, tower3Yaw), towerKeepout)
	out = append(out, Circle{Center: math.Vec2{X: obeliskBase.X, Y: obeliskBase.Z}, Radius: obeliskKeepout})
	return out
}

// ScatterCrystals places count crystals on the ground within halfExtent of
// the origin, at least spacing apart.
func ScatterCrystals(ground Ground, halfExtent, spacing float32, count int, seed uint64) []math.Vec3 {
	if count <= 0 || ground == nil {
		return nil
	}
	bounds := Rect{
		Min: math.Vec2{X: -halfExtent, Y: -halfExtent},
		Max: math.Vec2{X: halfExtent, Y: halfExtent},
	}
	flat := PoissonDisk(seed, bounds, spacing, count, Keepouts())

	out := make([]math.Vec3, len(flat))
	for i, p := range flat {
		out[i] = math.Vec3{X: p.X, Y: ground.HeightAt(p.X, p.Y) + crystalLift, Z: p.Y}
	}
	return out
}
