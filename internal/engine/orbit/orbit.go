// Package orbit moves the point light around the obelisk.
package orbit

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

// Params configures the orbit.
type Params struct {
	Radius       float32
	DefaultSpeed float32 // rad/s
	FastSpeed    float32 // rad/s while the boost is held
	Acceleration float32 // rad/s²
	Damping      float32 // scale of the Bezier wander
}

// Light is a point light circling a centre with a Bezier wander on top.
type Light struct {
	params        Params
	center        math.Vec3
	speed         float32
	totalRotation float32
	position      math.Vec3
}

// New creates a light orbiting center at the default speed.
func New(p Params, center math.Vec3) *Light {
	l := &Light{params: p, center: center, speed: p.DefaultSpeed}
	l.position = l.positionAt(0)
	return l
}

// SetCenter moves the orbit centre, e.g. when the obelisk bobs.
func (l *Light) SetCenter(c math.Vec3) {
	l.center = c
}

// Update eases the angular speed toward its target and advances the orbit.
func (l *Light) Update(dt float32, fast bool) {
	target := l.params.DefaultSpeed
	if fast {
		target = l.params.FastSpeed
	}

	step := l.params.Acceleration * dt
	switch {
	case l.speed < target:
		l.speed = math32.Min(l.speed+step, target)
	case l.speed > target:
		l.speed = math32.Max(l.speed-step, target)
	}

	l.totalRotation += l.speed * dt
	l.position = l.positionAt(l.totalRotation)
}

func (l *Light) positionAt(rotation float32) math.Vec3 {
	radial := math.Vec3{X: l.params.Radius}
	base := l.center.Add(math.RotateY(rotation).TransformPoint(radial))

	p1 := l.center.Add(math.Vec3{Y: 5})
	p2 := l.center.Add(math.Vec3{X: 5})
	t := (math32.Sin(rotation) + 1) / 2

	offset := math.QuadBezier(base, p1, p2, t).Sub(base).Scale(l.params.Damping)
	return base.Add(offset)
}

// Position returns the light's world position after the last update.
func (l *Light) Position() math.Vec3 { return l.position }

// Speed returns the current angular speed.
func (l *Light) Speed() float32 { return l.speed }

// Rotation returns the accumulated orbit angle in radians.
func (l *Light) Rotation() float32 { return l.totalRotation }
