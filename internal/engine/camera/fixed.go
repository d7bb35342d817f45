package camera

import "github.com/Faultbox/godrays/pkg/math"

// Fixed is the observation camera. It only moves vertically.
type Fixed struct {
	position math.Vec3
	basis    Basis
	step     float32
}

// NewFixed creates an observation camera facing -Z.
func NewFixed(position math.Vec3, step float32) *Fixed {
	return &Fixed{position: position, basis: BasisFromEuler(DefaultYaw, DefaultPitch), step: step}
}

// Position returns the eye position.
func (c *Fixed) Position() math.Vec3 { return c.position }

// Zoom returns the vertical field of view in degrees.
func (c *Fixed) Zoom() float32 { return DefaultZoom }

// ViewMatrix returns the look-at matrix.
func (c *Fixed) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.basis.Front), c.basis.Up)
}

// Raise nudges the camera up by one step per call.
func (c *Fixed) Raise() { c.position.Y += c.step }

// Lower nudges the camera down by one step per call.
func (c *Fixed) Lower() { c.position.Y -= c.step }
