// Package camera provides the free first-person camera and the fixed
// observation camera.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

const (
	DefaultYaw   = -90 // degrees, looking down -Z
	DefaultPitch = 0
	DefaultZoom  = 45 // vertical field of view in degrees
	MaxPitch     = 89
	groundOffset = 1
)

var worldUp = math.Up

// Viewer is anything the pipeline can render from.
type Viewer interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
	Zoom() float32
}

// HeightSampler reports the ground height under a world position.
type HeightSampler interface {
	HeightAt(worldX, worldZ float32) float32
}

// Direction is a planar movement request.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Basis is the orthonormal frame derived from yaw and pitch.
type Basis struct {
	Front, Right, Up math.Vec3
}

// BasisFromEuler derives the camera frame from yaw and pitch in degrees.
func BasisFromEuler(yaw, pitch float32) Basis {
	y, p := math.Radians(yaw), math.Radians(pitch)
	front := math.Vec3{
		X: math32.Cos(y) * math32.Cos(p),
		Y: math32.Sin(p),
		Z: math32.Sin(y) * math32.Cos(p),
	}.Normalize()
	right := front.Cross(worldUp).Normalize()
	return Basis{Front: front, Right: right, Up: right.Cross(front).Normalize()}
}

// FirstPerson is a yaw/pitch camera that walks on the terrain plane.
type FirstPerson struct {
	position    math.Vec3
	yaw, pitch  float32
	basis       Basis
	speed       float32
	sensitivity float32
	zoom        float32
	ground      HeightSampler
}

// NewFirstPerson creates a camera at position facing -Z.
func NewFirstPerson(position math.Vec3, speed, sensitivity float32) *FirstPerson {
	c := &FirstPerson{
		position:    position,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		speed:       speed,
		sensitivity: sensitivity,
		zoom:        DefaultZoom,
	}
	c.basis = BasisFromEuler(c.yaw, c.pitch)
	return c
}

// SetGround attaches the terrain used to keep the camera above ground.
func (c *FirstPerson) SetGround(g HeightSampler) { c.ground = g }

// SetZoom sets the vertical field of view in degrees.
func (c *FirstPerson) SetZoom(deg float32) { c.zoom = deg }

// Position returns the eye position.
func (c *FirstPerson) Position() math.Vec3 { return c.position }

// Zoom returns the vertical field of view in degrees.
func (c *FirstPerson) Zoom() float32 { return c.zoom }

// Yaw returns the heading in degrees.
func (c *FirstPerson) Yaw() float32 { return c.yaw }

// Pitch returns the elevation in degrees.
func (c *FirstPerson) Pitch() float32 { return c.pitch }

// Basis returns the current camera frame.
func (c *FirstPerson) Basis() Basis { return c.basis }

// ViewMatrix returns the look-at matrix for the current frame.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.basis.Front), c.basis.Up)
}

// Move walks along the ground plane. Pitch does not affect the heading.
func (c *FirstPerson) Move(dir Direction, dt float32) {
	velocity := c.speed * dt
	forward := math.Vec3{X: c.basis.Front.X, Z: c.basis.Front.Z}.Normalize()

	next := c.position
	switch dir {
	case Forward:
		next = next.Add(forward.Scale(velocity))
	case Backward:
		next = next.Sub(forward.Scale(velocity))
	case Left:
		next = next.Sub(c.basis.Right.Scale(velocity))
	case Right:
		next = next.Add(c.basis.Right.Scale(velocity))
	}

	if c.ground != nil {
		next.Y = math32.Max(next.Y, c.ground.HeightAt(next.X, next.Z)+groundOffset)
	}
	c.position = next
}

// Look applies a mouse offset. Positive y looks up.
func (c *FirstPerson) Look(xoffset, yoffset float32) {
	c.yaw += xoffset * c.sensitivity
	c.pitch = math.Clamp(c.pitch+yoffset*c.sensitivity, -MaxPitch, MaxPitch)
	c.basis = BasisFromEuler(c.yaw, c.pitch)
}
