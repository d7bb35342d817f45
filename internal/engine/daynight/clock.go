// Package daynight simulates the sun cycle and derives light colours from
// the sun angle through band tables.
package daynight

import (
	"math"

	"github.com/chewxy/math32"
)

// Clock accumulates the sun phase. It advances a fixed amount per rendered
// frame rather than per second.
type Clock struct {
	phase float64
	rate  float64
}

// NewClock creates a clock starting at phase start.
func NewClock(rate, start float32) *Clock {
	return &Clock{phase: float64(start), rate: float64(rate)}
}

// Advance steps the clock by one rendered frame.
func (c *Clock) Advance() {
	c.phase += c.rate
	// cos(phase·π) has period 2
	if c.phase >= 2 {
		c.phase = math.Mod(c.phase, 2)
	}
}

// Phase returns the current phase in [0, 2).
func (c *Clock) Phase() float32 { return float32(c.phase) }

// SetPhase jumps to a phase.
func (c *Clock) SetPhase(p float32) { c.phase = float64(p) }

// SunAngle returns cos(phase·π)·90 in degrees.
func (c *Clock) SunAngle() float32 {
	return math32.Cos(float32(c.phase)*math32.Pi) * 90
}

// State returns the light state for the current sun angle.
func (c *Clock) State() LightState {
	return StateAt(c.SunAngle())
}
