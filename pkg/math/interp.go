package math

import "github.com/chewxy/math32"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smoothstep is the cubic hermite ease 3t²-2t³ with t clamped to [0,1].
func Smoothstep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// QuadBezier evaluates the quadratic Bezier curve through p0, p1, p2 at t.
func QuadBezier(p0, p1, p2 Vec3, t float32) Vec3 {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

// SRGBToLinear decodes a gamma-encoded channel with the given exponent.
func SRGBToLinear(c, gamma float32) float32 {
	return math32.Pow(c, gamma)
}
