package daynight

import (
	"fmt"

	"github.com/Faultbox/godrays/pkg/math"
)

// Easing shapes the interpolation factor inside a band.
type Easing int

const (
	Linear Easing = iota
	Smooth        // cubic hermite 3t²-2t³
)

// Apply maps t in [0,1] through the easing curve.
func (e Easing) Apply(t float32) float32 {
	if e == Smooth {
		return math.Smoothstep(t)
	}
	return math.Clamp(t, 0, 1)
}

func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("Easing(%d)", int(e))
	}
}

// Band blends From into To while the sun angle moves from Start to End.
type Band[T any] struct {
	Start, End float32
	From, To   T
	Easing     Easing
}

// MixFunc blends two values by t.
type MixFunc[T any] func(a, b T, t float32) T

// MinAngle and MaxAngle bound the sun angle. Every table covers them.
const (
	MinAngle = -90
	MaxAngle = 90
)

// hold is a band that keeps v constant across [start, end).
func hold[T any](start, end float32, v T) Band[T] {
	return Band[T]{Start: start, End: end, From: v, To: v}
}

// Table is a sorted run of contiguous bands covering [MinAngle, MaxAngle].
// Angles outside the bands hold the nearest endpoint value.
type Table[T any] struct {
	bands []Band[T]
	mix   MixFunc[T]
}

// NewTable validates that the bands are non-empty, ordered, contiguous and
// span the full sun angle range.
func NewTable[T any](mix MixFunc[T], bands ...Band[T]) (*Table[T], error) {
	if mix == nil {
		return nil, fmt.Errorf("band table: nil mix function")
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("band table: no bands")
	}
	for i, b := range bands {
		if b.End <= b.Start {
			return nil, fmt.Errorf("band %d: end %g must exceed start %g", i, b.End, b.Start)
		}
		if i > 0 && bands[i-1].End != b.Start {
			return nil, fmt.Errorf("band %d: starts at %g but previous band ends at %g", i, b.Start, bands[i-1].End)
		}
	}
	if first, last := bands[0].Start, bands[len(bands)-1].End; first > MinAngle || last < MaxAngle {
		return nil, fmt.Errorf("band table: covers [%g, %g], need [%d, %d]", first, last, MinAngle, MaxAngle)
	}
	return &Table[T]{bands: bands, mix: mix}, nil
}

// MustTable is NewTable for package-level tables that are known to be valid.
func MustTable[T any](mix MixFunc[T], bands ...Band[T]) *Table[T] {
	t, err := NewTable(mix, bands...)
	if err != nil {
		panic(err)
	}
	return t
}

// At evaluates the table. Bands are half-open except the last, which
// includes its end angle.
func (t *Table[T]) At(angle float32) T {
	first, last := t.bands[0], t.bands[len(t.bands)-1]
	if angle < first.Start {
		return first.From
	}
	if angle >= last.End {
		return last.To
	}
	for _, b := range t.bands {
		if angle < b.End {
			f := b.Easing.Apply((angle - b.Start) / (b.End - b.Start))
			return t.mix(b.From, b.To, f)
		}
	}
	return last.To
}

func mixVec3(a, b math.Vec3, t float32) math.Vec3 { return a.Lerp(b, t) }

func mixFloat(a, b, t float32) float32 { return math.Lerp(a, b, t) }

func mixLighting(a, b Lighting, t float32) Lighting {
	return Lighting{
		Ambient:  a.Ambient.Lerp(b.Ambient, t),
		Diffuse:  a.Diffuse.Lerp(b.Diffuse, t),
		Specular: a.Specular.Lerp(b.Specular, t),
	}
}
