// Package noise implements seeded 2D gradient noise and fractal summation.
package noise

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Size is the lattice period. It must be a power of two.
const Size = 256

// gradients are the eight lattice directions selected by hash&7.
var gradients = [8][2]float32{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Field is a deterministic gradient noise evaluator.
// The permutation table is duplicated so corner lookups never wrap.
type Field struct {
	perm [2 * Size]int
	seed uint64
}

// New builds a field whose permutation is shuffled by seed.
func New(seed uint64) *Field {
	f := &Field{seed: seed}
	for i := 0; i < Size; i++ {
		f.perm[i] = i
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := Size - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		f.perm[i], f.perm[j] = f.perm[j], f.perm[i]
	}
	copy(f.perm[Size:], f.perm[:Size])
	return f
}

// Seed returns the seed the field was built with.
func (f *Field) Seed() uint64 { return f.seed }

// fade is the quintic 6t^5 - 15t^4 + 10t^3 curve.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad(hash int, x, y float32) float32 {
	g := gradients[hash&7]
	return g[0]*x + g[1]*y
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

// Sample2D returns the noise value at (x, y). The result lies in [-1, 1]
// and is zero at every integer lattice point.
func (f *Field) Sample2D(x, y float32) float32 {
	fx := math32.Floor(x)
	fy := math32.Floor(y)
	xi := int(fx) & (Size - 1)
	yi := int(fy) & (Size - 1)
	x -= fx
	y -= fy

	u := fade(x)
	v := fade(y)

	a := f.perm[xi] + yi
	b := f.perm[xi+1] + yi
	aa, ab := f.perm[a], f.perm[a+1]
	ba, bb := f.perm[b], f.perm[b+1]

	bottom := lerp(u, grad(aa, x, y), grad(ba, x-1, y))
	top := lerp(u, grad(ab, x, y-1), grad(bb, x-1, y-1))
	return lerp(v, bottom, top)
}

// FractalSum accumulates octaves of Sample2D at doubling frequency and
// persistence-decaying amplitude, normalized by the amplitude total.
func (f *Field) FractalSum(x, y float32, octaves int, persistence float32) float32 {
	if octaves <= 0 {
		return 0
	}

	var total, maxAmp float32
	freq, amp := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		total += f.Sample2D(x*freq, y*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= 2
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
