package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationTable(t *testing.T) {
	f := New(3)

	seen := make(map[int]bool, Size)
	for i := 0; i < Size; i++ {
		v := f.perm[i]
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, Size)
		assert.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
		assert.Equal(t, v, f.perm[i+Size], "second half must mirror the first")
	}
}

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	c := New(43)

	differs := false
	for i := 0; i < 200; i++ {
		x := float32(i)*0.173 - 7
		y := float32(i)*0.291 + 3
		assert.Equal(t, a.Sample2D(x, y), b.Sample2D(x, y))
		assert.Equal(t, a.Sample2D(x, y), a.Sample2D(x, y), "repeated calls must agree")
		if a.Sample2D(x, y) != c.Sample2D(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should give different fields")
}

func TestSampleRange(t *testing.T) {
	for _, seed := range []uint64{0, 1, 99, 1 << 40} {
		f := New(seed)
		for i := -60; i < 60; i++ {
			for j := -60; j < 60; j++ {
				v := f.Sample2D(float32(i)*0.137, float32(j)*0.211)
				require.GreaterOrEqual(t, v, float32(-1), "seed %d at (%d,%d)", seed, i, j)
				require.LessOrEqual(t, v, float32(1), "seed %d at (%d,%d)", seed, i, j)
			}
		}
	}
}

func TestZeroAtLattice(t *testing.T) {
	f := New(5)
	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			assert.InDelta(t, 0, f.Sample2D(float32(x), float32(y)), 1e-6)
		}
	}
}

func TestContinuousAcrossCells(t *testing.T) {
	f := New(11)
	const eps = 1e-4
	for k := -3; k <= 3; k++ {
		for _, y := range []float32{0.25, 0.5, 1.75, -2.4} {
			left := f.Sample2D(float32(k)-eps, y)
			right := f.Sample2D(float32(k)+eps, y)
			assert.InDelta(t, left, right, 1e-3, "seam in x at %d", k)

			below := f.Sample2D(y, float32(k)-eps)
			above := f.Sample2D(y, float32(k)+eps)
			assert.InDelta(t, below, above, 1e-3, "seam in y at %d", k)
		}
	}
}

func TestFractalSum(t *testing.T) {
	f := New(8)

	t.Run("no octaves", func(t *testing.T) {
		assert.Zero(t, f.FractalSum(0.3, 0.7, 0, 0.5))
		assert.Zero(t, f.FractalSum(0.3, 0.7, -2, 0.5))
	})

	t.Run("single octave is plain noise", func(t *testing.T) {
		assert.Equal(t, f.Sample2D(1.3, 2.7), f.FractalSum(1.3, 2.7, 1, 0.5))
	})

	t.Run("matches documented sum", func(t *testing.T) {
		x, y := float32(0.42), float32(0.17)
		want := (f.Sample2D(x, y) + 0.5*f.Sample2D(2*x, 2*y) + 0.25*f.Sample2D(4*x, 4*y)) / 1.75
		assert.InDelta(t, want, f.FractalSum(x, y, 3, 0.5), 1e-6)
	})

	t.Run("bounded", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			for j := 0; j < 50; j++ {
				v := f.FractalSum(float32(i)/50, float32(j)/50, 5, 0.5)
				require.GreaterOrEqual(t, v, float32(-1))
				require.LessOrEqual(t, v, float32(1))
			}
		}
	})
}

func TestSeedReported(t *testing.T) {
	assert.Equal(t, uint64(42), New(42).Seed())
}
