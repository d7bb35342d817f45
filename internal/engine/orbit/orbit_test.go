package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/godrays/pkg/math"
)

func testParams() Params {
	return Params{Radius: 15, DefaultSpeed: 0.5, FastSpeed: 5, Acceleration: 0.2, Damping: 0.5}
}

func TestSpeedConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name string
		fast bool
		from float32
	}{
		{"speed up", true, 0.5},
		{"slow down", false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(testParams(), math.Vec3{})
			l.speed = tt.from
			target := l.params.DefaultSpeed
			if tt.fast {
				target = l.params.FastSpeed
			}

			prevGap := absf(target - l.speed)
			for i := 0; i < 2000; i++ {
				l.Update(1.0/60, tt.fast)
				gap := absf(target - l.speed)
				assert.LessOrEqual(t, gap, prevGap, "step %d moved away from target", i)
				if tt.fast {
					assert.LessOrEqual(t, l.Speed(), target)
				} else {
					assert.GreaterOrEqual(t, l.Speed(), target)
				}
				prevGap = gap
			}
			assert.Equal(t, target, l.Speed())
		})
	}
}

func TestLargeStepClampsToTarget(t *testing.T) {
	l := New(testParams(), math.Vec3{})
	l.Update(100, true)
	assert.Equal(t, float32(5), l.Speed())
}

func TestRotationAccumulates(t *testing.T) {
	l := New(testParams(), math.Vec3{})
	l.Update(1, false)
	l.Update(1, false)
	assert.InDelta(t, 1.0, l.Rotation(), 1e-6)
}

func TestPositionAtZeroRotation(t *testing.T) {
	center := math.Vec3{X: 0.2, Y: 11, Z: 0}
	l := New(testParams(), center)

	// t = 0.5: bezier = 0.25·base + 0.5·P1 + 0.25·P2
	base := center.Add(math.Vec3{X: 15})
	p1 := center.Add(math.Vec3{Y: 5})
	p2 := center.Add(math.Vec3{X: 5})
	curve := base.Scale(0.25).Add(p1.Scale(0.5)).Add(p2.Scale(0.25))
	want := base.Add(curve.Sub(base).Scale(0.5))

	assert.True(t, l.Position().ApproxEqual(want, 1e-4), "got %v want %v", l.Position(), want)
}

func TestZeroDampingIsCircular(t *testing.T) {
	p := testParams()
	p.Damping = 0
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	l := New(p, center)

	for i := 0; i < 100; i++ {
		l.Update(0.1, i%2 == 0)
		pos := l.Position()
		assert.InDelta(t, 15, pos.Sub(center).Length(), 1e-3)
		assert.InDelta(t, center.Y, pos.Y, 1e-5)
	}
}

func TestSetCenter(t *testing.T) {
	p := testParams()
	p.Damping = 0
	l := New(p, math.Vec3{})
	l.SetCenter(math.Vec3{Y: 10})
	l.Update(0, false)
	assert.InDelta(t, 10, l.Position().Y, 1e-5)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
