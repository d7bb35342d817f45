package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/godrays/internal/engine/camera"
	"github.com/Faultbox/godrays/internal/engine/input"
	"github.com/Faultbox/godrays/pkg/math"
)

func newCameras() (*camera.FirstPerson, *camera.Fixed) {
	return camera.NewFirstPerson(math.Vec3{Z: 10}, 2, 0.1), camera.NewFixed(math.Vec3{Y: 5, Z: 20}, 0.2)
}

func TestApplyControlsMovesFreeCamera(t *testing.T) {
	free, fixed := newCameras()
	var s input.State
	s.Press(input.KeyForward, false)

	fixedView := applyControls(&s, 1, free, fixed)
	assert.False(t, fixedView)
	assert.InDelta(t, 8, free.Position().Z, 1e-4)
	assert.Equal(t, math.Vec3{Y: 5, Z: 20}, fixed.Position())
}

func TestApplyControlsFixedView(t *testing.T) {
	free, fixed := newCameras()
	var s input.State
	s.Press(input.KeyFixedView, false)
	s.Press(input.KeyRaiseFixed, false)

	require.True(t, applyControls(&s, 0.016, free, fixed))
	assert.InDelta(t, 5.2, fixed.Position().Y, 1e-5)

	s.Release(input.KeyRaiseFixed)
	s.Press(input.KeyLowerFixed, false)
	applyControls(&s, 0.016, free, fixed)
	applyControls(&s, 0.016, free, fixed)
	assert.InDelta(t, 4.8, fixed.Position().Y, 1e-5)

	assert.Same(t, camera.Viewer(fixed), activeViewer(true, free, fixed))
	assert.Same(t, camera.Viewer(free), activeViewer(false, free, fixed))
}

func TestApplyControlsMouseLook(t *testing.T) {
	free, fixed := newCameras()
	yaw := free.Yaw()
	var s input.State
	s.Move(10, 0)
	applyControls(&s, 0.016, free, fixed)
	assert.InDelta(t, yaw+1, free.Yaw(), 1e-5)
}

func TestResizeBarrierKeepsLatest(t *testing.T) {
	var r resizeBarrier
	_, _, ok := r.take()
	assert.False(t, ok)

	r.request(800, 600)
	r.request(1920, 1080)
	w, h, ok := r.take()
	require.True(t, ok)
	assert.Equal(t, int32(1920), w)
	assert.Equal(t, int32(1080), h)

	_, _, ok = r.take()
	assert.False(t, ok)
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFPSCounter(time.Second, start)
	for i := 1; i < 60; i++ {
		_, ok := c.tick(start.Add(time.Duration(i) * 10 * time.Millisecond))
		assert.False(t, ok)
	}
	rate, ok := c.tick(start.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 60, rate, 1e-9)
}

func TestFrameBudget(t *testing.T) {
	assert.Zero(t, frameBudget(0, time.Millisecond))
	assert.Zero(t, frameBudget(100, 20*time.Millisecond))
	assert.Equal(t, 6*time.Millisecond, frameBudget(100, 4*time.Millisecond))
}
