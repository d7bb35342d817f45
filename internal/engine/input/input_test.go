package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHeldPersistsAcrossFrames(t *testing.T) {
	var s State
	s.Press(KeyForward, false)
	assert.True(t, s.Pressed(KeyForward))
	assert.True(t, s.Held(KeyForward))

	s.BeginFrame()
	assert.False(t, s.Pressed(KeyForward))
	assert.True(t, s.Held(KeyForward))

	s.Release(KeyForward)
	assert.False(t, s.Held(KeyForward))
}

func TestRepeatIsNotAPress(t *testing.T) {
	var s State
	s.Press(KeyRaiseFixed, false)
	s.BeginFrame()
	s.Press(KeyRaiseFixed, true)
	assert.False(t, s.Pressed(KeyRaiseFixed))
	assert.True(t, s.Held(KeyRaiseFixed))
}

func TestMouseDeltaAccumulatesAndFlipsY(t *testing.T) {
	var s State
	s.Move(3, 4)
	s.Move(2, -1)
	x, y := s.MouseDelta()
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(-3), y)

	s.BeginFrame()
	x, y = s.MouseDelta()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestEscapeQuits(t *testing.T) {
	var s State
	assert.False(t, s.Quit())
	s.Press(KeyQuit, false)
	assert.True(t, s.Quit())
}

func TestResizeKeepsLatest(t *testing.T) {
	var s State
	s.RequestResize(800, 600)
	s.RequestResize(1024, 768)
	w, h, ok := s.Resize()
	assert.True(t, ok)
	assert.Equal(t, int32(1024), w)
	assert.Equal(t, int32(768), h)

	s.BeginFrame()
	_, _, ok = s.Resize()
	assert.False(t, ok)
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	var s State
	s.Press(Key(-1), false)
	s.Press(keyCount, false)
	s.Release(keyCount)
	assert.False(t, s.Held(keyCount))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want Key
	}{
		{sdl.SCANCODE_W, KeyForward},
		{sdl.SCANCODE_A, KeyLeft},
		{sdl.SCANCODE_E, KeyFixedView},
		{sdl.SCANCODE_F12, KeyScreenshot},
		{sdl.SCANCODE_ESCAPE, KeyQuit},
	}
	for _, tt := range tests {
		k, ok := Lookup(tt.sc)
		assert.True(t, ok)
		assert.Equal(t, tt.want, k)
	}
	_, ok := Lookup(sdl.SCANCODE_Q)
	assert.False(t, ok)
}

func TestHandleTranslatesEvents(t *testing.T) {
	in := New()
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_D}})
	in.handle(&sdl.MouseMotionEvent{XRel: 7, YRel: 2})
	in.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480})

	s := in.State()
	assert.True(t, s.Held(KeyRight))
	x, y := s.MouseDelta()
	assert.Equal(t, float32(7), x)
	assert.Equal(t, float32(-2), y)
	w, h, ok := s.Resize()
	assert.True(t, ok)
	assert.Equal(t, int32(640), w)
	assert.Equal(t, int32(480), h)

	in.handle(&sdl.QuitEvent{})
	assert.True(t, s.Quit())
}
