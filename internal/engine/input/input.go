// Package input turns SDL2 events into held-key state, key presses, mouse
// motion and window requests for one frame.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Key is a bound action key.
type Key int

const (
	KeyForward    Key = iota // W
	KeyBackward              // S
	KeyLeft                  // A
	KeyRight                 // D
	KeyFixedView             // E, held
	KeyLowerFixed            // N
	KeyRaiseFixed            // M
	KeyScreenshot            // F12
	KeyQuit                  // Escape
	keyCount
)

var bindings = map[sdl.Scancode]Key{
	sdl.SCANCODE_W:      KeyForward,
	sdl.SCANCODE_S:      KeyBackward,
	sdl.SCANCODE_A:      KeyLeft,
	sdl.SCANCODE_D:      KeyRight,
	sdl.SCANCODE_E:      KeyFixedView,
	sdl.SCANCODE_N:      KeyLowerFixed,
	sdl.SCANCODE_M:      KeyRaiseFixed,
	sdl.SCANCODE_F12:    KeyScreenshot,
	sdl.SCANCODE_ESCAPE: KeyQuit,
}

// Lookup returns the action bound to a scancode.
func Lookup(sc sdl.Scancode) (Key, bool) {
	k, ok := bindings[sc]
	return k, ok
}

// State is the input gathered since the last BeginFrame.
type State struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	mouseDX float32
	mouseDY float32

	quit         bool
	resized      bool
	resizeWidth  int32
	resizeHeight int32
}

// BeginFrame clears per-frame edges and motion. Held keys persist.
func (s *State) BeginFrame() {
	s.pressed = [keyCount]bool{}
	s.mouseDX, s.mouseDY = 0, 0
	s.resized = false
}

// Press records a key going down. Auto-repeat does not count as a new press.
func (s *State) Press(k Key, repeat bool) {
	if k < 0 || k >= keyCount {
		return
	}
	if !repeat && !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = true
	if k == KeyQuit {
		s.quit = true
	}
}

// Release records a key going up.
func (s *State) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.held[k] = false
}

// Move accumulates relative mouse motion. Positive dy is downward.
func (s *State) Move(dx, dy float32) {
	s.mouseDX += dx
	s.mouseDY += dy
}

// RequestQuit marks the window as closing.
func (s *State) RequestQuit() { s.quit = true }

// RequestResize records the latest window size; earlier sizes in the same
// frame are superseded.
func (s *State) RequestResize(width, height int32) {
	s.resized = true
	s.resizeWidth, s.resizeHeight = width, height
}

// Held reports whether a key is currently down.
func (s *State) Held(k Key) bool {
	return k >= 0 && k < keyCount && s.held[k]
}

// Pressed reports whether a key went down this frame.
func (s *State) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && s.pressed[k]
}

// MouseDelta returns the motion this frame as look offsets: x to the
// right, y upward.
func (s *State) MouseDelta() (x, y float32) {
	return s.mouseDX, -s.mouseDY
}

// Quit reports whether the window was closed or Escape pressed.
func (s *State) Quit() bool { return s.quit }

// Resize returns the pending window size, if any.
func (s *State) Resize() (width, height int32, ok bool) {
	return s.resizeWidth, s.resizeHeight, s.resized
}

// Input polls SDL and keeps the resulting State.
type Input struct {
	state State
}

// New creates an input handler.
func New() *Input {
	return &Input{}
}

// SetRelativeMouse captures the cursor so motion is reported unbounded.
func SetRelativeMouse(enabled bool) {
	sdl.SetRelativeMouseMode(enabled)
}

// Update drains the SDL event queue into a fresh frame of state.
func (i *Input) Update() *State {
	i.state.BeginFrame()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return &i.state
}

func (i *Input) handle(event sdl.Event) {
	s := &i.state
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.RequestQuit()

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			s.RequestResize(e.Data1, e.Data2)
		case sdl.WINDOWEVENT_CLOSE:
			s.RequestQuit()
		}

	case *sdl.KeyboardEvent:
		k, ok := Lookup(e.Keysym.Scancode)
		if !ok {
			return
		}
		if e.Type == sdl.KEYDOWN {
			s.Press(k, e.Repeat != 0)
		} else if e.Type == sdl.KEYUP {
			s.Release(k)
		}

	case *sdl.MouseMotionEvent:
		s.Move(float32(e.XRel), float32(e.YRel))
	}
}

// State returns the state gathered by the last Update.
func (i *Input) State() *State {
	return &i.state
}
