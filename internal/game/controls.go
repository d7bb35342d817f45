package game

import (
	"github.com/Faultbox/godrays/internal/engine/camera"
	"github.com/Faultbox/godrays/internal/engine/input"
)

var moveKeys = [...]struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyForward, camera.Forward},
	{input.KeyBackward, camera.Backward},
	{input.KeyLeft, camera.Left},
	{input.KeyRight, camera.Right},
}

// applyControls moves both cameras for one frame and reports whether the
// fixed observation view is held.
func applyControls(s *input.State, dt float32, free *camera.FirstPerson, fixed *camera.Fixed) bool {
	for _, m := range moveKeys {
		if s.Held(m.key) {
			free.Move(m.dir, dt)
		}
	}
	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 {
		free.Look(dx, dy)
	}

	if s.Held(input.KeyLowerFixed) {
		fixed.Lower()
	}
	if s.Held(input.KeyRaiseFixed) {
		fixed.Raise()
	}
	return s.Held(input.KeyFixedView)
}

// activeViewer picks the camera the frame is rendered from.
func activeViewer(fixedView bool, free *camera.FirstPerson, fixed *camera.Fixed) camera.Viewer {
	if fixedView {
		return fixed
	}
	return free
}
