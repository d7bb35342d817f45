package pipeline

import (
	"github.com/Faultbox/godrays/internal/engine/daynight"
	"github.com/Faultbox/godrays/internal/engine/scene"
	"github.com/Faultbox/godrays/pkg/math"
)

// FrameState is everything that changes between frames. The game fills it
// and hands it to Render by pointer.
type FrameState struct {
	Time       float32 // seconds since start
	CameraPos  math.Vec3
	View       math.Mat4
	Projection math.Mat4
	Light      daynight.LightState
	OrbitLight math.Vec3 // point light position
}

// NewFrameState builds a frame from a camera view, a vertical field of view
// in degrees and the viewport size.
func NewFrameState(cameraPos math.Vec3, view math.Mat4, fovDeg float32, width, height int32, near, far float32) *FrameState {
	return &FrameState{
		CameraPos:  cameraPos,
		View:       view,
		Projection: Projection(fovDeg, width, height, near, far),
	}
}

// Projection returns the perspective matrix for a viewport.
func Projection(fovDeg float32, width, height int32, near, far float32) math.Mat4 {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	return math.Perspective(math.Radians(fovDeg), float32(width)/float32(height), near, far)
}

// placement returns the per-frame input to dynamic drawables.
func (f *FrameState) placement() scene.Frame {
	return scene.Frame{Time: f.Time, LightPosition: f.OrbitLight}
}

// SunPosition is the sun billboard centre at distance from the origin.
func (f *FrameState) SunPosition(distance float32) math.Vec3 {
	return f.Light.Position(distance)
}

// ScreenPosition projects a world point to [0,1] screen coordinates with
// the origin bottom left. inFront is false when the point is behind the
// camera, where the projection is meaningless.
func (f *FrameState) ScreenPosition(world math.Vec3) (pos math.Vec2, inFront bool) {
	clip := f.Projection.Mul(f.View).MulVec4(math.Vec4{world.X, world.Y, world.Z, 1})
	if clip[3] <= 0 {
		return math.Vec2{X: 0.5, Y: 0.5}, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return math.Vec2{X: (ndcX + 1) * 0.5, Y: (ndcY + 1) * 0.5}, true
}
