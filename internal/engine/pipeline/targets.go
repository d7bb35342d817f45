package pipeline

// resizable is a render target sized to the window.
type resizable interface {
	Name() string
	Resize(width, height int32)
	Size() (width, height int32)
}

// resizeTargets resizes every window-sized target. The shadow map is never
// passed here; its resolution is fixed.
func resizeTargets(targets []resizable, width, height int32) {
	for _, t := range targets {
		t.Resize(width, height)
	}
}
