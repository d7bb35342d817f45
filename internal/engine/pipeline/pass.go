package pipeline

import (
	"errors"
	"fmt"
)

// Pass identifies one stage of a frame. Passes run in declaration order.
type Pass int

const (
	PassShadow Pass = iota
	PassOcclusion
	PassMain
	PassLightShaft
	PassComposite
	passCount
)

var passNames = [...]string{"shadow", "occlusion", "main", "light-shaft", "composite"}

func (p Pass) String() string {
	if p >= 0 && p < passCount {
		return passNames[p]
	}
	return fmt.Sprintf("pass(%d)", int(p))
}

var (
	// ErrPassOrder is returned when a pass starts out of sequence.
	ErrPassOrder = errors.New("render pass out of order")
	// ErrPassActive is returned when a pass starts while another is open.
	ErrPassActive = errors.New("render pass already active")
	// ErrFrameActive is returned when frame-level work (a new frame,
	// resize, teardown) is attempted mid-frame.
	ErrFrameActive = errors.New("frame in progress")
)

// passTracker enforces shadow, occlusion, main, light shaft, composite, in
// that order, once each per frame, with no pass nested inside another.
type passTracker struct {
	inFrame bool
	active  bool
	current Pass
	next    Pass
}

func (t *passTracker) beginFrame() error {
	if t.inFrame {
		return fmt.Errorf("begin frame: %w", ErrFrameActive)
	}
	t.inFrame = true
	t.active = false
	t.next = PassShadow
	return nil
}

func (t *passTracker) begin(p Pass) error {
	if !t.inFrame {
		return fmt.Errorf("begin %s outside a frame: %w", p, ErrPassOrder)
	}
	if t.active {
		return fmt.Errorf("begin %s inside %s: %w", p, t.current, ErrPassActive)
	}
	if p != t.next {
		return fmt.Errorf("begin %s, expected %s: %w", p, t.next, ErrPassOrder)
	}
	t.active = true
	t.current = p
	return nil
}

func (t *passTracker) end(p Pass) error {
	if !t.active || t.current != p {
		return fmt.Errorf("end %s which is not active: %w", p, ErrPassOrder)
	}
	t.active = false
	t.next = p + 1
	return nil
}

func (t *passTracker) endFrame() error {
	if t.active {
		return fmt.Errorf("end frame inside %s: %w", t.current, ErrPassActive)
	}
	if t.next != passCount {
		return fmt.Errorf("end frame before %s: %w", t.next, ErrPassOrder)
	}
	t.inFrame = false
	return nil
}

// abort closes a frame that failed part way so the next one can start.
func (t *passTracker) abort() {
	t.inFrame = false
	t.active = false
}

func (t *passTracker) idle() bool {
	return !t.inFrame
}
