package game

import "time"

// resizeBarrier holds the latest requested drawable size until the loop
// applies it between frames.
type resizeBarrier struct {
	pending       bool
	width, height int32
}

func (r *resizeBarrier) request(width, height int32) {
	r.pending = true
	r.width, r.height = width, height
}

// take returns the pending size once.
func (r *resizeBarrier) take() (width, height int32, ok bool) {
	if !r.pending {
		return 0, 0, false
	}
	r.pending = false
	return r.width, r.height, true
}

// fpsCounter reports the frame count once per interval.
type fpsCounter struct {
	interval time.Duration
	frames   int
	since    time.Time
}

func newFPSCounter(interval time.Duration, now time.Time) fpsCounter {
	return fpsCounter{interval: interval, since: now}
}

// tick counts a frame and returns the rate when an interval has passed.
func (c *fpsCounter) tick(now time.Time) (fps float64, ok bool) {
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < c.interval {
		return 0, false
	}
	fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = now
	return fps, true
}

// frameBudget returns how long to sleep to hold limit frames per second.
// A limit of 0 or less disables the cap.
func frameBudget(limit int, frameTime time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	target := time.Second / time.Duration(limit)
	if frameTime >= target {
		return 0
	}
	return target - frameTime
}
