package gui

import (
	"math"
	"time"
)

// FPSWindow is how much frame time is averaged into one FPS reading.
const FPSWindow = 100 * time.Millisecond

// FrameTimer turns a stream of frame timestamps into a frame delta and a
// periodically refreshed integer FPS estimate.
type FrameTimer struct {
	last   time.Time
	acc    time.Duration
	frames int
	fps    int
}

func NewFrameTimer(start time.Time) *FrameTimer {
	return &FrameTimer{last: start}
}

// Tick records a frame at now and returns the time since the previous tick.
// Once FPSWindow has accumulated, the FPS is recomputed and the window restarts.
func (t *FrameTimer) Tick(now time.Time) time.Duration {
	dt := now.Sub(t.last)
	if dt < 0 {
		dt = 0
	}
	t.last = now
	t.acc += dt
	t.frames++

	if t.acc >= FPSWindow {
		t.fps = int(math.Round(float64(t.frames) / t.acc.Seconds()))
		t.acc = 0
		t.frames = 0
	}
	return dt
}

func (t *FrameTimer) FPS() int                   { return t.fps }
func (t *FrameTimer) Accumulated() time.Duration { return t.acc }
func (t *FrameTimer) Frames() int                { return t.frames }
