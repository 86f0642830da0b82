package gui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tickN(ft *FrameTimer, now time.Time, n int, dt time.Duration) time.Time {
	for i := 0; i < n; i++ {
		now = now.Add(dt)
		ft.Tick(now)
	}
	return now
}

func TestFrameTimerFPS(t *testing.T) {
	cases := []struct {
		name   string
		frames int
		dt     time.Duration
		fps    int
	}{
		{"60hz-ish", 10, 10 * time.Millisecond, 100},
		{"slow", 3, 40 * time.Millisecond, 25},
		{"rounds", 7, 15 * time.Millisecond, 67}, // 7 / 0.105 = 66.67
		{"one long frame", 1, 250 * time.Millisecond, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start := time.Unix(0, 0)
			ft := NewFrameTimer(start)
			tickN(ft, start, c.frames-1, c.dt)
			assert.Zero(t, ft.FPS(), "no reading before the window fills")

			tickN(ft, start.Add(time.Duration(c.frames-1)*c.dt), 1, c.dt)
			assert.Equal(t, c.fps, ft.FPS())
			assert.Zero(t, ft.Accumulated())
			assert.Zero(t, ft.Frames())
		})
	}
}

func TestFrameTimerKeepsReadingBetweenWindows(t *testing.T) {
	start := time.Unix(0, 0)
	ft := NewFrameTimer(start)
	now := tickN(ft, start, 10, 10*time.Millisecond)
	assert.Equal(t, 100, ft.FPS())

	tickN(ft, now, 3, 10*time.Millisecond)
	assert.Equal(t, 100, ft.FPS())
	assert.Equal(t, 30*time.Millisecond, ft.Accumulated())
	assert.Equal(t, 3, ft.Frames())
}

func TestFrameTimerDelta(t *testing.T) {
	start := time.Unix(0, 0)
	ft := NewFrameTimer(start)
	assert.Equal(t, 16*time.Millisecond, ft.Tick(start.Add(16*time.Millisecond)))
	assert.Zero(t, ft.Tick(start), "clock going backwards counts as zero")
}
