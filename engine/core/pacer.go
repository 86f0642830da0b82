package core

import "time"

// PacingMode selects when the driver produces frames.
type PacingMode string

const (
	PacingVSync     PacingMode = "vsync"     // a frame per loop turn; SwapBuffers blocks on vblank
	PacingFixed     PacingMode = "fixed"     // a frame every 1/tick_hz, events are waited for in between
	PacingUnlimited PacingMode = "unlimited" // a frame per loop turn, no swap interval
)

// Pacer decides when the next redraw is due.
type Pacer struct {
	mode     PacingMode
	interval time.Duration
	next     time.Time
}

func NewPacer(cfg PacingConfig) *Pacer {
	p := &Pacer{mode: cfg.Mode}
	if cfg.Mode == PacingFixed && cfg.TickHz > 0 {
		p.interval = time.Second / time.Duration(cfg.TickHz)
	}
	return p
}

func (p *Pacer) Mode() PacingMode { return p.mode }

// SwapInterval is the value handed to the platform's swap interval.
func (p *Pacer) SwapInterval() int {
	if p.mode == PacingVSync {
		return 1
	}
	return 0
}

// Next reports whether a frame is due at now. When it is not, wait is the
// time left until the next one.
func (p *Pacer) Next(now time.Time) (due bool, wait time.Duration) {
	if p.interval <= 0 {
		return true, 0
	}
	if p.next.IsZero() {
		p.next = now.Add(p.interval)
		return true, 0
	}
	if now.Before(p.next) {
		return false, p.next.Sub(now)
	}
	p.next = p.next.Add(p.interval)
	// Fell behind by more than a tick: resync instead of bursting.
	if !p.next.After(now) {
		p.next = now.Add(p.interval)
	}
	return true, 0
}
