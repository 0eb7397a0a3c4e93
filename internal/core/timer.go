package core

import (
	"context"
	"math"
	"time"
)

// Cadence is a frame countdown that decouples simulation speed from the frame
// rate. It fires once every frames+1 ticks.
type Cadence struct {
	frames  int
	counter int
}

// NewCadence returns a countdown that starts at frames. Negative values are
// treated as zero, which fires on every tick.
func NewCadence(frames int) *Cadence {
	if frames < 0 {
		frames = 0
	}
	return &Cadence{frames: frames, counter: frames}
}

// Frames returns the configured countdown length.
func (c *Cadence) Frames() int { return c.frames }

// Restart rewinds the countdown without firing.
func (c *Cadence) Restart() { c.counter = c.frames }

// Tick decrements the countdown and reports whether a step is due. When it
// fires the counter is reset to the configured length.
func (c *Cadence) Tick() bool {
	c.counter--
	if c.counter < 0 {
		c.counter = c.frames
		return true
	}
	return false
}

// FramesFor returns the number of frames equivalent to d at the given rate,
// rounded up.
func FramesFor(d time.Duration, fps int) int {
	if d <= 0 || fps <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds() * float64(fps)))
}

// Pacer holds a loop to a fixed frame rate.
type Pacer struct {
	step time.Duration
	next time.Time
	now  func() time.Time
}

// NewPacer constructs a Pacer targeting fps frames per second. Non-positive
// rates disable pacing.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the frame rate. It is safe to call from the main loop.
func (p *Pacer) SetFPS(fps int) {
	if fps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(fps)
}

// Wait blocks until the next frame boundary or ctx is done. Frames that ran
// long are not made up; the schedule restarts from the current time.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.step == 0 {
		return ctx.Err()
	}
	now := p.now()
	target := p.next
	if target.IsZero() {
		target = now.Add(p.step)
	}
	if !now.Before(target) {
		p.next = now.Add(p.step)
		return ctx.Err()
	}
	timer := time.NewTimer(target.Sub(now))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	p.next = target.Add(p.step)
	return nil
}
