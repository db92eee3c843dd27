// Package loop provides the frame scheduler used by the arcade: a tick
// source, a delta tracker that turns timestamps into elapsed seconds, and a
// headless driver that stops when its context is cancelled.
package loop

import (
	"context"
	"time"
)

// MaxDelta caps a single frame's elapsed time. A suspended terminal or a
// paused SSH session would otherwise feed one huge step into the physics.
const MaxDelta = 0.25

// TickSource delivers frame timestamps.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// tickerSource adapts time.Ticker.
type tickerSource struct {
	t *time.Ticker
}

// NewTicker returns a TickSource firing rate times per second.
func NewTicker(rate int) TickSource {
	if rate <= 0 {
		rate = 60
	}
	return &tickerSource{t: time.NewTicker(Interval(rate))}
}

func (s *tickerSource) C() <-chan time.Time { return s.t.C }
func (s *tickerSource) Stop()               { s.t.Stop() }

// Interval returns the frame period for a tick rate.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// ManualSource is a TickSource driven by the caller, for tests and
// synthetic runs.
type ManualSource struct {
	ch      chan time.Time
	stopped bool
}

// NewManualSource creates a manual source with the given buffer size.
func NewManualSource(buffer int) *ManualSource {
	return &ManualSource{ch: make(chan time.Time, buffer)}
}

// C returns the tick channel.
func (m *ManualSource) C() <-chan time.Time { return m.ch }

// Stop closes the source. Further Fire calls are ignored.
func (m *ManualSource) Stop() {
	if !m.stopped {
		m.stopped = true
		close(m.ch)
	}
}

// Fire queues a tick.
func (m *ManualSource) Fire(t time.Time) {
	if m.stopped {
		return
	}
	m.ch <- t
}

// Delta converts successive frame timestamps into elapsed seconds.
type Delta struct {
	last time.Time
}

// Next returns the seconds elapsed since the previous call, clamped to
// [0, MaxDelta]. The first call returns 0.
func (d *Delta) Next(now time.Time) float64 {
	if d.last.IsZero() {
		d.last = now
		return 0
	}
	dt := now.Sub(d.last).Seconds()
	d.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Reset forgets the previous timestamp.
func (d *Delta) Reset() {
	d.last = time.Time{}
}

// StepFunc advances one frame. Returning false ends the loop.
type StepFunc func(dt float64, now time.Time) bool

// Run drives step from src until ctx is cancelled, the source is exhausted
// or step returns false. The source is stopped on return.
func Run(ctx context.Context, src TickSource, step StepFunc) error {
	defer src.Stop()

	var delta Delta
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-src.C():
			if !ok {
				return nil
			}
			if !step(delta.Next(now), now) {
				return nil
			}
		}
	}
}
