package core

import "time"

// Pacer reports when a fixed period has elapsed. The viewer uses it to
// advance layers at a steady rate independent of the frame rate.
type Pacer struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer firing once per period.
func NewPacer(period time.Duration) *Pacer {
	if period <= 0 {
		period = time.Second
	}
	return &Pacer{period: period, now: time.Now}
}

// SetPeriod changes the firing period. It is safe to call from the main loop.
func (p *Pacer) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second
	}
	p.period = period
}

// Ready reports whether a full period elapsed since the previous firing.
// The first call only starts the clock.
func (p *Pacer) Ready() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return false
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.period {
		p.accumulator -= p.period
		return true
	}
	return false
}

// Reset restarts the clock.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
