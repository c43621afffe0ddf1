// Package pacing bounds how often the screensaver ticks.
package pacing

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matjam/dvdlogo/internal/types"
)

const (
	MinRate = 1
	MaxRate = 240
)

// Pacer is called once per tick and blocks for as long as the tick rate
// requires.
type Pacer interface {
	Wait()
}

// New returns the pacer for mode running at rate ticks per second. The rate
// is clamped to [MinRate, MaxRate].
func New(mode types.PacingMode, rate int, clock clockwork.Clock) (Pacer, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	switch mode {
	case types.PacingFixed, "":
		return NewFixedDelay(rate, clock), nil
	case types.PacingLimit:
		return NewFrameLimiter(rate, clock), nil
	case types.PacingNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown pacing mode %q", mode)
	}
}

// FrameDuration is the length of one tick at rate ticks per second.
func FrameDuration(rate int) time.Duration {
	return time.Second / time.Duration(ClampRate(rate))
}

func ClampRate(rate int) int {
	if rate < MinRate {
		return MinRate
	} else if rate > MaxRate {
		return MaxRate
	}
	return rate
}

// FixedDelay sleeps a whole frame every tick, regardless of how long the
// tick's own work took. The effective rate drifts below the target by the
// cost of updating and rendering.
type FixedDelay struct {
	clock clockwork.Clock
	delay time.Duration
}

func NewFixedDelay(rate int, clock clockwork.Clock) *FixedDelay {
	return &FixedDelay{clock: clock, delay: FrameDuration(rate)}
}

func (p *FixedDelay) Wait() {
	p.clock.Sleep(p.delay)
}

// FrameLimiter sleeps only for what remains of the frame since the previous
// tick started.
type FrameLimiter struct {
	clock  clockwork.Clock
	target time.Duration
	last   time.Time
}

func NewFrameLimiter(rate int, clock clockwork.Clock) *FrameLimiter {
	return &FrameLimiter{
		clock:  clock,
		target: FrameDuration(rate),
		last:   clock.Now(),
	}
}

func (p *FrameLimiter) Wait() {
	if elapsed := p.clock.Since(p.last); elapsed < p.target {
		p.clock.Sleep(p.target - elapsed)
	}
	p.last = p.clock.Now()
}

// None never waits.
type None struct{}

func (None) Wait() {}
