// Package tint picks and animates the colour the logo texture is multiplied
// by when it is drawn.
package tint

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/matjam/dvdlogo/internal/types"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// White leaves the texture's pixels unchanged.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Picker draws random tints from its own source.
type Picker struct {
	rng *rand.Rand
}

// NewPicker seeds a picker. A zero seed picks a random one.
func NewPicker(seed uint64) *Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Next returns a fully opaque colour whose channels are independent and
// uniform in [0, 255).
func (p *Picker) Next() color.RGBA {
	return color.RGBA{
		R: uint8(p.rng.IntN(255)),
		G: uint8(p.rng.IntN(255)),
		B: uint8(p.rng.IntN(255)),
		A: 255,
	}
}

// Easing maps a configured easing mode to a gween easing function.
func Easing(mode types.EasingMode) (ease.TweenFunc, error) {
	switch mode {
	case types.EasingLinear, "":
		return ease.Linear, nil
	case types.EasingEaseIn:
		return ease.InQuad, nil
	case types.EasingEaseOut:
		return ease.OutQuad, nil
	case types.EasingEaseInOut:
		return ease.InOutQuad, nil
	default:
		return nil, fmt.Errorf("unknown easing mode %q", mode)
	}
}

// Fader moves the current tint towards a target over a fixed duration. With
// a zero duration every retarget is applied immediately.
type Fader struct {
	current  color.RGBA
	target   color.RGBA
	duration float32
	fn       ease.TweenFunc
	tweens   [3]*gween.Tween
	active   bool
}

func NewFader(start color.RGBA, seconds float32, fn ease.TweenFunc) *Fader {
	if fn == nil {
		fn = ease.Linear
	}
	return &Fader{
		current:  start,
		target:   start,
		duration: seconds,
		fn:       fn,
	}
}

// Current is the tint to draw with this frame.
func (f *Fader) Current() color.RGBA {
	return f.current
}

// Target is the tint the fader is heading to.
func (f *Fader) Target() color.RGBA {
	return f.target
}

// Fading reports whether a transition is in progress.
func (f *Fader) Fading() bool {
	return f.active
}

// Retarget starts a transition from the current tint to to. A transition
// already in progress continues from wherever it got to.
func (f *Fader) Retarget(to color.RGBA) {
	f.target = to
	if f.duration <= 0 {
		f.current = to
		f.active = false
		return
	}

	from := f.current
	f.tweens[0] = gween.New(float32(from.R), float32(to.R), f.duration, f.fn)
	f.tweens[1] = gween.New(float32(from.G), float32(to.G), f.duration, f.fn)
	f.tweens[2] = gween.New(float32(from.B), float32(to.B), f.duration, f.fn)
	f.active = true
}

// Update advances the transition by dt seconds and returns the new tint.
func (f *Fader) Update(dt float32) color.RGBA {
	if !f.active {
		return f.current
	}

	var channels [3]uint8
	done := true
	for i, tw := range f.tweens {
		v, finished := tw.Update(dt)
		channels[i] = toByte(v)
		if !finished {
			done = false
		}
	}

	f.current = color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}
	if done {
		f.current = f.target
		f.active = false
	}
	return f.current
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
