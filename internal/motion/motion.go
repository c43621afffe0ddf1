// Package motion holds the logo's position, size and velocity and advances
// them one tick at a time inside fixed window bounds.
package motion

import (
	"fmt"
	"image"
)

// Vector is a pair of integer pixel quantities, used for positions and
// per-tick velocities.
type Vector struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the logo's width and height in pixels.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Bounds is the window's width and height in pixels.
type Bounds struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Bounce reports which axes had their velocity negated during a Step.
type Bounce uint8

const (
	BounceNone Bounce = 0
	BounceX    Bounce = 1
	BounceY    Bounce = 2
)

// Any reports whether at least one wall was hit.
func (b Bounce) Any() bool {
	return b != BounceNone
}

func (b Bounce) String() string {
	switch b {
	case BounceNone:
		return "none"
	case BounceX:
		return "x"
	case BounceY:
		return "y"
	case BounceX | BounceY:
		return "corner"
	default:
		return fmt.Sprintf("Bounce(%d)", uint8(b))
	}
}

// State is the only mutable domain data: where the logo is, how big it is,
// and where it is heading.
type State struct {
	Pos  Vector `json:"position"`
	Size Size   `json:"size"`
	Vel  Vector `json:"velocity"`
}

// Center returns a State with the logo centered in bounds and moving at vel.
func Center(size Size, bounds Bounds, vel Vector) (State, error) {
	if size.W <= 0 || size.H <= 0 {
		return State{}, fmt.Errorf("invalid logo size %dx%d", size.W, size.H)
	}
	if size.W > bounds.W || size.H > bounds.H {
		return State{}, fmt.Errorf("logo %dx%d does not fit in window %dx%d", size.W, size.H, bounds.W, bounds.H)
	}

	return State{
		Pos: Vector{
			X: (bounds.W - size.W) / 2,
			Y: (bounds.H - size.H) / 2,
		},
		Size: size,
		Vel:  vel,
	}, nil
}

// Step moves the logo by its velocity and reflects it off any wall it
// reaches. Touching a wall exactly counts as a hit. Each axis is checked on
// its own, so a corner hit flips both components.
func (s *State) Step(b Bounds) Bounce {
	s.Pos.X += s.Vel.X
	s.Pos.Y += s.Vel.Y

	var hit Bounce
	if reflect(&s.Pos.X, &s.Vel.X, s.Size.W, b.W) {
		hit |= BounceX
	}
	if reflect(&s.Pos.Y, &s.Vel.Y, s.Size.H, b.H) {
		hit |= BounceY
	}
	return hit
}

// reflect clamps pos into [0, limit-size] and negates vel if it had to.
func reflect(pos, vel *int, size, limit int) bool {
	if *pos+size >= limit {
		*pos = limit - size
		*vel = -*vel
		return true
	} else if *pos <= 0 {
		*pos = 0
		*vel = -*vel
		return true
	}
	return false
}

// Rect is the logo's current on-screen rectangle.
func (s State) Rect() image.Rectangle {
	return image.Rect(s.Pos.X, s.Pos.Y, s.Pos.X+s.Size.W, s.Pos.Y+s.Size.H)
}

// Contained reports whether the logo lies entirely inside b.
func (s State) Contained(b Bounds) bool {
	return s.Pos.X >= 0 && s.Pos.X+s.Size.W <= b.W &&
		s.Pos.Y >= 0 && s.Pos.Y+s.Size.H <= b.H
}
