package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = Bounds{W: 800, H: 600}

func TestCenter(t *testing.T) {
	s, err := Center(Size{W: 100, H: 50}, window, Vector{X: 10, Y: 10})
	require.NoError(t, err)
	assert.Equal(t, Vector{X: 350, Y: 275}, s.Pos)
	assert.Equal(t, Vector{X: 10, Y: 10}, s.Vel)

	// odd remainders round down
	s, err = Center(Size{W: 101, H: 51}, window, Vector{})
	require.NoError(t, err)
	assert.Equal(t, Vector{X: 349, Y: 274}, s.Pos)
}

func TestCenterRejectsOversizedLogo(t *testing.T) {
	_, err := Center(Size{W: 801, H: 10}, window, Vector{})
	assert.Error(t, err)

	_, err = Center(Size{W: 10, H: 601}, window, Vector{})
	assert.Error(t, err)

	_, err = Center(Size{W: 0, H: 10}, window, Vector{})
	assert.Error(t, err)
}

func TestStepTranslatesWithoutTouch(t *testing.T) {
	s := State{Pos: Vector{X: 350, Y: 275}, Size: Size{W: 100, H: 50}, Vel: Vector{X: 10, Y: 10}}

	hit := s.Step(window)

	assert.Equal(t, BounceNone, hit)
	assert.Equal(t, Vector{X: 360, Y: 285}, s.Pos)
	assert.Equal(t, Vector{X: 10, Y: 10}, s.Vel)
}

func TestStepRightWall(t *testing.T) {
	s := State{Pos: Vector{X: 795, Y: 100}, Size: Size{W: 100, H: 50}, Vel: Vector{X: 10, Y: 10}}

	hit := s.Step(window)

	assert.Equal(t, BounceX, hit)
	assert.Equal(t, 700, s.Pos.X)
	assert.Equal(t, -10, s.Vel.X)
	assert.Equal(t, 110, s.Pos.Y)
	assert.Equal(t, 10, s.Vel.Y)
}

func TestStepLeftAndTopWalls(t *testing.T) {
	s := State{Pos: Vector{X: 5, Y: 3}, Size: Size{W: 100, H: 50}, Vel: Vector{X: -10, Y: -10}}

	hit := s.Step(window)

	assert.Equal(t, BounceX|BounceY, hit)
	assert.Equal(t, Vector{X: 0, Y: 0}, s.Pos)
	assert.Equal(t, Vector{X: 10, Y: 10}, s.Vel)
}

func TestStepExactTouchCounts(t *testing.T) {
	s := State{Pos: Vector{X: 690, Y: 100}, Size: Size{W: 100, H: 50}, Vel: Vector{X: 10, Y: 0}}

	hit := s.Step(window)

	assert.Equal(t, BounceX, hit)
	assert.Equal(t, 700, s.Pos.X)
	assert.Equal(t, -10, s.Vel.X)
}

func TestStepCornerFlipsBoth(t *testing.T) {
	s := State{Pos: Vector{X: 695, Y: 545}, Size: Size{W: 100, H: 50}, Vel: Vector{X: 10, Y: 10}}

	hit := s.Step(window)

	assert.Equal(t, BounceX|BounceY, hit)
	assert.Equal(t, "corner", hit.String())
	assert.Equal(t, Vector{X: 700, Y: 550}, s.Pos)
	assert.Equal(t, Vector{X: -10, Y: -10}, s.Vel)
}

func TestStepNoDoubleBounce(t *testing.T) {
	s := State{Pos: Vector{X: 795, Y: 100}, Size: Size{W: 100, H: 50}, Vel: Vector{X: 10, Y: 0}}

	require.Equal(t, BounceX, s.Step(window))
	require.Equal(t, -10, s.Vel.X)

	// moving away from the wall it just touched
	assert.Equal(t, BounceNone, s.Step(window))
	assert.Equal(t, -10, s.Vel.X)
	assert.Equal(t, 690, s.Pos.X)
}

func TestStepStaysContained(t *testing.T) {
	sizes := []Size{{W: 100, H: 50}, {W: 1, H: 1}, {W: 799, H: 599}, {W: 800, H: 600}}
	velocities := []Vector{{X: 10, Y: 10}, {X: -7, Y: 3}, {X: 13, Y: -29}, {X: 0, Y: 1}}

	for _, size := range sizes {
		for _, vel := range velocities {
			s, err := Center(size, window, vel)
			require.NoError(t, err)

			for tick := 0; tick < 2000; tick++ {
				before := s.Vel
				hit := s.Step(window)
				if !s.Contained(window) {
					t.Fatalf("size %v vel %v: escaped bounds at tick %d: %+v", size, vel, tick, s)
				}

				flippedX := before.X != 0 && s.Vel.X == -before.X
				flippedY := before.Y != 0 && s.Vel.Y == -before.Y
				assert.Equal(t, flippedX, hit&BounceX != 0 && before.X != 0)
				assert.Equal(t, flippedY, hit&BounceY != 0 && before.Y != 0)
			}
		}
	}
}

func TestRect(t *testing.T) {
	s := State{Pos: Vector{X: 350, Y: 275}, Size: Size{W: 100, H: 50}}
	r := s.Rect()
	assert.Equal(t, 350, r.Min.X)
	assert.Equal(t, 275, r.Min.Y)
	assert.Equal(t, 100, r.Dx())
	assert.Equal(t, 50, r.Dy())
}
