package screensaver

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/matjam/dvdlogo/internal/motion"
	"github.com/matjam/dvdlogo/internal/render"
	"github.com/matjam/dvdlogo/internal/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records every call the loop makes.
type fakeRenderer struct {
	logoW, logoH int
	winW, winH   int

	quitOnPoll int   // 1-based Poll call that reports Quit, 0 for never
	drawErrOn  int   // 1-based Draw call that fails, 0 for never
	closeErr   error // returned from Close
	onDraw     func(n int)

	polls  int
	frames []render.Frame
	closed int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{logoW: 100, logoH: 50, winW: 800, winH: 600}
}

func (f *fakeRenderer) Poll() render.Input {
	f.polls++
	return render.Input{Quit: f.quitOnPoll > 0 && f.polls >= f.quitOnPoll}
}

func (f *fakeRenderer) Draw(frame render.Frame) error {
	if f.drawErrOn > 0 && len(f.frames)+1 == f.drawErrOn {
		return errors.New("lost device")
	}
	f.frames = append(f.frames, frame)
	if f.onDraw != nil {
		f.onDraw(len(f.frames))
	}
	return nil
}

func (f *fakeRenderer) LogoSize() (int, int)   { return f.logoW, f.logoH }
func (f *fakeRenderer) WindowSize() (int, int) { return f.winW, f.winH }

func (f *fakeRenderer) Close() error {
	f.closed++
	return f.closeErr
}

func opener(f *fakeRenderer) Opener {
	return func() (render.Renderer, error) { return f, nil }
}

func defaultOptions() Options {
	return Options{
		Velocity:   motion.Vector{X: 10, Y: 10},
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Seed:       7,
	}
}

func TestRunStopsAtTickLimit(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.MaxTicks = 3

	res := New(opts).Run(context.Background(), opener(f))

	assert.Equal(t, StatusStopped, res.Status)
	assert.Equal(t, uint64(3), res.Ticks)
	require.Len(t, f.frames, 3)
	assert.Equal(t, image.Rect(360, 285, 460, 335), f.frames[0].Rect)
	assert.Equal(t, image.Rect(380, 305, 480, 355), f.frames[2].Rect)
	assert.Equal(t, opts.Background, f.frames[0].Background)
	assert.Equal(t, tint.White, f.frames[0].Tint)
	assert.Equal(t, 1, f.closed)
}

func TestRunUserQuitStopsImmediately(t *testing.T) {
	f := newFakeRenderer()
	f.quitOnPoll = 4

	res := New(defaultOptions()).Run(context.Background(), opener(f))

	assert.Equal(t, StatusUserQuit, res.Status)
	assert.Equal(t, 0, res.Status.ExitCode())
	assert.Equal(t, uint64(3), res.Ticks)
	assert.Len(t, f.frames, 3, "no update or render after quit")
	assert.Equal(t, 4, f.polls)
	assert.Equal(t, 1, f.closed)
}

func TestRunInitFailure(t *testing.T) {
	initErr := &render.InitError{Stage: render.StageAsset, Err: errors.New("no such file")}
	s := New(defaultOptions())

	res := s.Run(context.Background(), func() (render.Renderer, error) {
		return nil, initErr
	})

	assert.Equal(t, StatusInitFailed, res.Status)
	assert.Equal(t, 1, res.Status.ExitCode())
	assert.ErrorIs(t, res.Err, initErr)
	assert.False(t, s.Snapshot().Running)
}

func TestRunLogoLargerThanWindow(t *testing.T) {
	f := newFakeRenderer()
	f.logoW = 900

	res := New(defaultOptions()).Run(context.Background(), opener(f))

	assert.Equal(t, StatusInitFailed, res.Status)
	var initErr *render.InitError
	require.True(t, errors.As(res.Err, &initErr))
	assert.Equal(t, render.StageAsset, initErr.Stage)
	assert.Equal(t, 0, f.polls)
	assert.Equal(t, 1, f.closed, "renderer released even though the loop never ran")
}

func TestRunRenderFailure(t *testing.T) {
	f := newFakeRenderer()
	f.drawErrOn = 2
	f.closeErr = errors.New("already gone")

	res := New(defaultOptions()).Run(context.Background(), opener(f))

	assert.Equal(t, StatusRenderFailed, res.Status)
	assert.EqualError(t, res.Err, "lost device")
	assert.Equal(t, uint64(1), res.Ticks)
	assert.Equal(t, 1, f.closed)
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newFakeRenderer()
	f.onDraw = func(n int) {
		if n == 5 {
			cancel()
		}
	}

	res := New(defaultOptions()).Run(ctx, opener(f))

	assert.Equal(t, StatusStopped, res.Status)
	assert.Equal(t, uint64(5), res.Ticks)
}

func TestRunStopCommand(t *testing.T) {
	f := newFakeRenderer()
	s := New(defaultOptions())
	f.onDraw = func(n int) {
		if n == 2 {
			assert.True(t, s.Enqueue(Command{Type: CommandStop}))
		}
	}

	res := s.Run(context.Background(), opener(f))

	assert.Equal(t, StatusStopped, res.Status)
	assert.Equal(t, uint64(2), res.Ticks)
}

func TestRunRecolorCommand(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.MaxTicks = 3
	s := New(opts)
	require.True(t, s.Enqueue(Command{Type: CommandRecolor}))

	s.Run(context.Background(), opener(f))

	require.Len(t, f.frames, 3)
	assert.NotEqual(t, tint.White, f.frames[0].Tint)
	assert.Equal(t, f.frames[0].Tint, f.frames[2].Tint)
}

func TestEnqueueFullQueue(t *testing.T) {
	s := New(defaultOptions())
	for i := 0; i < commandQueueSize; i++ {
		require.True(t, s.Enqueue(Command{Type: CommandRecolor}))
	}
	assert.False(t, s.Enqueue(Command{Type: CommandStop}))
}

func TestRunColorOnBounce(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.ColorOnBounce = true
	opts.MaxTicks = 40

	res := New(opts).Run(context.Background(), opener(f))
	require.Len(t, f.frames, 40)

	// from (350,275) at 10px/tick the bottom wall is reached on tick 28 and
	// the right wall on tick 35
	assert.Equal(t, uint64(2), res.Bounces)
	for i := 0; i < 27; i++ {
		assert.Equal(t, tint.White, f.frames[i].Tint, "tick %d", i+1)
	}
	first := f.frames[27].Tint
	assert.NotEqual(t, tint.White, first)
	assert.Equal(t, 550, f.frames[27].Rect.Min.Y)
	for i := 28; i < 34; i++ {
		assert.Equal(t, first, f.frames[i].Tint, "tick %d", i+1)
	}
	assert.Equal(t, 700, f.frames[34].Rect.Min.X)
	assert.NotEqual(t, first, f.frames[34].Tint)
}

func TestRunWithoutColorOnBounceKeepsWhite(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.MaxTicks = 60

	res := New(opts).Run(context.Background(), opener(f))

	assert.Equal(t, uint64(2), res.Bounces)
	for _, frame := range f.frames {
		assert.Equal(t, tint.White, frame.Tint)
	}
}

func TestRunStaysInsideWindow(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.Velocity = motion.Vector{X: 13, Y: -7}
	opts.MaxTicks = 5000

	New(opts).Run(context.Background(), opener(f))

	window := image.Rect(0, 0, f.winW, f.winH)
	for i, frame := range f.frames {
		if !frame.Rect.In(window) {
			t.Fatalf("tick %d: logo %v outside window %v", i+1, frame.Rect, window)
		}
	}
}

func TestSnapshot(t *testing.T) {
	f := newFakeRenderer()
	opts := defaultOptions()
	opts.MaxTicks = 2
	s := New(opts)

	var during Snapshot
	f.onDraw = func(n int) {
		if n == 1 {
			during = s.Snapshot()
		}
	}

	s.Run(context.Background(), opener(f))

	assert.True(t, during.Running)
	assert.Equal(t, motion.Bounds{W: 800, H: 600}, during.Window)
	assert.Equal(t, motion.Vector{X: 350, Y: 275}, during.Logo.Pos, "published before the tick completes")

	after := s.Snapshot()
	assert.False(t, after.Running)
	assert.Equal(t, uint64(2), after.Ticks)
	assert.Equal(t, motion.Vector{X: 370, Y: 295}, after.Logo.Pos)
}

func TestStatusExitCodes(t *testing.T) {
	assert.Equal(t, 0, StatusStopped.ExitCode())
	assert.Equal(t, 0, StatusUserQuit.ExitCode())
	assert.Equal(t, 1, StatusInitFailed.ExitCode())
	assert.Equal(t, 1, StatusRenderFailed.ExitCode())
	assert.Equal(t, "user quit", StatusUserQuit.String())
}
