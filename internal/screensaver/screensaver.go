// Package screensaver runs the bouncing logo: each tick it polls the window
// for input, moves the logo and draws it.
package screensaver

import (
	"context"
	"image/color"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/dvdlogo/internal/motion"
	"github.com/matjam/dvdlogo/internal/pacing"
	"github.com/matjam/dvdlogo/internal/render"
	"github.com/matjam/dvdlogo/internal/tint"
	"github.com/tanema/gween/ease"
)

const commandQueueSize = 8

// Opener acquires a fully initialised renderer.
type Opener func() (render.Renderer, error)

type Options struct {
	Velocity      motion.Vector
	Background    color.RGBA
	ColorOnBounce bool           // pick a random tint on every bounce
	TintFade      time.Duration  // how long a tint change takes, zero for instant
	Easing        ease.TweenFunc // easing for tint changes, linear if nil
	Seed          uint64         // tint generator seed, zero for random
	MaxTicks      uint64         // stop after this many ticks, zero for no limit
	Pacer         pacing.Pacer   // no pacing if nil
	Clock         clockwork.Clock
}

// Snapshot is a copy of the loop's observable state.
type Snapshot struct {
	Running bool          `json:"running"`
	Started time.Time     `json:"started"`
	Ticks   uint64        `json:"ticks"`
	Bounces uint64        `json:"bounces"`
	Logo    motion.State  `json:"logo"`
	Window  motion.Bounds `json:"window"`
	Tint    color.RGBA    `json:"tint"`
}

// Screensaver owns everything a run needs. It is driven by Run on the
// goroutine that owns the window; Snapshot and Enqueue may be called from
// anywhere.
type Screensaver struct {
	sync.Mutex
	opts     Options
	clock    clockwork.Clock
	pacer    pacing.Pacer
	picker   *tint.Picker
	fader    *tint.Fader
	cmds     chan Command
	snapshot Snapshot
}

func New(opts Options) *Screensaver {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Pacer == nil {
		opts.Pacer = pacing.None{}
	}

	return &Screensaver{
		opts:   opts,
		clock:  opts.Clock,
		pacer:  opts.Pacer,
		picker: tint.NewPicker(opts.Seed),
		fader:  tint.NewFader(tint.White, float32(opts.TintFade.Seconds()), opts.Easing),
		cmds:   make(chan Command, commandQueueSize),
	}
}

// Snapshot returns the state as of the last completed tick.
func (s *Screensaver) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()
	return s.snapshot
}

// Enqueue hands a command to the loop, which picks it up at the start of its
// next tick. It reports false if the queue is full.
func (s *Screensaver) Enqueue(cmd Command) bool {
	select {
	case s.cmds <- cmd:
		return true
	default:
		log.Warnf("Command queue full, dropping %q", cmd.Type)
		return false
	}
}

// Run opens the renderer, centers the logo and ticks until the user quits,
// ctx is done, a stop command arrives or the tick limit is reached. The
// renderer is always closed before Run returns.
func (s *Screensaver) Run(ctx context.Context, open Opener) Result {
	renderer, err := open()
	if err != nil {
		log.Errorf("Failed to initialise renderer: %v", err)
		return Result{Status: StatusInitFailed, Err: err}
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Errorf("Failed to release renderer: %v", err)
		}
	}()

	logoW, logoH := renderer.LogoSize()
	winW, winH := renderer.WindowSize()
	bounds := motion.Bounds{W: winW, H: winH}

	state, err := motion.Center(motion.Size{W: logoW, H: logoH}, bounds, s.opts.Velocity)
	if err != nil {
		log.Errorf("Failed to place logo: %v", err)
		return Result{Status: StatusInitFailed, Err: &render.InitError{Stage: render.StageAsset, Err: err}}
	}
	log.Infof("Bouncing %dx%d logo in %dx%d window from (%d,%d) at (%d,%d) px/tick",
		logoW, logoH, winW, winH, state.Pos.X, state.Pos.Y, state.Vel.X, state.Vel.Y)

	l := &loop{
		Screensaver: s,
		renderer:    renderer,
		state:       state,
		bounds:      bounds,
		last:        s.clock.Now(),
	}

	s.Lock()
	s.snapshot = Snapshot{
		Running: true,
		Started: l.last,
		Logo:    state,
		Window:  bounds,
		Tint:    s.fader.Current(),
	}
	s.Unlock()

	res := l.run(ctx)

	s.Lock()
	s.snapshot.Running = false
	s.Unlock()

	log.Infof("Screensaver finished: %v after %d ticks and %d bounces", res.Status, res.Ticks, res.Bounces)
	return res
}

// loop is the per-run state that only the Run goroutine touches.
type loop struct {
	*Screensaver
	renderer render.Renderer
	state    motion.State
	bounds   motion.Bounds
	last     time.Time
	ticks    uint64
	bounces  uint64
}

func (l *loop) run(ctx context.Context) Result {
	for {
		if in := l.renderer.Poll(); in.Quit {
			log.Info("Quit requested from the window")
			return l.result(StatusUserQuit, nil)
		}

		select {
		case <-ctx.Done():
			log.Infof("Stopping: %v", context.Cause(ctx))
			return l.result(StatusStopped, nil)
		default:
		}

		if stop := l.drainCommands(); stop {
			return l.result(StatusStopped, nil)
		}

		if l.opts.MaxTicks > 0 && l.ticks >= l.opts.MaxTicks {
			log.Infof("Reached tick limit of %d", l.opts.MaxTicks)
			return l.result(StatusStopped, nil)
		}

		if err := l.tick(); err != nil {
			log.Errorf("Failed to draw frame: %v", err)
			return l.result(StatusRenderFailed, err)
		}
	}
}

// drainCommands handles every queued command and reports whether one of
// them was a stop.
func (l *loop) drainCommands() bool {
	for {
		select {
		case cmd := <-l.cmds:
			switch cmd.Type {
			case CommandStop:
				log.Info("Received stop command")
				return true
			case CommandRecolor:
				log.Info("Received recolor command")
				l.fader.Retarget(l.picker.Next())
			default:
				log.Errorf("Unknown command: %q", cmd.Type)
			}
		default:
			return false
		}
	}
}

func (l *loop) tick() error {
	l.pacer.Wait()

	hit := l.state.Step(l.bounds)
	if hit.Any() {
		l.bounces++
		if l.opts.ColorOnBounce {
			l.fader.Retarget(l.picker.Next())
		}
		log.Debug("bounce", "axis", hit, "x", l.state.Pos.X, "y", l.state.Pos.Y, "tint", l.fader.Target())
	}

	now := l.clock.Now()
	dt := now.Sub(l.last)
	l.last = now
	current := l.fader.Update(float32(dt.Seconds()))

	err := l.renderer.Draw(render.Frame{
		Rect:       l.state.Rect(),
		Tint:       current,
		Background: l.opts.Background,
	})
	if err != nil {
		return err
	}
	l.ticks++

	l.Lock()
	l.snapshot.Ticks = l.ticks
	l.snapshot.Bounces = l.bounces
	l.snapshot.Logo = l.state
	l.snapshot.Tint = current
	l.Unlock()
	return nil
}

func (l *loop) result(status Status, err error) Result {
	return Result{
		Status:  status,
		Ticks:   l.ticks,
		Bounces: l.bounces,
		Err:     err,
	}
}
