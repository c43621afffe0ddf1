package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/dvdlogo/internal/cli/cmd/utils"
	"github.com/matjam/dvdlogo/internal/config"
	"github.com/matjam/dvdlogo/internal/glrenderer"
	"github.com/matjam/dvdlogo/internal/ipc"
	"github.com/matjam/dvdlogo/internal/motion"
	"github.com/matjam/dvdlogo/internal/pacing"
	"github.com/matjam/dvdlogo/internal/render"
	"github.com/matjam/dvdlogo/internal/screensaver"
	"github.com/matjam/dvdlogo/internal/sdlrenderer"
	"github.com/matjam/dvdlogo/internal/tint"
	"github.com/matjam/dvdlogo/internal/types"
	"github.com/sevlyar/go-daemon"
)

// StartScreensaver runs the screensaver described by cfg on the calling
// goroutine, which must be the main one, until it finishes.
func StartScreensaver(cfg config.Config) screensaver.Result {
	log.Infof("StartScreensaver() started in PID: %d", os.Getpid())

	if cfg.LogFile != "" {
		setupRotatingLogger(utils.CanonicalPath(cfg.LogFile))
	} else if daemon.WasReborn() {
		setupRotatingLogger(filepath.Join(utils.DataDir(), "dvdlogo.log"))
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		return screensaver.Result{Status: screensaver.StatusInitFailed, Err: err}
	}

	saver := screensaver.New(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ControlSocket {
		if _, err := ipc.SendStatus(cfg.Socket); err == nil {
			log.Infof("dvdlogo is already running on %s, exiting", cfg.Socket)
			return screensaver.Result{Status: screensaver.StatusStopped}
		}

		server, err := ipc.NewServer(saver, cfg.Socket)
		if err != nil {
			log.Errorf("Control socket disabled: %v", err)
		} else {
			go func() {
				log.Infof("Starting socket server")
				if err := server.Serve(); err != nil {
					log.Error(err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Warnf("Socket server shutdown: %v", err)
				}
			}()
		}
	}

	log.Infof("Using %s backend, %d ticks/s (%s pacing)", cfg.Backend, pacing.ClampRate(cfg.FrameRate), cfg.Pacing)
	res := saver.Run(ctx, newOpener(cfg))

	log.Infof("dvdlogo exited")
	return res
}

func buildOptions(cfg config.Config) (screensaver.Options, error) {
	background, err := cfg.BackgroundColor()
	if err != nil {
		return screensaver.Options{}, err
	}

	pacer, err := pacing.New(cfg.Pacing, cfg.FrameRate, nil)
	if err != nil {
		return screensaver.Options{}, err
	}

	easing, err := tint.Easing(cfg.Easing)
	if err != nil {
		return screensaver.Options{}, err
	}

	return screensaver.Options{
		Velocity:      motion.Vector{X: cfg.VelocityX, Y: cfg.VelocityY},
		Background:    background,
		ColorOnBounce: cfg.ColorOnBounce,
		TintFade:      time.Duration(cfg.TintFade * float64(time.Second)),
		Easing:        easing,
		Seed:          cfg.Seed,
		MaxTicks:      cfg.Ticks,
		Pacer:         pacer,
	}, nil
}

func newOpener(cfg config.Config) screensaver.Opener {
	opts := render.Options{
		Title:      cfg.Title,
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		LogoPath:   utils.CanonicalPath(cfg.Logo),
		LogoWidth:  cfg.LogoWidth,
		LogoHeight: cfg.LogoHeight,
	}

	switch cfg.Backend {
	case types.BackendSDL:
		return func() (render.Renderer, error) {
			r, err := sdlrenderer.NewRenderer(opts)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	default:
		return func() (render.Renderer, error) {
			r, err := glrenderer.NewRenderer(opts)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	}
}

func setupRotatingLogger(logPath string) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
}
