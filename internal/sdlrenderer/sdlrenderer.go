package sdlrenderer

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/matjam/dvdlogo/internal/render"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLRenderer draws the logo with SDL2's 2D renderer. The tint is applied
// with the texture's colour modulation.
type SDLRenderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
	logoW    int
	logoH    int
	release  render.Releaser
}

// NewRenderer initialises SDL's video subsystem, opens a centered window,
// creates an accelerated renderer for it and uploads the logo. On failure
// everything acquired so far is released and a *render.InitError is
// returned.
func NewRenderer(opts render.Options) (*SDLRenderer, error) {
	runtime.LockOSThread()

	r := &SDLRenderer{width: opts.Width, height: opts.Height}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, r.release.Fail(render.StageSubsystem, fmt.Errorf("sdl init failed: %w", err))
	}
	r.release.PushFunc(sdl.Quit)

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(opts.Width), int32(opts.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, r.release.Fail(render.StageWindow, fmt.Errorf("create window failed: %w", err))
	}
	r.window = window
	r.release.Push(window.Destroy)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, r.release.Fail(render.StageContext, fmt.Errorf("create renderer failed: %w", err))
	}
	r.renderer = renderer
	r.release.Push(renderer.Destroy)

	if info, err := renderer.GetInfo(); err == nil {
		log.Debugf("SDL renderer %s", info.Name)
	}

	img, err := render.LoadLogo(opts.LogoPath, opts.LogoWidth, opts.LogoHeight)
	if err != nil {
		return nil, r.release.Fail(render.StageAsset, err)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, r.release.Fail(render.StageTexture, fmt.Errorf("create surface failed: %w", err))
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	surface.Free()
	runtime.KeepAlive(img)
	if err != nil {
		return nil, r.release.Fail(render.StageTexture, fmt.Errorf("create texture failed: %w", err))
	}
	r.texture = texture
	r.release.Push(texture.Destroy)
	r.logoW, r.logoH = img.Rect.Dx(), img.Rect.Dy()

	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return nil, r.release.Fail(render.StageTexture, fmt.Errorf("set blend mode failed: %w", err))
	}

	return r, nil
}

func (r *SDLRenderer) Poll() render.Input {
	var in render.Input
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				in.Quit = true
			}
		}
	}
	return in
}

func (r *SDLRenderer) Draw(frame render.Frame) error {
	bg := frame.Background
	if err := r.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255); err != nil {
		return fmt.Errorf("set draw color: %w", err)
	}
	if err := r.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	tint := frame.Tint
	if err := r.texture.SetColorMod(tint.R, tint.G, tint.B); err != nil {
		return fmt.Errorf("set color mod: %w", err)
	}

	dst := sdl.Rect{
		X: int32(frame.Rect.Min.X),
		Y: int32(frame.Rect.Min.Y),
		W: int32(frame.Rect.Dx()),
		H: int32(frame.Rect.Dy()),
	}
	if err := r.renderer.Copy(r.texture, nil, &dst); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}

	r.renderer.Present()
	return nil
}

func (r *SDLRenderer) LogoSize() (int, int) {
	return r.logoW, r.logoH
}

func (r *SDLRenderer) WindowSize() (int, int) {
	return r.width, r.height
}

func (r *SDLRenderer) Close() error {
	return r.release.Release()
}
