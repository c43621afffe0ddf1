package glrenderer

import (
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/matjam/dvdlogo/internal/render"
)

// GLFWRenderer draws the logo as a textured quad in a glfw window using the
// OpenGL 2.1 fixed function pipeline. The tint is applied with glColor, which
// the default GL_MODULATE texture environment multiplies into every texel.
type GLFWRenderer struct {
	win     *glfw.Window
	width   int // window width in screen coordinates
	height  int // window height in screen coordinates
	tex     texture
	escape  bool // escape pressed since the last Poll
	release render.Releaser
}

// texture holds an OpenGL texture ID and its size.
type texture struct {
	id     uint32
	width  int
	height int
}

// NewRenderer initialises glfw, opens a fixed size window, makes its GL
// context current on the calling OS thread, and uploads the logo. On failure
// everything acquired so far is released and a *render.InitError is
// returned.
func NewRenderer(opts render.Options) (*GLFWRenderer, error) {
	runtime.LockOSThread() // Required: OpenGL contexts must be accessed from a single OS thread

	r := &GLFWRenderer{width: opts.Width, height: opts.Height}

	if err := glfw.Init(); err != nil {
		return nil, r.release.Fail(render.StageSubsystem, fmt.Errorf("glfw init failed: %w", err))
	}
	r.release.PushFunc(glfw.Terminate)

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, r.release.Fail(render.StageWindow, fmt.Errorf("create window failed: %w", err))
	}
	r.win = win
	r.release.PushFunc(win.Destroy)
	log.Debugf("created %dx%d window %q", opts.Width, opts.Height, opts.Title)

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, r.release.Fail(render.StageContext, fmt.Errorf("gl init failed: %w", err))
	}
	r.release.PushFunc(func() { glfw.DetachCurrentContext() })
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	glfw.SwapInterval(0) // pacing is ours, not the driver's
	win.SetKeyCallback(r.onKey)
	r.setupProjection()

	img, err := render.LoadLogo(opts.LogoPath, opts.LogoWidth, opts.LogoHeight)
	if err != nil {
		return nil, r.release.Fail(render.StageAsset, err)
	}

	tex, err := createTexture(img)
	if err != nil {
		return nil, r.release.Fail(render.StageTexture, err)
	}
	r.tex = tex
	r.release.PushFunc(func() { deleteTexture(&r.tex) })

	return r, nil
}

// setupProjection maps GL coordinates one to one onto window coordinates with
// the origin in the top-left corner.
func (r *GLFWRenderer) setupProjection() {
	fbw, fbh := r.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(r.width), float64(r.height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)
}

func (r *GLFWRenderer) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.escape = true
	}
}

func (r *GLFWRenderer) Poll() render.Input {
	glfw.PollEvents()

	in := render.Input{Quit: r.win.ShouldClose() || r.escape}
	r.escape = false
	return in
}

func (r *GLFWRenderer) Draw(frame render.Frame) error {
	bg := frame.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, r.tex.id)
	tint := frame.Tint
	gl.Color4ub(tint.R, tint.G, tint.B, 255)
	drawQuad(frame.Rect)
	gl.Disable(gl.TEXTURE_2D)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x while drawing", code)
	}

	r.win.SwapBuffers()
	return nil
}

func drawQuad(rect image.Rectangle) {
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)

	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.End()
}

func (r *GLFWRenderer) LogoSize() (int, int) {
	return r.tex.width, r.tex.height
}

func (r *GLFWRenderer) WindowSize() (int, int) {
	return r.width, r.height
}

func (r *GLFWRenderer) Close() error {
	return r.release.Release()
}

// createTexture uploads an RGBA image as a 2D texture.
func createTexture(img *image.RGBA) (texture, error) {
	tex := texture{
		width:  img.Rect.Dx(),
		height: img.Rect.Dy(),
	}

	gl.GenTextures(1, &tex.id)
	if tex.id == 0 {
		return texture{}, errors.New("glGenTextures returned no texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(tex.width), int32(tex.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		deleteTexture(&tex)
		return texture{}, fmt.Errorf("uploading %dx%d texture: gl error 0x%x", tex.width, tex.height, code)
	}
	return tex, nil
}

func deleteTexture(tex *texture) {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
		tex.width = 0
		tex.height = 0
	}
}
