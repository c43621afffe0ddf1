package render

import (
	"image"
	"image/color"
)

// Input is what a renderer saw while draining its window's event queue.
type Input struct {
	Quit bool // window close request or escape key press
}

// Frame is everything needed to draw one tick.
type Frame struct {
	Rect       image.Rectangle // where the logo goes, in window pixels with a top-left origin
	Tint       color.RGBA      // multiplied into the logo's pixels
	Background color.RGBA      // clear colour
}

// Renderer owns the window, its drawing context and the logo texture. A
// Renderer is created fully initialised or not at all; see Releaser.
type Renderer interface {
	Poll() Input             // Drain pending window events without blocking
	Draw(frame Frame) error  // Clear, draw the logo and present
	LogoSize() (int, int)    // Dimensions of the uploaded logo
	WindowSize() (int, int)  // Dimensions of the window
	Close() error            // Release everything in reverse acquisition order
}

// Options are the backend-independent settings every renderer is opened
// with.
type Options struct {
	Title      string
	Width      int
	Height     int
	LogoPath   string
	LogoWidth  int
	LogoHeight int
}
