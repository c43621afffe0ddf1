package types

type Backend string

const (
	BackendGLFW Backend = "glfw"
	BackendSDL  Backend = "sdl"
)

type PacingMode string

const (
	PacingFixed PacingMode = "fixed"
	PacingLimit PacingMode = "limit"
	PacingNone  PacingMode = "none"
)

type EasingMode string

const (
	EasingLinear    EasingMode = "linear"
	EasingEaseIn    EasingMode = "ease-in"
	EasingEaseOut   EasingMode = "ease-out"
	EasingEaseInOut EasingMode = "ease-in-out"
)
