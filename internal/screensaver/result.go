package screensaver

import "fmt"

// Status says why Run returned.
type Status int

const (
	StatusStopped      Status = iota // stopped on request: context, stop command or tick limit
	StatusUserQuit                   // window closed or escape pressed
	StatusInitFailed                 // the renderer or the initial state could not be set up
	StatusRenderFailed               // drawing a frame failed
)

func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusUserQuit:
		return "user quit"
	case StatusInitFailed:
		return "init failed"
	case StatusRenderFailed:
		return "render failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ExitCode is the process exit code for a run that ended with s.
func (s Status) ExitCode() int {
	switch s {
	case StatusStopped, StatusUserQuit:
		return 0
	default:
		return 1
	}
}

// Result describes a finished run.
type Result struct {
	Status  Status
	Ticks   uint64
	Bounces uint64
	Err     error
}
