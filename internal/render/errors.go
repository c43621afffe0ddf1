package render

import (
	"fmt"
)

// Stage names the acquisition step a renderer failed at.
type Stage int

const (
	StageSubsystem Stage = iota // graphics library initialisation
	StageWindow                 // window creation
	StageContext                // rendering context creation
	StageAsset                  // reading or decoding the logo
	StageTexture                // uploading the logo to the GPU
)

func (s Stage) String() string {
	switch s {
	case StageSubsystem:
		return "subsystem"
	case StageWindow:
		return "window"
	case StageContext:
		return "context"
	case StageAsset:
		return "asset"
	case StageTexture:
		return "texture"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// InitError is returned by renderer constructors. Everything acquired before
// the failing stage has already been released when it is returned.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s initialisation failed: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
