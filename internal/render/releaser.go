package render

import (
	"go.uber.org/multierr"
)

// Releaser records how to undo each acquisition and undoes them all, newest
// first. The zero value is ready to use.
type Releaser struct {
	funcs []func() error
}

// Push records release as the undo step for the most recent acquisition.
func (r *Releaser) Push(release func() error) {
	r.funcs = append(r.funcs, release)
}

// PushFunc is Push for release steps that cannot fail.
func (r *Releaser) PushFunc(release func()) {
	r.Push(func() error {
		release()
		return nil
	})
}

// Release runs every recorded step in reverse order, even when some of them
// fail, and forgets them. Calling it again does nothing.
func (r *Releaser) Release() error {
	var err error
	for i := len(r.funcs) - 1; i >= 0; i-- {
		err = multierr.Append(err, r.funcs[i]())
	}
	r.funcs = nil
	return err
}

// Fail releases everything and wraps cause as an InitError for stage. A
// release error is appended to the cause.
func (r *Releaser) Fail(stage Stage, cause error) error {
	return &InitError{
		Stage: stage,
		Err:   multierr.Append(cause, r.Release()),
	}
}

// Len is the number of pending release steps.
func (r *Releaser) Len() int {
	return len(r.funcs)
}
