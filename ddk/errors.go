package ddk

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedDepth = errors.New("unsupported bit depth")
	ErrInvalidSize      = errors.New("invalid window size")
	ErrLocked           = errors.New("surface is already locked")
	ErrNotLocked        = errors.New("surface is not locked")
	ErrNoAudio          = errors.New("backend has no audio output")
	ErrClosed           = errors.New("frame is closed")
)

// SetupError reports which library call failed while building the render
// surfaces.
type SetupError struct {
	Call string
	Err  error
}

func NewSetupError(call string, err error) *SetupError {
	return &SetupError{Call: call, Err: err}
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Call, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

func (e *SetupError) CallSite() string {
	return e.Call
}
