package ddk

import (
	"github.com/ushitora-anqou/ddkit/audio"
	"github.com/ushitora-anqou/ddkit/input"
)

// Backend is the window/renderer/pixel surface/texture set a Frame draws
// through.
type Backend interface {
	// PollEvent returns the next pending event or nil. It never blocks.
	PollEvent() input.Event
	MouseState() (x, y int32, buttons input.Buttons)
	// Lock grants access to the CPU pixel buffer. pitch is in bytes.
	Lock() (pixels []byte, pitch int, err error)
	// Unlock uploads the buffer to the texture, clears the render target,
	// copies the texture over the whole frame and presents it.
	Unlock() error
	// Destroy releases every handle that was created, newest first.
	Destroy()
}

// Clock is implemented by backends that can pace the loop themselves.
// Ticks are in microseconds.
type Clock interface {
	Ticks() int64
	Delay(us int64)
}

// KeyTranslator maps a virtual key to the scan code of the current layout.
type KeyTranslator interface {
	ScancodeFromKey(k input.Key) input.Scancode
}

// AudioSink plays samples queued into q until the backend is destroyed.
type AudioSink interface {
	StartAudio(q *audio.Queue) error
}

// Picker shows native file dialogs. Cancellation is reported as
// dialog.ErrCancelled.
type Picker interface {
	OpenFile() (string, error)
	SaveFile() (string, error)
}

// Hooks are the application callbacks driven by a Frame.
type Hooks interface {
	Init(f *Frame) error
	// CalcFrame runs once per loop iteration; returning false stops the loop.
	CalcFrame(f *Frame) bool
	Free(f *Frame)
}
