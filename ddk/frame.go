package ddk

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ushitora-anqou/ddkit/audio"
	"github.com/ushitora-anqou/ddkit/dialog"
	"github.com/ushitora-anqou/ddkit/input"
	"github.com/ushitora-anqou/ddkit/util"
)

// Frame owns the run loop together with everything the legacy API kept in
// globals: the key table, the mouse state and the render surfaces.
type Frame struct {
	backend Backend
	hooks   Hooks
	mode    Mode
	picker  Picker
	sync    *TimeSynchronizer

	keys    input.KeyTable
	pointer input.Pointer

	surface Surface
	locked  bool

	started, done, closed bool
}

type Option func(*Frame)

func WithPicker(p Picker) Option {
	return func(f *Frame) {
		f.picker = p
	}
}

// WithoutPacing disables the built-in frame pacing even when the backend
// offers a Clock.
func WithoutPacing() Option {
	return func(f *Frame) {
		f.sync = nil
	}
}

func New(backend Backend, mode Mode, hooks Hooks, opts ...Option) *Frame {
	f := &Frame{
		backend: backend,
		hooks:   hooks,
		mode:    mode,
	}
	if clock, ok := backend.(Clock); ok && mode.RefreshRate > 0 {
		f.sync = NewTimeSynchronizer(clock, float64(mode.RefreshRate))
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Frame) Mode() Mode {
	return f.mode
}

// Start runs the Init hook.
func (f *Frame) Start() error {
	if f.closed {
		return ErrClosed
	}
	if f.started {
		return nil
	}
	f.started = true
	if err := f.hooks.Init(f); err != nil {
		f.done = true
		return fmt.Errorf("init: %w", err)
	}
	return nil
}

// Step runs one iteration of the loop and reports whether to keep going.
// A quit event ends the loop before CalcFrame runs.
func (f *Frame) Step() bool {
	if f.done || f.closed {
		return false
	}

	for event := f.backend.PollEvent(); event != nil; event = f.backend.PollEvent() {
		switch e := event.(type) {
		case input.QuitEvent:
			util.Trace("quit requested")
			f.done = true
			return false
		case input.KeyDownEvent:
			f.keys.Press(e.Scancode)
		}
	}

	x, y, buttons := f.backend.MouseState()
	f.pointer.Update(x, y, buttons)

	if !f.hooks.CalcFrame(f) {
		f.done = true
		return false
	}
	return true
}

// Run calls Start if needed and then steps until the loop ends.
func (f *Frame) Run() error {
	if err := f.Start(); err != nil {
		return err
	}
	for f.Step() {
		if f.sync != nil {
			f.sync.MaySleep()
		}
	}
	return nil
}

func (f *Frame) Done() bool {
	return f.done
}

// KeyPressed reports whether k went down since it was last queried and
// forgets the press.
func (f *Frame) KeyPressed(k input.Key) bool {
	return f.keys.Consume(f.scancode(k))
}

func (f *Frame) scancode(k input.Key) input.Scancode {
	if kt, ok := f.backend.(KeyTranslator); ok {
		if sc := kt.ScancodeFromKey(k); sc.Valid() {
			return sc
		}
	}
	return k.Scancode()
}

func (f *Frame) Pointer() input.Pointer {
	return f.pointer
}

// Lock hands out the pixel buffer until the matching Unlock.
func (f *Frame) Lock() (*Surface, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if f.locked {
		return nil, ErrLocked
	}
	pixels, pitch, err := f.backend.Lock()
	if err != nil {
		return nil, fmt.Errorf("lock surface: %w", err)
	}
	bpp := BytesPerPixel(f.mode.Depth)
	f.surface = Surface{
		Pixels: pixels,
		Pitch:  pitch / bpp,
		Width:  f.mode.Width,
		Height: f.mode.Height,
		Depth:  f.mode.Depth,
	}
	f.locked = true
	return &f.surface, nil
}

// Unlock uploads and presents what was drawn since Lock.
func (f *Frame) Unlock() error {
	if !f.locked {
		return ErrNotLocked
	}
	f.locked = false
	f.surface.Pixels = nil
	if err := f.backend.Unlock(); err != nil {
		return fmt.Errorf("present surface: %w", err)
	}
	return nil
}

// StartAudio connects q to the backend's audio output.
func (f *Frame) StartAudio(q *audio.Queue) error {
	sink, ok := f.backend.(AudioSink)
	if !ok {
		return ErrNoAudio
	}
	return sink.StartAudio(q)
}

// LoadFile asks for a file to open and writes its path, NUL terminated,
// into buf. It returns false when nothing was chosen.
func (f *Frame) LoadFile(buf []byte) bool {
	if f.picker == nil {
		return false
	}
	return f.pick("open", f.picker.OpenFile, buf)
}

// SaveFile is LoadFile for the save dialog.
func (f *Frame) SaveFile(buf []byte) bool {
	if f.picker == nil {
		return false
	}
	return f.pick("save", f.picker.SaveFile, buf)
}

func (f *Frame) pick(kind string, show func() (string, error), buf []byte) bool {
	path, err := show()
	if errors.Is(err, dialog.ErrCancelled) {
		return false
	}
	if err != nil {
		util.Logger().Warn("file dialog failed", zap.String("dialog", kind), zap.Error(err))
		return false
	}
	if len(path)+1 > len(buf) {
		util.Logger().Warn("selected path does not fit",
			zap.String("dialog", kind), zap.Int("length", len(path)), zap.Int("capacity", len(buf)))
		return false
	}
	n := copy(buf, path)
	buf[n] = 0
	return true
}

// Close runs the Free hook and releases the backend. Only the first call
// has an effect.
func (f *Frame) Close() {
	if f.closed {
		return
	}
	if f.locked {
		_ = f.Unlock()
	}
	if f.started {
		f.hooks.Free(f)
	}
	f.closed = true
	f.done = true
	f.backend.Destroy()
}
