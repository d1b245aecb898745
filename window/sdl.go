//go:build !ebiten

package window

// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/ddkit/audio"
	"github.com/ushitora-anqou/ddkit/constant"
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/input"
	"github.com/ushitora-anqou/ddkit/util"
)

func SDLInitialize() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return ddk.NewSetupError("SDL_Init", err)
	}
	return nil
}

func SDLFinalize() {
	sdl.Quit()
}

func pixelFormat(depth int) uint32 {
	if depth == constant.DEPTH_32 {
		return sdl.PIXELFORMAT_ARGB8888
	}
	return sdl.PIXELFORMAT_RGB565
}

type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	surface  *sdl.Surface
	texture  *sdl.Texture
	mode     ddk.Mode

	audioDevice sdl.AudioDeviceID
	audioQueue  *audio.Queue // NOTE: Only touched by the audio thread once the device runs.
	userData    unsafe.Pointer
}

// NewSDLWindow creates the window, renderer, pixel surface and streaming
// texture. On failure everything created so far is released again.
func NewSDLWindow(mode ddk.Mode) (*SDLWindow, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	wind := &SDLWindow{mode: mode}

	var flags uint32 = sdl.WINDOW_SHOWN
	if mode.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	window, err := sdl.CreateWindow(
		mode.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(mode.Width),
		int32(mode.Height),
		flags,
	)
	if err != nil {
		return nil, ddk.NewSetupError("SDL_CreateWindow", err)
	}
	wind.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		wind.Destroy()
		return nil, ddk.NewSetupError("SDL_CreateRenderer", err)
	}
	wind.renderer = renderer

	format := pixelFormat(mode.Depth)
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(mode.Width), int32(mode.Height), int32(mode.Depth), format)
	if err != nil {
		wind.Destroy()
		return nil, ddk.NewSetupError("SDL_CreateRGBSurfaceWithFormat", err)
	}
	wind.surface = surface

	texture, err := renderer.CreateTexture(
		format,
		sdl.TEXTUREACCESS_STREAMING,
		int32(mode.Width),
		int32(mode.Height),
	)
	if err != nil {
		wind.Destroy()
		return nil, ddk.NewSetupError("SDL_CreateTexture", err)
	}
	wind.texture = texture

	return wind, nil
}

// SetIcon loads a BMP icon. A missing or broken file is ignored.
func (wind *SDLWindow) SetIcon(path string) {
	icon, err := sdl.LoadBMP(path)
	if err != nil {
		util.Trace("no window icon: %v", err)
		return
	}
	wind.window.SetIcon(icon)
	icon.Free()
}

func (wind *SDLWindow) PollEvent() input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return input.QuitEvent{}
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			return input.KeyDownEvent{
				Scancode: input.Scancode(e.Keysym.Scancode),
				Repeat:   e.Repeat != 0,
			}
		}
	}
	return nil
}

func (wind *SDLWindow) MouseState() (int32, int32, input.Buttons) {
	x, y, state := sdl.GetMouseState()
	return x, y, input.Buttons(state)
}

func (wind *SDLWindow) Lock() ([]byte, int, error) {
	if err := wind.surface.Lock(); err != nil {
		return nil, 0, err
	}
	return wind.surface.Pixels(), int(wind.surface.Pitch), nil
}

func (wind *SDLWindow) Unlock() error {
	wind.surface.Unlock()

	// Update the texture
	pixels, pitch, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	src := wind.surface.Pixels()
	srcPitch := int(wind.surface.Pitch)
	rowBytes := wind.mode.Width * ddk.BytesPerPixel(wind.mode.Depth)
	for row := 0; row < wind.mode.Height; row++ {
		copy(pixels[row*pitch:row*pitch+rowBytes], src[row*srcPitch:row*srcPitch+rowBytes])
	}
	wind.texture.Unlock()

	// Present the scene
	if err := wind.renderer.Clear(); err != nil {
		return err
	}
	if err := wind.renderer.Copy(wind.texture, nil, nil); err != nil {
		return err
	}
	wind.renderer.Present()

	return nil
}

func (wind *SDLWindow) Ticks() int64 {
	return int64(sdl.GetTicks()) * 1000
}

func (wind *SDLWindow) Delay(us int64) {
	if us > 1000 {
		sdl.Delay(uint32(us / 1000))
	}
}

func (wind *SDLWindow) ScancodeFromKey(k input.Key) input.Scancode {
	code, ok := sdlKeycode(k)
	if !ok {
		return input.SCANCODE_UNKNOWN
	}
	return input.Scancode(sdl.GetScancodeFromKey(code))
}

func sdlKeycode(k input.Key) (sdl.Keycode, bool) {
	switch {
	case k.IsLetter():
		return sdl.Keycode('a' + int(k-input.KeyA)), true
	case k.IsDigit():
		return sdl.Keycode('0' + int(k-input.Key0)), true
	}
	switch k {
	case input.KeySpace:
		return sdl.K_SPACE, true
	case input.KeyReturn:
		return sdl.K_RETURN, true
	case input.KeyEscape:
		return sdl.K_ESCAPE, true
	case input.KeyBackspace:
		return sdl.K_BACKSPACE, true
	case input.KeyTab:
		return sdl.K_TAB, true
	}
	// Arrows and function keys don't move between layouts.
	return 0, false
}

func (wind *SDLWindow) StartAudio(q *audio.Queue) error {
	if wind.audioDevice != 0 {
		return nil
	}
	wind.audioQueue = q
	wind.userData = pointer.Save(wind)

	audioDevice, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     constant.AUDIO_FREQ,
			Format:   sdl.AUDIO_F32,
			Channels: uint8(q.Channels()),
			Samples:  constant.AUDIO_SAMPLES,
			Callback: sdl.AudioCallback(C.OnAudioPlayback),
			UserData: wind.userData,
		},
		nil,
		0,
	)
	if err != nil {
		pointer.Unref(wind.userData)
		wind.userData = nil
		return ddk.NewSetupError("SDL_OpenAudioDevice", err)
	}
	sdl.PauseAudioDevice(audioDevice, false)
	wind.audioDevice = audioDevice
	return nil
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	buf := unsafe.Slice((*float32)(unsafe.Pointer(stream)), int(length)/4)
	wind := pointer.Restore(userdata).(*SDLWindow)
	wind.audioQueue.Read(buf)
}

// Destroy releases the handles in reverse creation order. sdl.Quit is left
// to SDLFinalize.
func (wind *SDLWindow) Destroy() {
	if wind.audioDevice != 0 {
		sdl.CloseAudioDevice(wind.audioDevice)
		wind.audioDevice = 0
	}
	if wind.userData != nil {
		pointer.Unref(wind.userData)
		wind.userData = nil
	}
	if wind.texture != nil {
		wind.texture.Destroy()
		wind.texture = nil
	}
	if wind.surface != nil {
		wind.surface.Free()
		wind.surface = nil
	}
	if wind.renderer != nil {
		wind.renderer.Destroy()
		wind.renderer = nil
	}
	if wind.window != nil {
		wind.window.Destroy()
		wind.window = nil
	}
}
