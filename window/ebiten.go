//go:build ebiten

package window

import (
	"encoding/binary"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	sfx "github.com/ushitora-anqou/ddkit/audio"
	"github.com/ushitora-anqou/ddkit/constant"
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/input"
)

func EbitenInitialize(mode ddk.Mode) error {
	if err := checkMode(mode); err != nil {
		return err
	}
	if mode.RefreshRate > 0 {
		ebiten.SetTPS(mode.RefreshRate)
	}
	ebiten.SetWindowSize(mode.Width, mode.Height)
	ebiten.SetWindowTitle(mode.Title)
	ebiten.SetFullscreen(mode.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	audio.NewContext(constant.AUDIO_FREQ)

	return nil
}

// EbitenWindow keeps the pixel surface on the CPU and mirrors it into an
// ebiten image on every Unlock. Presentation happens in Draw, which ebiten
// calls after each Update.
type EbitenWindow struct {
	mode    ddk.Mode
	pixels  []byte
	rgba    []byte
	image   *ebiten.Image
	pending []input.Event
	polled  bool
	keys    []ebiten.Key

	audioPlayer *audio.Player
}

func NewEbitenWindow(mode ddk.Mode) (*EbitenWindow, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	n := mode.Width * mode.Height
	return &EbitenWindow{
		mode:   mode,
		pixels: make([]byte, n*ddk.BytesPerPixel(mode.Depth)),
		rgba:   make([]byte, n*4),
		image:  ebiten.NewImage(mode.Width, mode.Height),
	}, nil
}

func (wind *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return wind.mode.Width, wind.mode.Height
}

// PollEvent collects the input of the current tick on its first call and
// hands it out one event at a time.
func (wind *EbitenWindow) PollEvent() input.Event {
	if !wind.polled {
		wind.polled = true
		wind.pending = wind.pending[:0]
		if ebiten.IsWindowBeingClosed() {
			wind.pending = append(wind.pending, input.QuitEvent{})
		}
		wind.keys = inpututil.AppendJustPressedKeys(wind.keys[:0])
		for _, k := range wind.keys {
			if sc, ok := ebitenScancodes[k]; ok {
				wind.pending = append(wind.pending, input.KeyDownEvent{Scancode: sc})
			}
		}
	}
	if len(wind.pending) == 0 {
		wind.polled = false
		return nil
	}
	e := wind.pending[0]
	wind.pending = wind.pending[1:]
	return e
}

func (wind *EbitenWindow) MouseState() (int32, int32, input.Buttons) {
	x, y := ebiten.CursorPosition()
	var buttons input.Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= input.BUTTON_LEFT
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= input.BUTTON_MIDDLE
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= input.BUTTON_RIGHT
	}
	return int32(x), int32(y), buttons
}

func (wind *EbitenWindow) Lock() ([]byte, int, error) {
	return wind.pixels, wind.mode.Width * ddk.BytesPerPixel(wind.mode.Depth), nil
}

func (wind *EbitenWindow) Unlock() error {
	n := wind.mode.Width * wind.mode.Height
	for i := 0; i < n; i++ {
		var r, g, b uint8
		if wind.mode.Depth == constant.DEPTH_32 {
			c := binary.LittleEndian.Uint32(wind.pixels[i*4:])
			r, g, b = uint8(c>>16), uint8(c>>8), uint8(c)
		} else {
			c := binary.LittleEndian.Uint16(wind.pixels[i*2:])
			r, g, b = uint8(c>>11)<<3, uint8(c>>5)<<2, uint8(c)<<3
		}
		wind.rgba[i*4+0] = r
		wind.rgba[i*4+1] = g
		wind.rgba[i*4+2] = b
		wind.rgba[i*4+3] = 0xff
	}
	wind.image.WritePixels(wind.rgba)
	return nil
}

// Draw presents the last unlocked frame.
func (wind *EbitenWindow) Draw(screen *ebiten.Image) {
	screen.Clear()
	screen.DrawImage(wind.image, nil)
}

func (wind *EbitenWindow) StartAudio(q *sfx.Queue) error {
	if wind.audioPlayer != nil {
		return nil
	}
	if q.Channels() != 2 {
		return fmt.Errorf("Invalid channel: ebiten supports only 2 channels.")
	}
	player, err := audio.CurrentContext().NewPlayer(NewEbitenAudioReader(q))
	if err != nil {
		return ddk.NewSetupError("audio.NewPlayer", err)
	}
	player.Play()
	wind.audioPlayer = player
	return nil
}

func (wind *EbitenWindow) Destroy() {
	if wind.audioPlayer != nil {
		wind.audioPlayer.Close()
		wind.audioPlayer = nil
	}
	if wind.image != nil {
		wind.image.Deallocate()
		wind.image = nil
	}
}

// EbitenAudioReader turns queued float samples into signed 16-bit little
// endian stereo.
type EbitenAudioReader struct {
	queue *sfx.Queue
	buf   []float32
}

func NewEbitenAudioReader(q *sfx.Queue) *EbitenAudioReader {
	return &EbitenAudioReader{queue: q}
}

func (r *EbitenAudioReader) Read(p []uint8) (int, error) {
	n := len(p) / 2
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	buf := r.buf[:n]
	r.queue.Read(buf)
	for i, v := range buf {
		val := int16(min(max(v, -1), 1) * 0x7fff)
		p[i*2] = uint8(val)
		p[i*2+1] = uint8(val >> 8)
	}
	return n * 2, nil
}

var ebitenScancodes = map[ebiten.Key]input.Scancode{
	ebiten.KeySpace:      input.SCANCODE_SPACE,
	ebiten.KeyEnter:      input.SCANCODE_RETURN,
	ebiten.KeyEscape:     input.SCANCODE_ESCAPE,
	ebiten.KeyBackspace:  input.SCANCODE_BACKSPACE,
	ebiten.KeyTab:        input.SCANCODE_TAB,
	ebiten.KeyArrowUp:    input.SCANCODE_UP,
	ebiten.KeyArrowDown:  input.SCANCODE_DOWN,
	ebiten.KeyArrowLeft:  input.SCANCODE_LEFT,
	ebiten.KeyArrowRight: input.SCANCODE_RIGHT,
	ebiten.KeyA:          input.KeyA.Scancode(),
	ebiten.KeyB:          input.KeyB.Scancode(),
	ebiten.KeyC:          input.KeyC.Scancode(),
	ebiten.KeyD:          input.KeyD.Scancode(),
	ebiten.KeyE:          input.KeyE.Scancode(),
	ebiten.KeyF:          input.KeyF.Scancode(),
	ebiten.KeyG:          input.KeyG.Scancode(),
	ebiten.KeyH:          input.KeyH.Scancode(),
	ebiten.KeyI:          input.KeyI.Scancode(),
	ebiten.KeyJ:          input.KeyJ.Scancode(),
	ebiten.KeyK:          input.KeyK.Scancode(),
	ebiten.KeyL:          input.KeyL.Scancode(),
	ebiten.KeyM:          input.KeyM.Scancode(),
	ebiten.KeyN:          input.KeyN.Scancode(),
	ebiten.KeyO:          input.KeyO.Scancode(),
	ebiten.KeyP:          input.KeyP.Scancode(),
	ebiten.KeyQ:          input.KeyQ.Scancode(),
	ebiten.KeyR:          input.KeyR.Scancode(),
	ebiten.KeyS:          input.KeyS.Scancode(),
	ebiten.KeyT:          input.KeyT.Scancode(),
	ebiten.KeyU:          input.KeyU.Scancode(),
	ebiten.KeyV:          input.KeyV.Scancode(),
	ebiten.KeyW:          input.KeyW.Scancode(),
	ebiten.KeyX:          input.KeyX.Scancode(),
	ebiten.KeyY:          input.KeyY.Scancode(),
	ebiten.KeyZ:          input.KeyZ.Scancode(),
	ebiten.KeyDigit0:     input.Key0.Scancode(),
	ebiten.KeyDigit1:     input.Key1.Scancode(),
	ebiten.KeyDigit2:     input.Key2.Scancode(),
	ebiten.KeyDigit3:     input.Key3.Scancode(),
	ebiten.KeyDigit4:     input.Key4.Scancode(),
	ebiten.KeyDigit5:     input.Key5.Scancode(),
	ebiten.KeyDigit6:     input.Key6.Scancode(),
	ebiten.KeyDigit7:     input.Key7.Scancode(),
	ebiten.KeyDigit8:     input.Key8.Scancode(),
	ebiten.KeyDigit9:     input.Key9.Scancode(),
	ebiten.KeyF1:         input.KeyF1.Scancode(),
	ebiten.KeyF2:         input.KeyF2.Scancode(),
	ebiten.KeyF3:         input.KeyF3.Scancode(),
	ebiten.KeyF4:         input.KeyF4.Scancode(),
	ebiten.KeyF5:         input.KeyF5.Scancode(),
	ebiten.KeyF6:         input.KeyF6.Scancode(),
	ebiten.KeyF7:         input.KeyF7.Scancode(),
	ebiten.KeyF8:         input.KeyF8.Scancode(),
	ebiten.KeyF9:         input.KeyF9.Scancode(),
	ebiten.KeyF10:        input.KeyF10.Scancode(),
	ebiten.KeyF11:        input.KeyF11.Scancode(),
	ebiten.KeyF12:        input.KeyF12.Scancode(),
}
