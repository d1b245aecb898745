// Package pad is a small sound-effect pad driven through the ddk hooks.
//
//	Space         replay the current sound
//	Return        load a preset
//	Left click    play at the pitch under the pointer
//	Middle click  switch between square and noise
//	Right click   save the current preset
//	Escape        quit
package pad

import (
	"math"

	"go.uber.org/zap"

	"github.com/ushitora-anqou/ddkit/audio"
	"github.com/ushitora-anqou/ddkit/constant"
	"github.com/ushitora-anqou/ddkit/ddk"
	"github.com/ushitora-anqou/ddkit/input"
	"github.com/ushitora-anqou/ddkit/synth"
	"github.com/ushitora-anqou/ddkit/util"
)

const (
	LOW_FREQ    = 110.0
	OCTAVES     = 4
	CURSOR_SIZE = 8
	BLINK_TICKS = 20
)

type Pad struct {
	params     synth.Params
	presetPath string
	queue      *audio.Queue
	mute       bool
	blink      *util.TickCounter
	cursorOn   bool
	path       [constant.PATH_CAPACITY]byte
	played     int
}

func NewPad(presetPath string, mute bool) *Pad {
	return &Pad{
		params:     synth.DefaultParams(),
		presetPath: presetPath,
		queue:      audio.NewQueue(constant.AUDIO_QUEUE_SIZE, constant.CHANNELS),
		mute:       mute,
		blink:      util.NewTickCounter(BLINK_TICKS),
		cursorOn:   true,
	}
}

func (p *Pad) Params() synth.Params {
	return p.params
}

func (p *Pad) Played() int {
	return p.played
}

func (p *Pad) Queue() *audio.Queue {
	return p.queue
}

func (p *Pad) Init(f *ddk.Frame) error {
	if p.presetPath != "" {
		params, err := synth.LoadPreset(p.presetPath)
		if err != nil {
			return err
		}
		p.params = params
	}
	if !p.mute {
		if err := f.StartAudio(p.queue); err != nil {
			util.Logger().Warn("audio disabled", zap.Error(err))
			p.mute = true
		}
	}
	util.Logger().Info("pad ready",
		zap.String("wave", string(p.params.Wave)),
		zap.Float64("frequency", p.params.Frequency),
		zap.Bool("mute", p.mute))
	return nil
}

func (p *Pad) CalcFrame(f *ddk.Frame) bool {
	if f.KeyPressed(input.KeyEscape) {
		return false
	}
	if f.KeyPressed(input.KeySpace) {
		p.play(p.params)
	}
	if f.KeyPressed(input.KeyReturn) {
		p.load(f)
	}

	ptr := f.Pointer()
	width := f.Mode().Width
	if ptr.LeftClick {
		p.params = p.params.WithFrequency(FreqAt(int(ptr.X), width))
		p.play(p.params)
	}
	if ptr.MiddleClick {
		p.params = p.params.NextWave()
		p.play(p.params)
	}
	if ptr.RightClick {
		p.save(f)
	}

	if p.blink.Tick(1) {
		p.cursorOn = !p.cursorOn
	}
	if err := p.draw(f, ptr); err != nil {
		util.Logger().Error("draw failed", zap.Error(err))
		return false
	}
	return true
}

func (p *Pad) Free(f *ddk.Frame) {
	p.queue.Clear()
	util.Logger().Info("pad closed", zap.Int("played", p.played))
}

func (p *Pad) play(params synth.Params) {
	p.played++
	util.Trace("play %s %.1fHz", params.Wave, params.Frequency)
	if p.mute {
		return
	}
	p.queue.Clear()
	p.queue.Write(synth.Render(params, constant.AUDIO_FREQ))
}

func (p *Pad) load(f *ddk.Frame) {
	if !f.LoadFile(p.path[:]) {
		return
	}
	path := ddk.CString(p.path[:])
	params, err := synth.LoadPreset(path)
	if err != nil {
		util.Logger().Warn("cannot load preset", zap.String("path", path), zap.Error(err))
		return
	}
	p.params = params
	p.play(p.params)
}

func (p *Pad) save(f *ddk.Frame) {
	if !f.SaveFile(p.path[:]) {
		return
	}
	path := ddk.CString(p.path[:])
	if err := synth.SavePreset(path, p.params); err != nil {
		util.Logger().Warn("cannot save preset", zap.String("path", path), zap.Error(err))
		return
	}
	util.Logger().Info("preset saved", zap.String("path", path))
}

// FreqAt maps x across OCTAVES octaves above LOW_FREQ.
func FreqAt(x, width int) float64 {
	if width <= 0 {
		return LOW_FREQ
	}
	x = util.ClampInt(x, 0, width)
	return LOW_FREQ * math.Pow(2, OCTAVES*float64(x)/float64(width))
}

// XAt is the inverse of FreqAt.
func XAt(hz float64, width int) int {
	x := math.Log2(hz/LOW_FREQ) / OCTAVES * float64(width)
	return util.ClampInt(int(math.Round(x)), 0, width-1)
}

func (p *Pad) draw(f *ddk.Frame, ptr input.Pointer) error {
	s, err := f.Lock()
	if err != nil {
		return err
	}

	s.Fill(s.Color(constant.COLOR_BACKGROUND))

	// Pitch marker
	s.FillRect(XAt(p.params.Frequency, s.Width), 0, 2, s.Height, s.Color(constant.COLOR_BAR))

	// Wave indicator: solid for square, striped for noise
	for i := 0; i < 4; i++ {
		color := s.Color(constant.COLOR_ACTIVE)
		if p.params.Wave == synth.WAVE_NOISE && i%2 == 1 {
			color = s.Color(constant.COLOR_BAR)
		}
		s.FillRect(4+i*6, 4, 6, 12, color)
	}

	// Volume bar
	s.FillRect(4, 20, p.params.Volume*4, 4, s.Color(constant.COLOR_BAR))

	if p.cursorOn {
		s.FillRect(int(ptr.X)-CURSOR_SIZE/2, int(ptr.Y)-CURSOR_SIZE/2, CURSOR_SIZE, CURSOR_SIZE, s.Color(constant.COLOR_CURSOR))
	}

	return f.Unlock()
}
