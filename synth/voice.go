package synth

import (
	"github.com/ushitora-anqou/ddkit/constant"
	"github.com/ushitora-anqou/ddkit/util"
)

var dutyTable = [4][8]float32{
	{-1, -1, -1, -1, -1, -1, -1, +1},
	{-1, -1, -1, -1, -1, -1, +1, +1},
	{-1, -1, -1, -1, +1, +1, +1, +1},
	{+1, +1, +1, +1, +1, +1, -1, -1},
}

type sweep struct {
	period, shift, curCode int
	isDecrementing         bool
	outEnabled             bool
	tick                   *util.TickCounter
}

func newSweep(p Params, code, rate int) *sweep {
	s := &sweep{
		period:         p.SweepPeriod,
		shift:          p.SweepShift,
		isDecrementing: p.SweepDown,
		curCode:        code,
		outEnabled:     true,
	}
	if s.period != 0 {
		s.tick = util.NewTickCounter(uint(s.period * rate / 128))
	}
	return s
}

// doTick reports whether the frequency changed.
func (s *sweep) doTick() bool {
	if s.tick == nil || !s.tick.Tick(1) {
		return false
	}
	delta := s.curCode >> s.shift
	code := s.curCode + delta
	if s.isDecrementing {
		code = s.curCode - delta
	}
	if 0 < code && code < 2048 {
		s.curCode = code
		return true
	}
	s.tick = nil
	s.outEnabled = false
	return false
}

type envelope struct {
	currentVolume int
	increasing    bool
	tick          *util.TickCounter
}

func newEnvelope(p Params, rate int) *envelope {
	e := &envelope{
		currentVolume: p.Volume,
		increasing:    p.EnvelopeUp,
	}
	if p.EnvelopeStep != 0 {
		e.tick = util.NewTickCounter(uint(p.EnvelopeStep * rate / 64))
	}
	return e
}

func (e *envelope) doTick() {
	if e.tick == nil || !e.tick.Tick(1) {
		return
	}
	if e.increasing && e.currentVolume < 0xf {
		e.currentVolume++
	} else if !e.increasing && e.currentVolume > 0 {
		e.currentVolume--
	}
}

// silent is true once a decaying envelope reached zero for good.
func (e *envelope) silent() bool {
	return e.currentVolume == 0 && (!e.increasing || e.tick == nil)
}

func (e *envelope) getAmplitude(src float32) float32 {
	return src * float32(e.currentVolume) / 15
}

// Voice renders one Params as a stream of samples.
type Voice struct {
	params    Params
	rate      int
	freq      float64
	phase     float64
	lfsr      int
	sweep     *sweep
	env       *envelope
	remaining int
}

func NewVoice(p Params, rate int) *Voice {
	code := freqToCode(p.Frequency)
	return &Voice{
		params:    p,
		rate:      rate,
		freq:      codeToFreq(code),
		lfsr:      0x7fff,
		sweep:     newSweep(p, code, rate),
		env:       newEnvelope(p, rate),
		remaining: int(min(p.Length, MAX_LENGTH) * float64(rate)),
	}
}

func (v *Voice) Done() bool {
	return v.remaining <= 0 || !v.sweep.outEnabled || v.env.silent()
}

// Next advances the voice by one sample and returns its mono value.
func (v *Voice) Next() float32 {
	if v.Done() {
		return 0
	}
	v.remaining--

	var val float32
	step := v.freq * 8 / float64(v.rate)
	switch v.params.Wave {
	case WAVE_NOISE:
		v.phase += step
		for ; v.phase >= 1; v.phase-- {
			v.clockLFSR()
		}
		val = float32(1&^v.lfsr)*2 - 1
	default:
		v.phase += step
		for v.phase >= 8 {
			v.phase -= 8
		}
		val = dutyTable[v.params.Duty][int(v.phase)]
	}
	val = v.env.getAmplitude(val) * float32(v.params.Gain)

	if v.sweep.doTick() {
		v.freq = codeToFreq(v.sweep.curCode)
	}
	v.env.doTick()

	return val
}

func (v *Voice) clockLFSR() {
	tmp := (v.lfsr & 1) ^ ((v.lfsr >> 1) & 1)
	v.lfsr = (v.lfsr >> 1) | (tmp << 14)
	if v.params.ShortNoise {
		v.lfsr &^= 1 << 6
		v.lfsr |= tmp << 6
	}
}

// Render plays the voice to the end and returns interleaved samples with
// constant.CHANNELS channels.
func (v *Voice) Render() []float32 {
	buf := make([]float32, 0, v.remaining*constant.CHANNELS)
	for !v.Done() {
		s := v.Next()
		for ch := 0; ch < constant.CHANNELS; ch++ {
			buf = append(buf, s)
		}
	}
	return buf
}

// Render is a shorthand for NewVoice(p, rate).Render().
func Render(p Params, rate int) []float32 {
	return NewVoice(p, rate).Render()
}
