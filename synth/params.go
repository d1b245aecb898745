package synth

import (
	"errors"
	"fmt"
)

type Wave string

const (
	WAVE_SQUARE Wave = "square"
	WAVE_NOISE  Wave = "noise"
)

const (
	MIN_FREQ   = 64.0     // frequency code 0
	MAX_FREQ   = 131072.0 // frequency code 2047 is just below this
	MAX_LENGTH = 4.0      // seconds
)

var ErrInvalidParams = errors.New("invalid sound parameters")

// Params describes one sound effect. The sweep and envelope fields keep the
// Game Boy register ranges, only scaled to seconds.
type Params struct {
	Wave      Wave    `yaml:"wave"`
	Frequency float64 `yaml:"frequency"`
	// Duty selects 12.5%, 25%, 50% or 75% high time for square waves.
	Duty int `yaml:"duty"`
	// SweepPeriod is in 1/128 s units, 0 disables the sweep.
	SweepPeriod int  `yaml:"sweep_period"`
	SweepShift  int  `yaml:"sweep_shift"`
	SweepDown   bool `yaml:"sweep_down"`
	Volume      int  `yaml:"volume"`
	EnvelopeUp  bool `yaml:"envelope_up"`
	// EnvelopeStep is in 1/64 s units, 0 holds the initial volume.
	EnvelopeStep int     `yaml:"envelope_step"`
	Length       float64 `yaml:"length"`
	ShortNoise   bool    `yaml:"short_noise"`
	Gain         float64 `yaml:"gain"`
}

func DefaultParams() Params {
	return Params{
		Wave:         WAVE_SQUARE,
		Frequency:    440,
		Duty:         2,
		SweepPeriod:  0,
		Volume:       15,
		EnvelopeStep: 2,
		Length:       0.5,
		Gain:         0.5,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Wave != WAVE_SQUARE && p.Wave != WAVE_NOISE:
		return fmt.Errorf("%w: unknown wave %q", ErrInvalidParams, p.Wave)
	case p.Frequency < MIN_FREQ || p.Frequency >= MAX_FREQ:
		return fmt.Errorf("%w: frequency %.1f out of [%.0f, %.0f)", ErrInvalidParams, p.Frequency, MIN_FREQ, MAX_FREQ)
	case p.Duty < 0 || p.Duty > 3:
		return fmt.Errorf("%w: duty %d", ErrInvalidParams, p.Duty)
	case p.SweepPeriod < 0 || p.SweepPeriod > 7 || p.SweepShift < 0 || p.SweepShift > 7:
		return fmt.Errorf("%w: sweep %d/%d", ErrInvalidParams, p.SweepPeriod, p.SweepShift)
	case p.Volume < 0 || p.Volume > 15:
		return fmt.Errorf("%w: volume %d", ErrInvalidParams, p.Volume)
	case p.EnvelopeStep < 0 || p.EnvelopeStep > 7:
		return fmt.Errorf("%w: envelope step %d", ErrInvalidParams, p.EnvelopeStep)
	case p.Length <= 0 || p.Length > MAX_LENGTH:
		return fmt.Errorf("%w: length %.2fs", ErrInvalidParams, p.Length)
	case p.Gain < 0 || p.Gain > 1:
		return fmt.Errorf("%w: gain %.2f", ErrInvalidParams, p.Gain)
	}
	return nil
}

// WithFrequency returns p playing at hz, clamped to the representable range.
func (p Params) WithFrequency(hz float64) Params {
	p.Frequency = min(max(hz, MIN_FREQ), MAX_FREQ-1)
	return p
}

// NextWave cycles between the wave types.
func (p Params) NextWave() Params {
	if p.Wave == WAVE_SQUARE {
		p.Wave = WAVE_NOISE
	} else {
		p.Wave = WAVE_SQUARE
	}
	return p
}

func freqToCode(hz float64) int {
	code := int(2048 - 131072/hz + 0.5)
	return min(max(code, 0), 2047)
}

func codeToFreq(code int) float64 {
	return 131072 / float64(2048-code)
}
