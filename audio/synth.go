// Package audio synthesizes the game's sound cues. Cues are described by
// sfxr-style settings strings and rendered to 16-bit mono PCM, which the
// frontends hand to their own playback APIs.
package audio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simukka/sorades-invaders/common"
)

// SampleRate of every rendered buffer.
const SampleRate = 44100

// maxSamples caps a render at five seconds.
const maxSamples = 5 * SampleRate

// Wave selects the oscillator.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

func (w Wave) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveSine:
		return "sine"
	case WaveNoise:
		return "noise"
	}
	return "unknown"
}

// ErrSettings is wrapped by every settings parse failure.
var ErrSettings = errors.New("invalid sound settings")

// Params is one sound. Apart from Wave every field is a normalized knob in
// [0, 1], or [-1, 1] for the signed ones.
type Params struct {
	Wave Wave

	Attack  float64
	Sustain float64
	Punch   float64
	Decay   float64

	StartFreq  float64
	MinFreq    float64
	Slide      float64 // signed
	DeltaSlide float64 // signed

	VibratoDepth float64
	VibratoSpeed float64

	ChangeAmount float64 // signed
	ChangeSpeed  float64

	Duty      float64
	DutySweep float64 // signed

	// Fields 15-17 of the settings string (repeat, phaser) are accepted
	// and ignored.

	LPCutoff      float64
	LPCutoffSweep float64 // signed
	LPResonance   float64
	HPCutoff      float64
	HPCutoffSweep float64 // signed

	Volume float64
}

const settingsFields = 24

// ParseParams reads a comma-separated sfxr settings string. Empty fields
// are zero; missing trailing fields are zero as well.
func ParseParams(s string) (Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) > settingsFields {
		return Params{}, fmt.Errorf("%w: %d fields, want at most %d", ErrSettings, len(fields), settingsFields)
	}

	var v [settingsFields]float64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: field %d: %w", ErrSettings, i, err)
		}
		v[i] = x
	}

	wave := Wave(v[0])
	if wave < WaveSquare || wave > WaveNoise || v[0] != math.Trunc(v[0]) {
		return Params{}, fmt.Errorf("%w: unknown wave %v", ErrSettings, v[0])
	}

	p := Params{
		Wave:          wave,
		Attack:        v[1],
		Sustain:       v[2],
		Punch:         v[3],
		Decay:         v[4],
		StartFreq:     v[5],
		MinFreq:       v[6],
		Slide:         v[7],
		DeltaSlide:    v[8],
		VibratoDepth:  v[9],
		VibratoSpeed:  v[10],
		ChangeAmount:  v[11],
		ChangeSpeed:   v[12],
		Duty:          v[13],
		DutySweep:     v[14],
		LPCutoff:      v[18],
		LPCutoffSweep: v[19],
		LPResonance:   v[20],
		HPCutoff:      v[21],
		HPCutoffSweep: v[22],
		Volume:        v[23],
	}

	// Very short envelopes click; stretch them to an audible minimum.
	if p.Sustain < 0.01 {
		p.Sustain = 0.01
	}
	if total := p.Attack + p.Sustain + p.Decay; total < 0.18 {
		k := 0.18 / total
		p.Attack *= k
		p.Sustain *= k
		p.Decay *= k
	}
	return p, nil
}

// MustParams is ParseParams for settings known at compile time.
func MustParams(s string) Params {
	p, err := ParseParams(s)
	if err != nil {
		panic(err)
	}
	return p
}

// envelope holds the three stage lengths in samples.
type envelope [3]float64

func (p Params) envelope() envelope {
	return envelope{
		p.Attack * p.Attack * 100000,
		p.Sustain * p.Sustain * 100000,
		p.Decay*p.Decay*100000 + 10,
	}
}

// Length returns the number of samples the envelope spans, before any
// early stop from the minimum frequency cutoff.
func (p Params) Length() int {
	e := p.envelope()
	n := int(e[0] + e[1] + e[2])
	return min(n, maxSamples)
}

// Render synthesizes p. Noise draws from rng, so equal seeds render equal
// buffers.
func Render(p Params, rng common.Random) []int16 {
	env := p.envelope()
	out := make([]int16, 0, p.Length())

	period := 100 / (p.StartFreq*p.StartFreq + 0.001)
	maxPeriod := 100 / (p.MinFreq*p.MinFreq + 0.001)
	slide := 1 - p.Slide*p.Slide*p.Slide*0.01
	deltaSlide := -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001

	duty := 0.5 - p.Duty/2
	dutySweep := -p.DutySweep * 0.00005

	changeMul := 1 + p.ChangeAmount*p.ChangeAmount*10
	if p.ChangeAmount > 0 {
		changeMul = 1 - p.ChangeAmount*p.ChangeAmount*0.9
	}
	changeAt := 0.0
	if p.ChangeSpeed != 1 {
		changeAt = (1-p.ChangeSpeed)*(1-p.ChangeSpeed)*20000 + 32
	}

	vibAmp := p.VibratoDepth / 2
	vibSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	vibPhase := 0.0

	filtered := p.LPCutoff != 1 || p.HPCutoff != 0
	lpOn := p.LPCutoff != 1
	lpCut := p.LPCutoff * p.LPCutoff * p.LPCutoff * 0.1
	lpSweep := 1 + p.LPCutoffSweep*0.0001
	lpDamp := 1 - min(0.8, 5/(1+p.LPResonance*p.LPResonance*20)*(0.01+lpCut))
	hpCut := p.HPCutoff * p.HPCutoff * 0.1
	hpSweep := 1 + p.HPCutoffSweep*0.0003
	var lpPos, lpDelta, hpPos float64

	gain := p.Volume * p.Volume

	var noise [32]float64
	refreshNoise := func() {
		for i := range noise {
			noise[i] = rng.Random()*2 - 1
		}
	}
	refreshNoise()

	stage, stageTime := 0, 0.0
	phase := 0.0
	elapsed := 0.0

	for len(out) < maxSamples {
		elapsed++
		if changeAt != 0 && elapsed >= changeAt {
			changeAt = 0
			period *= changeMul
		}

		slide += deltaSlide
		period *= slide
		if period > maxPeriod {
			period = maxPeriod
			if p.MinFreq > 0 {
				break
			}
		}

		cur := period
		if vibAmp > 0 {
			vibPhase += vibSpeed
			cur *= 1 + math.Sin(vibPhase)*vibAmp
		}
		cur = math.Max(8, math.Floor(cur))

		if p.Wave == WaveSquare {
			duty = math.Max(0, math.Min(0.5, duty+dutySweep))
		}

		stageTime++
		if stageTime > env[stage] {
			stageTime = 0
			stage++
			if stage > 2 {
				break
			}
		}
		var vol float64
		switch stage {
		case 0:
			vol = stageTime / env[0]
		case 1:
			vol = 1 + (1-stageTime/env[1])*2*p.Punch
		case 2:
			vol = 1 - stageTime/env[2]
		}

		if filtered && hpSweep != 1 {
			hpCut = math.Max(0.00001, math.Min(0.1, hpCut*hpSweep))
		}

		// 8x oversampling.
		acc := 0.0
		for j := 0; j < 8; j++ {
			phase++
			if phase >= cur {
				phase = math.Mod(phase, cur)
				if p.Wave == WaveNoise {
					refreshNoise()
				}
			}

			pos := phase / cur
			var s float64
			switch p.Wave {
			case WaveSquare:
				s = -0.5
				if pos < duty {
					s = 0.5
				}
			case WaveSawtooth:
				s = 1 - pos*2
			case WaveSine:
				s = math.Sin(pos * 2 * math.Pi)
			case WaveNoise:
				s = noise[int(pos*32)%32]
			}

			if filtered {
				old := lpPos
				lpCut = math.Max(0, math.Min(0.1, lpCut*lpSweep))
				if lpOn {
					lpDelta += (s - lpPos) * lpCut
					lpDelta *= lpDamp
				} else {
					lpPos, lpDelta = s, 0
				}
				lpPos += lpDelta
				hpPos += lpPos - old
				hpPos *= 1 - hpCut
				s = hpPos
			}
			acc += s
		}

		out = append(out, toPCM(acc*0.125*vol*gain))
	}
	return out
}

func toPCM(x float64) int16 {
	switch {
	case x >= 1:
		return math.MaxInt16
	case x <= -1:
		return math.MinInt16
	}
	return int16(x * math.MaxInt16)
}
