package audio

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/simukka/sorades-invaders/common"
	"github.com/simukka/sorades-invaders/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseParams_Basic tests field positions.
func TestParseParams_Basic(t *testing.T) {
	p, err := ParseParams("0,.1,.2,.3,.4,.5,.6,-.7,.8,.9,.1,.11,.12,.13,.14,.15,.16,.17,.18,.19,.2,.21,.22,.5")
	require.NoError(t, err)

	assert.Equal(t, WaveSquare, p.Wave)
	assert.InDelta(t, 0.1, p.Attack, 1e-9)
	assert.InDelta(t, 0.2, p.Sustain, 1e-9)
	assert.InDelta(t, 0.5, p.StartFreq, 1e-9)
	assert.InDelta(t, -0.7, p.Slide, 1e-9)
	assert.InDelta(t, 0.18, p.LPCutoff, 1e-9)
	assert.InDelta(t, 0.22, p.HPCutoffSweep, 1e-9)
	assert.InDelta(t, 0.5, p.Volume, 1e-9)
}

// TestParseParams_EmptyFields tests that blanks and missing tail fields are zero.
func TestParseParams_EmptyFields(t *testing.T) {
	p, err := ParseParams("3,,.3")
	require.NoError(t, err)
	assert.Equal(t, WaveNoise, p.Wave)
	assert.Zero(t, p.Volume)
	assert.InDelta(t, 0.3, p.Sustain, 1e-9)
}

// TestParseParams_EnvelopeMinimum tests that tiny envelopes are stretched.
func TestParseParams_EnvelopeMinimum(t *testing.T) {
	p, err := ParseParams("0,.001,.001,0,.001,.5")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Sustain, 0.01)
	assert.InDelta(t, 0.18, p.Attack+p.Sustain+p.Decay, 1e-9)
}

// TestParseParams_Errors tests rejected settings strings.
func TestParseParams_Errors(t *testing.T) {
	for name, s := range map[string]string{
		"bad number":   "0,abc",
		"bad wave":     "7,,.3",
		"fraction":     "1.5,,.3",
		"too many":     strings.Repeat("0,", settingsFields) + "0",
		"negative wav": "-1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseParams(s)
			assert.ErrorIs(t, err, ErrSettings)
		})
	}
}

// TestRender_LengthFollowsEnvelope tests that a render without a frequency
// cutoff spans the envelope.
func TestRender_LengthFollowsEnvelope(t *testing.T) {
	p := MustParams("0,0,.3,0,.4,.5,0,0,0,0,0,0,0,0,0,0,0,0,1,0,0,0,0,.5")
	out := Render(p, common.NewSeededRNG(1))

	assert.InDelta(t, p.Length(), len(out), 4)
	nonZero := 0
	for _, s := range out {
		if s != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, len(out)/2)
}

// TestRender_WaveTypes tests that every oscillator makes sound.
func TestRender_WaveTypes(t *testing.T) {
	for w := WaveSquare; w <= WaveNoise; w++ {
		t.Run(w.String(), func(t *testing.T) {
			p := MustParams("0,0,.2,0,.2,.5,0,0,0,0,0,0,0,0,0,0,0,0,1,0,0,0,0,.5")
			p.Wave = w
			out := Render(p, common.NewSeededRNG(9))
			require.NotEmpty(t, out)

			peak := 0
			for _, s := range out {
				peak = max(peak, abs(int(s)))
			}
			assert.Greater(t, peak, 1000)
		})
	}
}

// TestRender_MinFrequencyStopsEarly tests the falling-pitch cutoff.
func TestRender_MinFrequencyStopsEarly(t *testing.T) {
	p := MustParams("0,0,.3,0,.4,.5,.45,-.8,0,0,0,0,0,0,0,0,0,0,1,0,0,0,0,.5")
	out := Render(p, common.NewSeededRNG(1))
	assert.NotEmpty(t, out)
	assert.Less(t, len(out), p.Length()/2)
}

// TestRender_Deterministic tests that equal seeds render equal noise.
func TestRender_Deterministic(t *testing.T) {
	p := MustParams(Cues[game.EventEnemyKilled])
	a := Render(p, common.NewSeededRNG(5))
	b := Render(p, common.NewSeededRNG(5))
	c := Render(p, common.NewSeededRNG(6))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestNewBank_AllCues tests that every event has a playable cue.
func TestNewBank_AllCues(t *testing.T) {
	bank, err := NewBank(1)
	require.NoError(t, err)
	assert.Equal(t, len(Cues), bank.Len())

	for kind := game.EventShotFired; kind <= game.EventGameOver; kind++ {
		s := bank.Samples(kind)
		assert.NotEmpty(t, s, kind.String())
		assert.LessOrEqual(t, len(s), maxSamples, kind.String())
	}
	assert.Nil(t, bank.Samples(game.EventKind(99)))
}

// TestWAV_Header tests the RIFF container layout.
func TestWAV_Header(t *testing.T) {
	samples := []int16{0, 1, -1, 32767}
	b := WAV(samples)

	require.Len(t, b, 44+2*len(samples))
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, "fmt ", string(b[12:16]))
	assert.Equal(t, "data", string(b[36:40]))
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(b[4:]))
	assert.Equal(t, uint32(SampleRate), binary.LittleEndian.Uint32(b[24:]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(b[40:]))
	assert.Equal(t, int16(-1), int16(binary.LittleEndian.Uint16(b[48:])))

	assert.True(t, strings.HasPrefix(DataURL(samples), "data:audio/wav;base64,UklGR"))
}

// TestPCM16Stereo tests channel duplication.
func TestPCM16Stereo(t *testing.T) {
	b := PCM16Stereo([]int16{5, -2})
	require.Len(t, b, 8)
	assert.Equal(t, int16(5), int16(binary.LittleEndian.Uint16(b[0:])))
	assert.Equal(t, int16(5), int16(binary.LittleEndian.Uint16(b[2:])))
	assert.Equal(t, int16(-2), int16(binary.LittleEndian.Uint16(b[6:])))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
