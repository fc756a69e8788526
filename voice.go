package playroom

import (
	"math"
)

const (
	// DefaultSampleRate is the output rate used when none is configured.
	DefaultSampleRate = 44100

	// Envelope levels: every tone starts at voiceAttackGain and decays
	// exponentially to voiceReleaseGain at the end of its duration.
	voiceAttackGain  = 0.3
	voiceReleaseGain = 0.01

	bytesPerFrame = 4 // 16-bit signed little-endian, two channels
)

// Voice renders one Tone sample by sample. Samples are in [-1, 1].
type Voice struct {
	tone  Tone
	sr    float64
	i, n  int
	phase float64 // in cycles, [0, 1)
	decay float64 // per-sample gain multiplier
	gain  float64
}

// NewVoice creates a voice for t at the given sample rate. Invalid tone
// fields are normalized first.
func NewVoice(t Tone, sampleRate int) *Voice {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	t = t.Normalized()
	n := int(math.Round(t.Duration.Seconds() * float64(sampleRate)))
	if n < 1 {
		n = 1
	}
	return &Voice{
		tone:  t,
		sr:    float64(sampleRate),
		n:     n,
		decay: math.Pow(voiceReleaseGain/voiceAttackGain, 1/float64(n)),
		gain:  voiceAttackGain,
	}
}

// Frames returns the total number of samples the voice produces.
func (v *Voice) Frames() int {
	return v.n
}

// Tone returns the normalized tone being rendered.
func (v *Voice) Tone() Tone {
	return v.tone
}

// Sample returns the next sample and whether the voice has finished.
func (v *Voice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	s := oscillate(v.tone.Waveform, v.phase) * v.gain
	v.phase += v.tone.Frequency / v.sr
	v.phase -= math.Floor(v.phase)
	v.gain *= v.decay
	v.i++
	return s, false
}

// Gain returns the envelope level at sample i without advancing the voice.
func (v *Voice) Gain(i int) float64 {
	return voiceAttackGain * math.Pow(v.decay, float64(i))
}

func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// RenderTone renders t as 16-bit little-endian stereo PCM, the format ebiten's
// audio players consume.
func RenderTone(t Tone, sampleRate int) []byte {
	v := NewVoice(t, sampleRate)
	out := make([]byte, v.Frames()*bytesPerFrame)
	for i := 0; ; i++ {
		s, done := v.Sample()
		if done {
			break
		}
		value := int16(s * math.MaxInt16)
		idx := i * bytesPerFrame
		out[idx] = byte(value)
		out[idx+1] = byte(value >> 8)
		out[idx+2] = byte(value)
		out[idx+3] = byte(value >> 8)
	}
	return out
}
