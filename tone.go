package playroom

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// Waveform selects the oscillator shape of a Tone.
type Waveform uint8

const (
	WaveSine     Waveform = iota // pure sine
	WaveSquare                   // hollow, buzzy square
	WaveSawtooth                 // bright, rasping sawtooth
)

func (w Waveform) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

const (
	// DefaultToneDuration is used when a Tone has no positive duration.
	DefaultToneDuration = 200 * time.Millisecond
	// DefaultFrequency replaces frequencies that are not positive and finite.
	DefaultFrequency = 440.0
)

// Tone is a single synthesized note. It is a value object: create one per
// effect request and let it go once played.
type Tone struct {
	Frequency float64       // Hz, > 0
	Duration  time.Duration // > 0, defaults to DefaultToneDuration
	Waveform  Waveform
}

// NewTone is shorthand for a Tone literal with the duration in milliseconds.
func NewTone(frequency float64, ms int, w Waveform) Tone {
	return Tone{Frequency: frequency, Duration: time.Duration(ms) * time.Millisecond, Waveform: w}
}

// Normalized returns t with invalid fields replaced by safe defaults.
func (t Tone) Normalized() Tone {
	if !(t.Frequency > 0) || math.IsInf(t.Frequency, 0) {
		t.Frequency = DefaultFrequency
	}
	if t.Duration <= 0 {
		t.Duration = DefaultToneDuration
	}
	if t.Waveform > WaveSawtooth {
		t.Waveform = WaveSine
	}
	return t
}

// ToneStep is one entry of a ToneSequence: a tone started Offset after the
// sequence is played.
type ToneStep struct {
	Offset time.Duration
	Tone   Tone
}

// At builds a ToneStep offset by ms milliseconds.
func At(ms int, t Tone) ToneStep {
	return ToneStep{Offset: time.Duration(ms) * time.Millisecond, Tone: t}
}

// ToneSequence is an ordered list of tones with non-decreasing offsets
// relative to the start of playback.
type ToneSequence []ToneStep

// Sequence collects steps into a ToneSequence.
func Sequence(steps ...ToneStep) ToneSequence {
	return ToneSequence(steps)
}

// Ordered reports whether the offsets are non-negative and non-decreasing.
func (q ToneSequence) Ordered() bool {
	for i, s := range q {
		if s.Offset < 0 {
			return false
		}
		if i > 0 && s.Offset < q[i-1].Offset {
			return false
		}
	}
	return true
}

// Normalized returns a copy with negative offsets clamped to zero and steps
// stably sorted by offset.
func (q ToneSequence) Normalized() ToneSequence {
	out := slices.Clone(q)
	for i := range out {
		if out[i].Offset < 0 {
			out[i].Offset = 0
		}
	}
	if !out.Ordered() {
		slices.SortStableFunc(out, func(a, b ToneStep) int {
			return cmp.Compare(a.Offset, b.Offset)
		})
	}
	return out
}

// Duration returns the time from the first tone start to the last tone end.
func (q ToneSequence) Duration() time.Duration {
	var end time.Duration
	for _, s := range q {
		e := s.Offset + s.Tone.Normalized().Duration
		if e > end {
			end = e
		}
	}
	return end
}
