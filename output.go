package playroom

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ErrNoAudio is returned by outputs that have no audio device behind them.
var ErrNoAudio = errors.New("playroom: no audio output")

// AudioOutput is the platform audio capability: it plays rendered PCM
// (16-bit little-endian stereo at SampleRate) and never blocks the loop.
type AudioOutput interface {
	SampleRate() int
	Play(pcm []byte) error
}

// NullOutput discards every buffer. It stands in when audio is unavailable
// or muted.
type NullOutput struct{}

// SampleRate returns DefaultSampleRate.
func (NullOutput) SampleRate() int { return DefaultSampleRate }

// Play discards pcm.
func (NullOutput) Play([]byte) error { return nil }

// EbitenOutput plays buffers through ebiten's audio package. Ebiten mixes
// concurrent players, so overlapping tones simply sum.
type EbitenOutput struct {
	ctx     *audio.Context
	volume  float64
	players []*audio.Player
	mu      sync.Mutex
}

// NewEbitenOutput returns an output on the process-wide ebiten audio context,
// creating it at sampleRate if none exists yet. An existing context keeps its
// own rate; SampleRate reports the effective one.
func NewEbitenOutput(sampleRate int) *EbitenOutput {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &EbitenOutput{ctx: ctx, volume: 1}
}

// SampleRate returns the audio context's sample rate.
func (o *EbitenOutput) SampleRate() int {
	if o == nil || o.ctx == nil {
		return DefaultSampleRate
	}
	return o.ctx.SampleRate()
}

// SetVolume sets the volume applied to players started afterwards.
func (o *EbitenOutput) SetVolume(v float64) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.volume = clamp01(v)
	o.mu.Unlock()
}

// Play starts a new player for pcm.
func (o *EbitenOutput) Play(pcm []byte) error {
	if o == nil || o.ctx == nil {
		return ErrNoAudio
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cleanupFinishedPlayers()

	p := o.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(o.volume)
	p.Play()
	o.players = append(o.players, p)
	return nil
}

// Playing returns how many players are still sounding.
func (o *EbitenOutput) Playing() int {
	if o == nil {
		return 0
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleanupFinishedPlayers()
	return len(o.players)
}

// cleanupFinishedPlayers closes and drops players that have finished.
// Must be called with mu held.
func (o *EbitenOutput) cleanupFinishedPlayers() {
	live := o.players[:0]
	for _, p := range o.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			logger().Debug("close audio player", "err", err)
		}
	}
	clear(o.players[len(live):])
	o.players = live
}
