package playroom

import (
	"fmt"
	"time"
)

// Feedback is what subsystems call to make noise. Both ToneScheduler and
// ToneScope satisfy it.
type Feedback interface {
	Play(t Tone)
	PlaySequence(q ToneSequence)
}

// ToneScheduler fires single tones and tone sequences against a Loop and
// renders each through a Voice into an AudioOutput. Audio is best-effort:
// failures are logged at debug level and never reach the caller.
type ToneScheduler struct {
	loop   *Loop
	out    AudioOutput
	root   *ToneScope
	played int
}

// NewToneScheduler creates a scheduler on loop. A nil out is replaced with
// NullOutput.
func NewToneScheduler(loop *Loop, out AudioOutput) *ToneScheduler {
	if out == nil {
		out = NullOutput{}
	}
	s := &ToneScheduler{loop: loop, out: out}
	s.root = s.NewScope()
	return s
}

// Output returns the audio capability the scheduler renders into.
func (s *ToneScheduler) Output() AudioOutput {
	return s.out
}

// Played returns how many tones have been handed to the output.
func (s *ToneScheduler) Played() int {
	return s.played
}

// Play synthesizes t immediately.
func (s *ToneScheduler) Play(t Tone) {
	s.root.Play(t)
}

// PlaySequence schedules every step of q at its offset from now. Steps of the
// unscoped scheduler cannot be cancelled; use NewScope for that.
func (s *ToneScheduler) PlaySequence(q ToneSequence) {
	s.root.PlaySequence(q)
}

// NewScope returns a scope whose pending tones can be cancelled together,
// typically when the mini-game that requested them is left.
func (s *ToneScheduler) NewScope() *ToneScope {
	return &ToneScope{sched: s, timers: NewTimerGroup(s.loop)}
}

// emit renders t and hands it to the output.
func (s *ToneScheduler) emit(t Tone) {
	defer func() {
		if r := recover(); r != nil {
			logger().Debug("tone dropped", "err", fmt.Sprint(r))
		}
	}()
	t = t.Normalized()
	pcm := RenderTone(t, s.out.SampleRate())
	if err := s.out.Play(pcm); err != nil {
		logger().Debug("tone dropped", "freq", t.Frequency, "err", err)
		return
	}
	s.played++
}

// ToneScope is a cancellation context for scheduled tones.
type ToneScope struct {
	sched  *ToneScheduler
	timers *TimerGroup
}

// Play synthesizes t immediately.
func (c *ToneScope) Play(t Tone) {
	c.sched.emit(t)
}

// PlaySequence plays zero-offset steps now and schedules the rest.
func (c *ToneScope) PlaySequence(q ToneSequence) {
	for _, step := range q.Normalized() {
		if step.Offset == 0 {
			c.sched.emit(step.Tone)
			continue
		}
		t := step.Tone
		c.timers.After(step.Offset, func() { c.sched.emit(t) })
	}
}

// After runs fn after d unless the scope is cancelled first.
func (c *ToneScope) After(d time.Duration, fn func()) *Timer {
	return c.timers.After(d, fn)
}

// Pending returns the number of scheduled but not yet started tones.
func (c *ToneScope) Pending() int {
	return c.timers.Pending()
}

// Cancel drops every pending tone of the scope and returns how many were
// dropped. Tones already sounding play out.
func (c *ToneScope) Cancel() int {
	return c.timers.Stop()
}
