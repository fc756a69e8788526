package playroom

import (
	"math/rand/v2"
	"time"
)

// AnswerDelay is how long the toy phone rings before an animal picks up.
const AnswerDelay = 1500 * time.Millisecond

// Phone is the toy telephone: a keypad, a ring, and a random animal that
// answers.
type Phone struct {
	tones   *ToneScope
	rng     *rand.Rand
	number  string
	calling string
	answer  *Timer
}

// NewPhone creates a phone whose sounds and pending answer live in scope.
func NewPhone(scope *ToneScope, rng *rand.Rand) *Phone {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Phone{tones: scope, rng: rng}
}

// Dial appends key to the number and beeps.
func (p *Phone) Dial(key string) {
	p.number += key
	p.tones.PlaySequence(KeypadEffect(key))
}

// Number returns the digits dialled so far.
func (p *Phone) Number() string {
	return p.number
}

// Calling returns the animal on the line, or "" when idle.
func (p *Phone) Calling() string {
	return p.calling
}

// Call rings and, after AnswerDelay, lets a random animal answer: its call
// plays and onAnswer (if non-nil) receives its name. Calling again while a
// call is pending restarts the ring.
func (p *Phone) Call(onAnswer func(animal string)) {
	p.answer.Stop()
	p.tones.PlaySequence(RingEffect)
	animal := Animals[p.rng.IntN(len(Animals))]
	p.calling = animal
	p.answer = p.tones.After(AnswerDelay, func() {
		p.tones.PlaySequence(AnimalEffect(animal))
		if onAnswer != nil {
			onAnswer(animal)
		}
	})
}

// HangUp drops the call, silences any ring still pending, clears the number
// and plays the hang-up click.
func (p *Phone) HangUp() {
	p.tones.Cancel()
	p.answer = nil
	p.calling = ""
	p.number = ""
	p.tones.PlaySequence(HangUpEffect)
}
