package playroom

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BubbleID identifies a bubble for the lifetime of the field.
type BubbleID = uuid.UUID

// Bubble is one rising bubble. X and Y are its centre in viewport pixels;
// Size is the diameter and never changes after spawn.
type Bubble struct {
	ID    BubbleID
	X, Y  float64
	Size  float64
	Color Color
}

// Contains reports whether (x, y) lies inside the bubble's circle.
func (b Bubble) Contains(x, y float64) bool {
	dx, dy := x-b.X, y-b.Y
	r := b.Size / 2
	return dx*dx+dy*dy <= r*r
}

// escaped reports whether the bubble has fully left through the top edge.
func (b Bubble) escaped() bool {
	return b.Y < -b.Size/2
}

// BubbleStore is the single owned collection both periodic processes mutate.
// It is only ever touched from the loop goroutine.
type BubbleStore interface {
	Add(b Bubble)
	// RemoveWhere drops every bubble matching pred and returns them in order.
	RemoveWhere(pred func(Bubble) bool) []Bubble
	MapInPlace(fn func(*Bubble))
	Len() int
	// Each visits bubbles oldest first until fn returns false.
	Each(fn func(Bubble) bool)
	Reset()
}

// bubbleSlice is the default BubbleStore.
type bubbleSlice struct {
	items []Bubble
}

func (s *bubbleSlice) Add(b Bubble) {
	s.items = append(s.items, b)
}

func (s *bubbleSlice) RemoveWhere(pred func(Bubble) bool) []Bubble {
	var removed []Bubble
	live := s.items[:0]
	for _, b := range s.items {
		if pred(b) {
			removed = append(removed, b)
			continue
		}
		live = append(live, b)
	}
	clear(s.items[len(live):])
	s.items = live
	return removed
}

func (s *bubbleSlice) MapInPlace(fn func(*Bubble)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}

func (s *bubbleSlice) Len() int { return len(s.items) }

func (s *bubbleSlice) Each(fn func(Bubble) bool) {
	for _, b := range s.items {
		if !fn(b) {
			return
		}
	}
}

func (s *bubbleSlice) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// Default bubble field tunables.
const (
	DefaultSpawnEvery    = 800 * time.Millisecond
	DefaultAdvanceEvery  = 30 * time.Millisecond
	DefaultRise          = 3.0
	DefaultBurstDuration = 300 * time.Millisecond
	DefaultViewportW     = 800.0
	DefaultViewportH     = 600.0
)

// DefaultBubbleSize is the diameter range of spawned bubbles in pixels.
var DefaultBubbleSize = Range{Min: 40, Max: 90}

// BubbleConfig configures a BubbleField. Zero fields select the defaults.
type BubbleConfig struct {
	// SpawnEvery is the spawn cadence.
	SpawnEvery time.Duration
	// AdvanceEvery is the motion tick.
	AdvanceEvery time.Duration
	// Rise is how far bubbles move up per motion tick, in pixels.
	Rise float64
	// Size is the diameter range.
	Size Range
	// Palette lists the colors bubbles are drawn from uniformly.
	Palette []Color
	// BurstDuration is how long the ring shown after a pop lasts.
	BurstDuration time.Duration
	// Viewport reports the current play area size. It is read on every
	// spawn so resizes are honoured.
	Viewport func() (w, h float64)
	// Rand is the randomness source.
	Rand *rand.Rand
	// Store holds the bubbles. Nil selects a slice.
	Store BubbleStore
	// Sink receives pop and escape events. Optional.
	Sink EventSink
}

func (c *BubbleConfig) defaults() {
	if c.SpawnEvery <= 0 {
		c.SpawnEvery = DefaultSpawnEvery
	}
	if c.AdvanceEvery <= 0 {
		c.AdvanceEvery = DefaultAdvanceEvery
	}
	if c.Rise <= 0 {
		c.Rise = DefaultRise
	}
	if c.Size.Min <= 0 || c.Size.Max < c.Size.Min {
		c.Size = DefaultBubbleSize
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.BurstDuration <= 0 {
		c.BurstDuration = DefaultBurstDuration
	}
	if c.Viewport == nil {
		c.Viewport = func() (float64, float64) { return DefaultViewportW, DefaultViewportH }
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Store == nil {
		c.Store = &bubbleSlice{}
	}
}

// Burst is the expanding, fading ring left where a bubble was popped.
type Burst struct {
	X, Y   float64
	Color  Color
	Radius float64
	Alpha  float64
	Done   bool

	radius *gween.Tween
	alpha  *gween.Tween
}

func newBurst(b Bubble, d time.Duration) *Burst {
	sec := float32(d.Seconds())
	r := b.Size / 2
	return &Burst{
		X: b.X, Y: b.Y, Color: b.Color, Radius: r, Alpha: 1,
		radius: gween.New(float32(r), float32(r*1.6), sec, ease.OutQuad),
		alpha:  gween.New(1, 0, sec, ease.OutQuad),
	}
}

// Update advances the ring by dt seconds.
func (b *Burst) Update(dt float32) {
	if b.Done {
		return
	}
	r, rDone := b.radius.Update(dt)
	a, aDone := b.alpha.Update(dt)
	b.Radius, b.Alpha = float64(r), float64(a)
	b.Done = rDone && aDone
}

// BubbleField runs the bubble-popping game: a spawn process adds bubbles
// below the viewport and an independent advance process moves them up and
// drops the ones that escaped. Both run on the Loop only between Start and
// Stop.
type BubbleField struct {
	cfg      BubbleConfig
	feedback Feedback
	timers   *TimerGroup
	store    BubbleStore
	bursts   []*Burst
	score    int
	running  bool
}

// NewBubbleField creates a stopped field on loop.
func NewBubbleField(loop *Loop, feedback Feedback, cfg BubbleConfig) *BubbleField {
	cfg.defaults()
	return &BubbleField{
		cfg:      cfg,
		feedback: feedback,
		timers:   NewTimerGroup(loop),
		store:    cfg.Store,
	}
}

// Config returns a pointer to the field's config for live tuning. Period
// changes take effect on the next Start.
func (f *BubbleField) Config() *BubbleConfig {
	return &f.cfg
}

// SetFeedback replaces the tone target.
func (f *BubbleField) SetFeedback(fb Feedback) {
	f.feedback = fb
}

// SetEventSink sets the optional event bridge.
func (f *BubbleField) SetEventSink(sink EventSink) {
	f.cfg.Sink = sink
}

// Start resets the score, empties the field and starts both processes. A
// running field is restarted.
func (f *BubbleField) Start() {
	f.timers.Stop()
	f.store.Reset()
	f.bursts = nil
	f.score = 0
	f.timers.Every(f.cfg.SpawnEvery, f.spawn)
	f.timers.Every(f.cfg.AdvanceEvery, f.advance)
	f.running = true
	logger().Info("bubble field started", "spawn", f.cfg.SpawnEvery, "advance", f.cfg.AdvanceEvery)
}

// Stop halts both processes and empties the field. Stopping a stopped field
// is a no-op.
func (f *BubbleField) Stop() {
	if !f.running {
		return
	}
	f.running = false
	f.timers.Stop()
	f.store.Reset()
	f.bursts = nil
	logger().Info("bubble field stopped", "score", f.score)
}

// Running reports whether the processes are active.
func (f *BubbleField) Running() bool {
	return f.running
}

// Score returns the number of bubbles popped since Start.
func (f *BubbleField) Score() int {
	return f.score
}

// Len returns the number of bubbles in the field.
func (f *BubbleField) Len() int {
	return f.store.Len()
}

// Bubbles returns a copy of the current bubbles, oldest first.
func (f *BubbleField) Bubbles() []Bubble {
	out := make([]Bubble, 0, f.store.Len())
	f.store.Each(func(b Bubble) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Bursts returns the pop rings still animating.
func (f *BubbleField) Bursts() []*Burst {
	return f.bursts
}

// spawn adds one bubble fully inside the viewport width, just below the
// bottom edge.
func (f *BubbleField) spawn() {
	rng := f.cfg.Rand
	w, h := f.cfg.Viewport()
	size := f.cfg.Size.Random(rng)
	x := w / 2
	if w >= size {
		x = size/2 + rng.Float64()*(w-size)
	}
	f.store.Add(Bubble{
		ID:    uuid.New(),
		X:     x,
		Y:     h + size/2,
		Size:  size,
		Color: f.cfg.Palette[rng.IntN(len(f.cfg.Palette))],
	})
}

// advance moves every bubble up one step, drops escaped bubbles without
// scoring, and animates bursts.
func (f *BubbleField) advance() {
	rise := f.cfg.Rise
	f.store.MapInPlace(func(b *Bubble) { b.Y -= rise })
	for _, b := range f.store.RemoveWhere(Bubble.escaped) {
		emit(f.cfg.Sink, Event{Type: EventBubbleEscaped, Bubble: b.ID, X: b.X, Y: b.Y, Score: f.score})
	}

	if len(f.bursts) == 0 {
		return
	}
	dt := float32(f.cfg.AdvanceEvery.Seconds())
	live := f.bursts[:0]
	for _, b := range f.bursts {
		b.Update(dt)
		if !b.Done {
			live = append(live, b)
		}
	}
	clear(f.bursts[len(live):])
	f.bursts = live
}

// Pop removes the bubble with the given id, scores it and plays the pop tone.
// It reports false, changing nothing, if the bubble is already gone.
func (f *BubbleField) Pop(id BubbleID) bool {
	removed := f.store.RemoveWhere(func(b Bubble) bool { return b.ID == id })
	if len(removed) == 0 {
		return false
	}
	b := removed[0]
	f.score++
	if f.feedback != nil {
		f.feedback.PlaySequence(PopEffect)
	}
	f.bursts = append(f.bursts, newBurst(b, f.cfg.BurstDuration))
	emit(f.cfg.Sink, Event{Type: EventBubblePopped, Bubble: b.ID, X: b.X, Y: b.Y, Score: f.score})
	return true
}

// PopAt pops the topmost (most recently spawned) bubble under (x, y).
func (f *BubbleField) PopAt(x, y float64) bool {
	var hit BubbleID
	found := false
	f.store.Each(func(b Bubble) bool {
		if b.Contains(x, y) {
			hit, found = b.ID, true
		}
		return true
	})
	if !found {
		return false
	}
	return f.Pop(hit)
}
