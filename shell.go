package playroom

import (
	"math/rand/v2"
	"strings"
)

// Game identifies a mini-game the shell can show.
type Game uint8

const (
	GameHome Game = iota
	GameAnimals
	GameShapes
	GameNumbers
	GamePhone
	GameDrawing
	GameBubbles
)

var gameNames = [...]string{
	GameHome:    "home",
	GameAnimals: "animals",
	GameShapes:  "shapes",
	GameNumbers: "numbers",
	GamePhone:   "phone",
	GameDrawing: "drawing",
	GameBubbles: "bubbles",
}

func (g Game) String() string {
	if int(g) < len(gameNames) {
		return gameNames[g]
	}
	return "unknown"
}

// ParseGame returns the game with the given name.
func ParseGame(name string) (Game, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range gameNames {
		if n == name {
			return Game(i), true
		}
	}
	return GameHome, false
}

// ShellConfig configures a Shell. The zero value gives a silent shell with
// drawing disabled.
type ShellConfig struct {
	// Audio is the output tones are rendered into. Nil means silent.
	Audio AudioOutput
	// Raster backs the drawing game. Nil disables drawing.
	Raster Raster
	// Area is the on-screen play area. Pointer events are routed relative to
	// it, the drawing surface is displayed at its size and, unless
	// Bubbles.Viewport is set, bubbles rise through it.
	Area Rect
	// Rand is the shared randomness source.
	Rand *rand.Rand
	// Sink receives every engine event. Optional.
	Sink EventSink

	Surface SurfaceConfig
	Bubbles BubbleConfig
}

// Shell is the navigation-transition hook between mini-games. Every
// transition tears the previous game down explicitly (timers, pointer capture
// and pending tones) before the next one starts.
type Shell struct {
	loop    *Loop
	tones   *ToneScheduler
	scope   *ToneScope
	current Game
	rng     *rand.Rand
	sink    EventSink

	surface *StrokeSurface
	field   *BubbleField
	phone   *Phone
	cards   ShapeCards
	pointer *PointerRouter
	script  *ScriptRunner
}

// NewShell creates a shell showing the home screen.
func NewShell(cfg ShellConfig) *Shell {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	loop := NewLoop()
	tones := NewToneScheduler(loop, cfg.Audio)
	scope := tones.NewScope()

	if cfg.Surface.Sink == nil {
		cfg.Surface.Sink = cfg.Sink
	}
	if cfg.Surface.DisplayWidth == 0 && cfg.Area.Width > 0 {
		cfg.Surface.DisplayWidth, cfg.Surface.DisplayHeight = cfg.Area.Width, cfg.Area.Height
	}
	if cfg.Bubbles.Sink == nil {
		cfg.Bubbles.Sink = cfg.Sink
	}
	if cfg.Bubbles.Rand == nil {
		cfg.Bubbles.Rand = cfg.Rand
	}
	if cfg.Bubbles.Viewport == nil && cfg.Area.Width > 0 {
		area := cfg.Area
		cfg.Bubbles.Viewport = func() (float64, float64) { return area.Width, area.Height }
	}

	return &Shell{
		loop:    loop,
		tones:   tones,
		scope:   scope,
		rng:     cfg.Rand,
		sink:    cfg.Sink,
		surface: NewStrokeSurface(cfg.Raster, scope, cfg.Surface),
		field:   NewBubbleField(loop, scope, cfg.Bubbles),
		phone:   NewPhone(scope, cfg.Rand),
		pointer: NewPointerRouter(cfg.Area),
	}
}

// Loop returns the shell's event loop.
func (s *Shell) Loop() *Loop { return s.loop }

// Tones returns the tone scheduler.
func (s *Shell) Tones() *ToneScheduler { return s.tones }

// Scope returns the tone scope of the current game.
func (s *Shell) Scope() *ToneScope { return s.scope }

// Current returns the game on screen.
func (s *Shell) Current() Game { return s.current }

// Surface returns the drawing surface.
func (s *Shell) Surface() *StrokeSurface { return s.surface }

// Field returns the bubble field.
func (s *Shell) Field() *BubbleField { return s.field }

// Phone returns the toy phone of the current visit to the phone game.
func (s *Shell) Phone() *Phone { return s.phone }

// Pointer returns the pointer router.
func (s *Shell) Pointer() *PointerRouter { return s.pointer }

// Navigate leaves the current game and enters g. Navigating to the current
// game is a no-op. Going home plays the back tone, entering a game the click.
func (s *Shell) Navigate(g Game) {
	if g == s.current {
		return
	}
	s.leave()
	if g == GameHome {
		s.tones.PlaySequence(BackEffect)
	} else {
		s.tones.PlaySequence(ClickEffect)
	}
	s.enter(g)
}

func (s *Shell) leave() {
	from := s.current
	switch from {
	case GameBubbles:
		s.field.Stop()
	case GameDrawing:
		s.surface.Release()
	}
	s.pointer.Reset()
	s.pointer.Target = nil
	s.pointer.OnTap = nil
	if n := s.scope.Cancel(); n > 0 {
		logger().Debug("pending tones cancelled", "game", from, "count", n)
	}
	emit(s.sink, Event{Type: EventGameLeft, Time: s.loop.Now(), Game: from})
}

func (s *Shell) enter(g Game) {
	s.current = g
	s.scope = s.tones.NewScope()
	s.surface.SetFeedback(s.scope)
	s.field.SetFeedback(s.scope)

	switch g {
	case GameDrawing:
		s.pointer.Target = s.surface
	case GameBubbles:
		s.pointer.OnTap = func(x, y float64) { s.field.PopAt(x, y) }
		s.field.Start()
	case GamePhone:
		s.phone = NewPhone(s.scope, s.rng)
	}
	logger().Info("game entered", "game", g)
	emit(s.sink, Event{Type: EventGameEntered, Time: s.loop.Now(), Game: g})
}

// TapAnimal plays the named animal's call.
func (s *Shell) TapAnimal(name string) {
	s.scope.PlaySequence(AnimalEffect(name))
}

// TapShape registers a tap on shape card index, alternating between its
// color and its shape sound.
func (s *Shell) TapShape(index int, shape, color string) {
	s.scope.PlaySequence(s.cards.Tap(index, shape, color))
}

// TapNumber plays the tone of n.
func (s *Shell) TapNumber(n int) {
	s.scope.PlaySequence(NumberEffect(n))
}

// Cards returns the shape card tap counters.
func (s *Shell) Cards() *ShapeCards { return &s.cards }

// Update runs the attached script step, processes one frame of pointer input
// and advances the loop by one tick.
func (s *Shell) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	s.pointer.Process()
	s.loop.Update()
}
