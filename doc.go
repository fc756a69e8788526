// Package playroom is the real-time interaction engine behind a toddler's
// mini-game playroom built on [Ebitengine].
//
// It has three cooperating pieces, all driven by a single cooperative [Loop]:
//
//   - [ToneScheduler] synthesizes short tones (sine, square or sawtooth
//     under a decaying envelope) and plays them immediately or
//     as offset sequences. Tones requested by a mini-game live in a
//     [ToneScope] and are cancelled when the game is left.
//   - [StrokeSurface] turns pointer drags into brush strokes on a persistent
//     [Raster], with paint and erase modes, a clear action and PNG/PDF export.
//   - [BubbleField] spawns bubbles at the bottom of the viewport on a timer,
//     moves them upward on a second timer and pops them when tapped.
//
// [Shell] wires the pieces together and tears each game down explicitly on
// navigation:
//
//	sh := playroom.NewShell(playroom.ShellConfig{
//		Audio:  playroom.NewEbitenOutput(playroom.DefaultSampleRate),
//		Raster: playroom.NewEbitenRaster(800, 600),
//		Area:   playroom.Rect{Width: 800, Height: 600},
//	})
//	sh.Navigate(playroom.GameBubbles)
//
//	func (g *Game) Update() error { g.shell.Update(); return nil }
//
// # Time
//
// Nothing in the package starts goroutines or reads the wall clock. Timers
// fire inside [Loop.Advance], which [Shell.Update] calls once per ebiten tick.
// Tests drive the loop directly with Advance.
//
// # Events
//
// Subsystems report pops, escapes, committed strokes, clears and navigation
// to an optional [EventSink]. The ecs sub-module forwards them into a
// [Donburi] world.
//
// # Scripts
//
// [LoadScript] parses a JSON session (enter, tap, drag, wait, brush, clear,
// export) that a [ScriptRunner] replays through the same pointer path as
// real input.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package playroom
