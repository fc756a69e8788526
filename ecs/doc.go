// Package ecs provides ECS adapters for playroom's engine events.
//
// The primary adapter is [NewDonburiSink], which publishes playroom events
// (bubble pops and escapes, committed strokes, surface clears, game
// transitions) into a [Donburi] world as typed events. Subscribe to
// [EngineEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	shell := playroom.NewShell(playroom.ShellConfig{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
