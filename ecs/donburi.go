package ecs

import (
	"github.com/phanxgames/playroom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for playroom engine events.
var EngineEventType = events.NewEventType[playroom.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EngineEventType and delivered by events.ProcessAllEvents or
// EngineEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) playroom.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event playroom.Event) {
	EngineEventType.Publish(s.world, event)
}

// ScoreKeeper is a ready-made subscriber that tallies bubble events per world.
type ScoreKeeper struct {
	Popped  int
	Escaped int
	Strokes int
}

// Subscribe registers k on world.
func (k *ScoreKeeper) Subscribe(world donburi.World) {
	EngineEventType.Subscribe(world, k.handle)
}

func (k *ScoreKeeper) handle(_ donburi.World, e playroom.Event) {
	switch e.Type {
	case playroom.EventBubblePopped:
		k.Popped++
	case playroom.EventBubbleEscaped:
		k.Escaped++
	case playroom.EventStrokeCommitted:
		k.Strokes++
	}
}
