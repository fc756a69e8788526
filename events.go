package playroom

import "time"

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventBubblePopped    EventType = iota // a bubble was popped by the player
	EventBubbleEscaped                    // a bubble rose past the top edge
	EventStrokeCommitted                  // a stroke ended with at least one painted segment
	EventSurfaceCleared                   // the drawing surface was wiped
	EventGameEntered                      // the shell entered a mini-game
	EventGameLeft                         // the shell left a mini-game
)

var eventTypeNames = [...]string{
	EventBubblePopped:    "bubble-popped",
	EventBubbleEscaped:   "bubble-escaped",
	EventStrokeCommitted: "stroke-committed",
	EventSurfaceCleared:  "surface-cleared",
	EventGameEntered:     "game-entered",
	EventGameLeft:        "game-left",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// EventSink is the interface for optional ECS integration. When set on a
// subsystem, its events are forwarded to the sink.
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries one engine event to an EventSink. Fields that do not apply to
// the event type are zero.
type Event struct {
	Type   EventType
	Time   time.Duration // loop time of the event, when known
	Game   Game
	Bubble BubbleID
	X, Y   float64
	Score  int
	Stroke int // number of points in a committed stroke
}

// EventFunc adapts a plain function to EventSink.
type EventFunc func(Event)

// EmitEvent calls f(event).
func (f EventFunc) EmitEvent(event Event) { f(event) }

func emit(sink EventSink, event Event) {
	if sink != nil {
		sink.EmitEvent(event)
	}
}
