package playroom

import "github.com/hajimehoshi/ebiten/v2"

// syntheticPointerEvent is one injected pointer sample in screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// PointerRouter turns the primary pointer (the mouse, or the first active
// touch) into element-relative events for one area of the screen. Presses
// inside the area start an interaction; leaving the area while pressed ends it
// with PointerLeave. Coordinates are forwarded relative to Area's top-left
// corner and are not otherwise scaled.
type PointerRouter struct {
	// Area is the element on screen. A zero-width area covers the whole
	// screen.
	Area Rect
	// Target receives down/move/up/leave. Optional.
	Target PointerTarget
	// OnTap is called on every press inside Area. Optional.
	OnTap func(x, y float64)

	down         bool // an interaction with Target is in progress
	held         bool // the button is down, whether or not it started inside
	lastX, lastY float64
	touchIDs     []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
}

// NewPointerRouter creates a router for the given screen area.
func NewPointerRouter(area Rect) *PointerRouter {
	return &PointerRouter{Area: area}
}

// Down reports whether an interaction is in progress.
func (r *PointerRouter) Down() bool {
	return r.down
}

// Reset forgets the current interaction without notifying the target. A
// button still held stays held; only a fresh press starts a new interaction.
func (r *PointerRouter) Reset() {
	r.down = false
}

// InjectPress queues a press at screen coordinates. Injected events are
// consumed one per Process call, ahead of real input.
func (r *PointerRouter) InjectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a move with the button held down.
func (r *PointerRouter) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a release at screen coordinates.
func (r *PointerRouter) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release. Consumes two frames.
func (r *PointerRouter) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues press, frames-2 interpolated moves and release.
// Minimum frames is 2.
func (r *PointerRouter) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (r *PointerRouter) Pending() int {
	return len(r.injectQueue)
}

// Process consumes one injected event if any are queued, and otherwise polls
// ebiten for the mouse or touch state. Call once per Update.
func (r *PointerRouter) Process() {
	if len(r.injectQueue) > 0 {
		evt := r.injectQueue[0]
		copy(r.injectQueue, r.injectQueue[1:])
		r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
		r.Feed(evt.screenX, evt.screenY, evt.pressed)
		return
	}

	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(r.touchIDs[0])
		r.Feed(float64(tx), float64(ty), true)
		return
	}
	mx, my := ebiten.CursorPosition()
	r.Feed(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Feed runs the pointer state machine for one sample in screen coordinates.
// Only a fresh press inside Area starts an interaction: a press outside, or a
// held pointer that left and came back, is ignored until the next release.
func (r *PointerRouter) Feed(sx, sy float64, pressed bool) {
	inside := r.Area.Width <= 0 || r.Area.Contains(sx, sy)
	lx, ly := sx-r.Area.X, sy-r.Area.Y

	switch {
	case pressed && !r.held:
		r.held = true
		if !inside {
			return
		}
		r.down = true
		r.lastX, r.lastY = lx, ly
		if r.Target != nil {
			r.Target.PointerDown(lx, ly)
		}
		if r.OnTap != nil {
			r.OnTap(lx, ly)
		}
	case pressed && r.down:
		if !inside {
			r.down = false
			if r.Target != nil {
				r.Target.PointerLeave()
			}
			return
		}
		if lx == r.lastX && ly == r.lastY {
			return
		}
		r.lastX, r.lastY = lx, ly
		if r.Target != nil {
			r.Target.PointerMove(lx, ly)
		}
	case !pressed:
		r.held = false
		if !r.down {
			return
		}
		r.down = false
		if r.Target != nil {
			r.Target.PointerUp(lx, ly)
		}
	}
}
