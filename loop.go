package playroom

import (
	"container/heap"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Loop is the cooperative event loop every subsystem schedules against. It
// owns a monotonic clock that only moves when Advance (or Update) is called,
// and fires due callbacks in due-time order, FIFO for equal due times.
//
// A Loop is not safe for concurrent use. It is meant to be driven from the
// ebiten game loop, which makes every callback a discrete, non-overlapping
// step.
type Loop struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// Timer is a handle to a one-shot or periodic callback scheduled on a Loop.
type Timer struct {
	loop   *Loop
	due    time.Duration
	period time.Duration
	seq    uint64
	fn     func()
	index  int // position in the loop queue, -1 when not scheduled
}

// NewLoop creates a Loop whose clock starts at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's monotonic time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once, d after the current loop time. A negative
// delay is treated as zero; the callback still runs on the next Advance, never
// synchronously.
func (l *Loop) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return l.schedule(d, 0, fn)
}

// Every schedules fn to run every period, first after one full period.
// Periods below one millisecond are raised to one millisecond.
func (l *Loop) Every(period time.Duration, fn func()) *Timer {
	if period < time.Millisecond {
		period = time.Millisecond
	}
	return l.schedule(period, period, fn)
}

func (l *Loop) schedule(delay, period time.Duration, fn func()) *Timer {
	l.seq++
	t := &Timer{
		loop:   l,
		due:    l.now + delay,
		period: period,
		seq:    l.seq,
		fn:     fn,
	}
	heap.Push(&l.queue, t)
	return t
}

// Pending returns the number of scheduled timers.
func (l *Loop) Pending() int {
	return len(l.queue)
}

// Advance moves the clock forward by d, firing every callback that becomes
// due along the way. Periodic timers fire once per elapsed period.
func (l *Loop) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := l.now + d
	for len(l.queue) > 0 && l.queue[0].due <= target {
		t := heap.Pop(&l.queue).(*Timer)
		l.now = t.due
		if t.period > 0 {
			// Re-arm before running so the callback may stop its own timer.
			l.seq++
			t.due += t.period
			t.seq = l.seq
			heap.Push(&l.queue, t)
		}
		t.fn()
	}
	l.now = target
}

// Update advances the loop by one ebiten tick (1/TPS seconds).
func (l *Loop) Update() {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	l.Advance(time.Second / time.Duration(tps))
}

// Stop cancels the timer. It reports whether the timer was still scheduled.
// Stopping an already fired or stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.loop.queue, t.index)
	return true
}

// Active reports whether the timer is still scheduled.
func (t *Timer) Active() bool {
	return t != nil && t.index >= 0
}

// TimerGroup collects the timers of one owning context so they can be
// cancelled together when that context is torn down.
type TimerGroup struct {
	loop   *Loop
	timers []*Timer
}

// NewTimerGroup creates an empty group scheduling on l.
func NewTimerGroup(l *Loop) *TimerGroup {
	return &TimerGroup{loop: l}
}

// After schedules a one-shot timer owned by the group.
func (g *TimerGroup) After(d time.Duration, fn func()) *Timer {
	g.prune()
	t := g.loop.After(d, fn)
	g.timers = append(g.timers, t)
	return t
}

// Every schedules a periodic timer owned by the group.
func (g *TimerGroup) Every(period time.Duration, fn func()) *Timer {
	g.prune()
	t := g.loop.Every(period, fn)
	g.timers = append(g.timers, t)
	return t
}

// Pending returns how many of the group's timers are still scheduled.
func (g *TimerGroup) Pending() int {
	n := 0
	for _, t := range g.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

// Stop cancels every pending timer of the group and returns how many were
// cancelled.
func (g *TimerGroup) Stop() int {
	n := 0
	for _, t := range g.timers {
		if t.Stop() {
			n++
		}
	}
	g.timers = g.timers[:0]
	return n
}

// prune drops fired timers so long-lived groups do not grow unbounded.
func (g *TimerGroup) prune() {
	live := g.timers[:0]
	for _, t := range g.timers {
		if t.Active() {
			live = append(live, t)
		}
	}
	clear(g.timers[len(live):])
	g.timers = live
}

// timerQueue is a min-heap of timers ordered by due time, then schedule order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
