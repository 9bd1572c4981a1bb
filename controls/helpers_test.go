package controls

import (
	"sort"
	"time"

	"github.com/yhkl-dev/mpvctl/player/playertest"
)

// fakeClock is a virtual-time Scheduler. With leaky set, Stop reports success
// but the callback still fires, as when a real timer has already queued its
// callback onto the UI goroutine.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
	leaky  bool
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{clock: c, at: c.now + d, seq: len(c.timers), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	if !t.clock.leaky {
		t.stopped = true
	}
	return true
}

// Advance runs due callbacks in time order
func (c *fakeClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		due := make([]*fakeTimer, 0)
		for _, t := range c.timers {
			if !t.fired && !t.stopped && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at == due[j].at {
				return due[i].seq < due[j].seq
			}
			return due[i].at < due[j].at
		})
		next := due[0]
		c.now = next.at
		next.fired = true
		next.f()
	}
	c.now = target
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// fakeViewport records listener subscriptions
type fakeViewport struct {
	listeners map[int]PointerListener
	next      int
	total     int
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{listeners: make(map[int]PointerListener)}
}

func (v *fakeViewport) Subscribe(l PointerListener) func() {
	id := v.next
	v.next++
	v.total++
	v.listeners[id] = l
	return func() { delete(v.listeners, id) }
}

func (v *fakeViewport) move(x float64) {
	for _, l := range v.snapshot() {
		l.PointerMove(x)
	}
}

func (v *fakeViewport) up(x float64) {
	for _, l := range v.snapshot() {
		l.PointerUp(x)
	}
}

func (v *fakeViewport) snapshot() []PointerListener {
	out := make([]PointerListener, 0, len(v.listeners))
	for _, l := range v.listeners {
		out = append(out, l)
	}
	return out
}

type staticBounds struct {
	left, width float64
}

func (b staticBounds) Rect() (float64, float64) {
	return b.left, b.width
}

type fixture struct {
	engine   *playertest.Engine
	clock    *fakeClock
	viewport *fakeViewport
	surface  *Surface
	changes  int
}

func newFixture(duration float64, opts Options) *fixture {
	f := &fixture{
		engine:   playertest.New(duration),
		clock:    &fakeClock{},
		viewport: newFakeViewport(),
	}
	f.surface = New(f.engine, f.clock, f.viewport, staticBounds{left: 10, width: 100}, opts)
	f.surface.OnChange = func() { f.changes++ }
	f.surface.Attach()
	return f
}
