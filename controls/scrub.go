package controls

import (
	"math"

	"github.com/yhkl-dev/mpvctl/player"
)

// ScrubState is the scrub interaction state
type ScrubState int

const (
	ScrubIdle ScrubState = iota
	Scrubbing
)

func (s ScrubState) String() string {
	if s == Scrubbing {
		return "scrubbing"
	}
	return "idle"
}

// Bounds reports the timeline's on-screen geometry: the left edge (already
// including any scroll offset) and the usable width.
type Bounds interface {
	Rect() (left, width float64)
}

// PointerListener receives pointer events from the whole viewport
type PointerListener interface {
	PointerMove(x float64)
	PointerUp(x float64)
}

// Viewport delivers pointer events from anywhere on screen, not only from
// the timeline. Subscribe returns the function that removes the listener.
type Viewport interface {
	Subscribe(l PointerListener) (unsubscribe func())
}

// PositionFromPointer maps a pointer x coordinate to a media position. The
// fraction is clamped because a drag may leave the timeline; a zero or
// negative width maps to the start.
func PositionFromPointer(pointerX, left, width, duration float64) float64 {
	if !(width > 0) || math.IsInf(width, 0) {
		return 0
	}
	fraction := Clamp((pointerX-left)/width, 0, 1)
	return fraction * duration
}

// Scrubber turns click and press-drag-release on the timeline into seeks.
//
// idle -> scrubbing on pointer-down: seek to the pointer, then listen to
// viewport-wide moves. scrubbing -> idle on pointer-up anywhere: stop
// listening. Moves outside a session are ignored.
type Scrubber struct {
	engine   player.Engine
	viewport Viewport
	bounds   Bounds
	onChange func()

	state       ScrubState
	unsubscribe func()
}

func newScrubber(engine player.Engine, viewport Viewport, bounds Bounds) *Scrubber {
	return &Scrubber{
		engine:   engine,
		viewport: viewport,
		bounds:   bounds,
	}
}

// State returns the current interaction state
func (s *Scrubber) State() ScrubState {
	return s.state
}

// PointerDown starts a session. A second press during a session restarts it.
func (s *Scrubber) PointerDown(x float64) {
	if s.state == Scrubbing {
		s.exit()
	}
	s.state = Scrubbing
	s.seek(x)
	s.unsubscribe = s.viewport.Subscribe(s)
}

// PointerMove follows the drag, even outside the timeline
func (s *Scrubber) PointerMove(x float64) {
	if s.state != Scrubbing {
		return
	}
	s.seek(x)
}

// PointerUp ends the session
func (s *Scrubber) PointerUp(float64) {
	if s.state != Scrubbing {
		return
	}
	s.exit()
}

// Cancel ends a session without a pointer-up
func (s *Scrubber) Cancel() {
	if s.state == Scrubbing {
		s.exit()
	}
}

func (s *Scrubber) exit() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.state = ScrubIdle
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Scrubber) seek(x float64) {
	duration := s.engine.Duration()
	// Without a known duration the pointer has nothing to map onto.
	if !(duration > 0) || math.IsInf(duration, 0) {
		return
	}
	left, width := s.bounds.Rect()
	call("seek", s.engine.Seek(PositionFromPointer(x, left, width, duration)))
}
