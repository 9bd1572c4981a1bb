package controls

import (
	"time"

	"github.com/yhkl-dev/mpvctl/domain"
)

// Default transient indicator timings
const (
	DefaultFadeAfter = 300 * time.Millisecond
	DefaultHideAfter = 500 * time.Millisecond
)

// Indicator flashes a value, fades it and hides it.
//
// Retriggering before the hide restarts the cycle: the pending pair of
// timers is stopped, and a generation counter drops callbacks that were
// already queued when Stop came too late.
type Indicator struct {
	sched     Scheduler
	fadeAfter time.Duration
	hideAfter time.Duration
	onChange  func()

	view       domain.IndicatorView
	generation uint64
	fade       Timer
	hide       Timer
}

// NewIndicator creates a hidden indicator
func NewIndicator(sched Scheduler, fadeAfter, hideAfter time.Duration) *Indicator {
	return &Indicator{
		sched:     sched,
		fadeAfter: fadeAfter,
		hideAfter: hideAfter,
	}
}

// Flash shows text immediately and schedules the fade and the hide
func (in *Indicator) Flash(text string) {
	in.cancel()
	in.generation++
	gen := in.generation

	in.view = domain.IndicatorView{Phase: domain.PhaseVisible, Text: text}
	in.fade = in.sched.AfterFunc(in.fadeAfter, func() {
		in.transition(gen, domain.PhaseFading)
	})
	in.hide = in.sched.AfterFunc(in.hideAfter, func() {
		in.transition(gen, domain.PhaseHidden)
	})
}

// View returns what the indicator currently shows
func (in *Indicator) View() domain.IndicatorView {
	return in.view
}

// Reset hides the indicator and drops pending timers
func (in *Indicator) Reset() {
	in.cancel()
	in.generation++
	in.view = domain.IndicatorView{}
}

func (in *Indicator) transition(gen uint64, phase domain.IndicatorPhase) {
	if gen != in.generation {
		return
	}
	// A late fade must never resurrect a hidden indicator.
	if phase == domain.PhaseFading && in.view.Phase != domain.PhaseVisible {
		return
	}
	in.view.Phase = phase
	if phase == domain.PhaseHidden {
		in.fade, in.hide = nil, nil
	}
	if in.onChange != nil {
		in.onChange()
	}
}

func (in *Indicator) cancel() {
	if in.fade != nil {
		in.fade.Stop()
		in.fade = nil
	}
	if in.hide != nil {
		in.hide.Stop()
		in.hide = nil
	}
}
