package controls

import (
	"testing"
	"time"

	"github.com/yhkl-dev/mpvctl/domain"
)

func TestIndicatorLifecycle(t *testing.T) {
	clock := &fakeClock{}
	in := NewIndicator(clock, DefaultFadeAfter, DefaultHideAfter)

	if in.View().Visible() {
		t.Fatalf("Expected a new indicator to be hidden")
	}

	in.Flash("2x")
	if got := in.View(); got.Phase != domain.PhaseVisible || got.Text != "2x" {
		t.Fatalf("Expected visible 2x, got %+v", got)
	}

	clock.Advance(299 * time.Millisecond)
	if in.View().Phase != domain.PhaseVisible {
		t.Errorf("Expected still visible at 299ms, got %v", in.View().Phase)
	}

	clock.Advance(time.Millisecond)
	if in.View().Phase != domain.PhaseFading {
		t.Errorf("Expected fading at 300ms, got %v", in.View().Phase)
	}

	clock.Advance(200 * time.Millisecond)
	if in.View().Phase != domain.PhaseHidden {
		t.Errorf("Expected hidden at 500ms, got %v", in.View().Phase)
	}
	if clock.pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", clock.pending())
	}
}

func TestIndicatorRetriggerRestartsCycle(t *testing.T) {
	clock := &fakeClock{}
	in := NewIndicator(clock, DefaultFadeAfter, DefaultHideAfter)

	in.Flash("2x")
	clock.Advance(200 * time.Millisecond)
	in.Flash("4x")

	if clock.pending() != 2 {
		t.Errorf("Expected exactly one fade and one hide pending, got %d", clock.pending())
	}

	// The first flash would have hidden at 500ms.
	clock.Advance(300 * time.Millisecond)
	if got := in.View(); got.Phase != domain.PhaseFading || got.Text != "4x" {
		t.Errorf("Expected the second flash to be fading at +300ms, got %+v", got)
	}

	clock.Advance(200 * time.Millisecond)
	if in.View().Phase != domain.PhaseHidden {
		t.Errorf("Expected hidden 500ms after the second flash, got %v", in.View().Phase)
	}
}

func TestIndicatorIgnoresStaleCallbacks(t *testing.T) {
	clock := &fakeClock{leaky: true}
	in := NewIndicator(clock, DefaultFadeAfter, DefaultHideAfter)

	var phases []domain.IndicatorPhase
	in.onChange = func() { phases = append(phases, in.View().Phase) }

	in.Flash("Volume: 90")
	clock.Advance(250 * time.Millisecond)
	in.Flash("Volume: 80")

	// The stale fade fires at 300ms and the stale hide at 500ms.
	clock.Advance(100 * time.Millisecond)
	if in.View().Phase != domain.PhaseVisible {
		t.Errorf("Stale fade changed the indicator: %v", in.View().Phase)
	}
	clock.Advance(200 * time.Millisecond)
	if in.View().Phase != domain.PhaseFading {
		t.Errorf("Expected fading at 550ms, got %v", in.View().Phase)
	}

	clock.Advance(time.Second)
	if in.View().Phase != domain.PhaseHidden {
		t.Errorf("Expected hidden in the end, got %v", in.View().Phase)
	}

	want := []domain.IndicatorPhase{domain.PhaseFading, domain.PhaseHidden}
	if len(phases) != len(want) {
		t.Fatalf("Expected transitions %v, got %v", want, phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("Transition %d: expected %v, got %v", i, want[i], phases[i])
		}
	}
}

func TestIndicatorReset(t *testing.T) {
	clock := &fakeClock{}
	in := NewIndicator(clock, DefaultFadeAfter, DefaultHideAfter)

	in.Flash("Loop enabled")
	in.Reset()
	if in.View().Visible() {
		t.Errorf("Expected reset to hide the indicator")
	}
	clock.Advance(time.Second)
	if in.View().Visible() {
		t.Errorf("Expected pending timers not to show the indicator again")
	}
}
