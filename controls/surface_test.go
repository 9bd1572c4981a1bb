package controls

import (
	"errors"
	"testing"
	"time"

	"github.com/yhkl-dev/mpvctl/domain"
	"github.com/yhkl-dev/mpvctl/player"
)

func TestAttachMirrorsInitialState(t *testing.T) {
	opts := DefaultOptions()
	opts.InitialVolume = 3
	opts.InitialLoop = true
	f := newFixture(100, opts)

	if f.engine.Vol != 0.3 || !f.engine.Looping || f.engine.IsMuted || f.engine.Rate != 1 {
		t.Errorf("Unexpected engine state after attach: %+v", f.engine)
	}
	state := f.surface.Snapshot()
	if state.LoopIcon != domain.IconLoopOn || state.VolumeLevel != 3 || state.Speed != 1 {
		t.Errorf("Unexpected surface state after attach: %+v", state)
	}
	if state.SpeedIndicator.Visible() || state.VolumeIndicator.Visible() || state.LoopIndicator.Visible() {
		t.Errorf("Expected indicators hidden after attach")
	}
}

func TestAttachIsIdempotent(t *testing.T) {
	f := newFixture(100, DefaultOptions())
	f.surface.Attach()

	f.engine.Pos = 12
	calls := 0
	f.surface.Subscribe(player.PositionChanged, func(player.Notification) { calls++ })
	f.surface.Dispatch(player.Notification{Kind: player.PositionChanged})
	if calls != 1 {
		t.Errorf("Expected one extra handler call, got %d", calls)
	}
	if len(f.surface.subscriptions[player.PositionChanged]) != 2 {
		t.Errorf("Expected attach to register position handlers once")
	}
}

func TestDispatchOrderAndChange(t *testing.T) {
	f := newFixture(100, DefaultOptions())

	var order []string
	f.surface.Subscribe(player.PlaybackEnded, func(player.Notification) { order = append(order, "first") })
	f.surface.Subscribe(player.PlaybackEnded, func(player.Notification) { order = append(order, "second") })

	before := f.changes
	f.surface.Dispatch(player.Notification{Kind: player.PlaybackEnded})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected handlers in registration order, got %v", order)
	}
	if f.changes != before+1 {
		t.Errorf("Expected one change notification per dispatch, got %d", f.changes-before)
	}
}

func TestDetachStopsNotifications(t *testing.T) {
	f := newFixture(100, DefaultOptions())
	f.surface.Detach()

	f.engine.Pos = 42
	before := f.changes
	f.surface.Dispatch(player.Notification{Kind: player.PositionChanged})
	if f.surface.Snapshot().Timeline.Value == 42 {
		t.Errorf("Expected detached surface to ignore notifications")
	}
	if f.changes != before {
		t.Errorf("Expected no change notification without subscribers")
	}
}

func TestIndicatorTimersReportChanges(t *testing.T) {
	f := newFixture(100, DefaultOptions())

	f.surface.CycleSpeed()
	before := f.changes
	f.clock.Advance(500 * time.Millisecond)
	if f.changes != before+2 {
		t.Errorf("Expected fade and hide to report changes, got %d", f.changes-before)
	}
	if f.surface.Snapshot().SpeedIndicator.Visible() {
		t.Errorf("Expected speed indicator hidden after 500ms")
	}
}

func TestIndicatorsAreIndependent(t *testing.T) {
	f := newFixture(100, DefaultOptions())

	f.surface.CycleSpeed()
	f.clock.Advance(400 * time.Millisecond)
	f.surface.ToggleLoop()
	f.clock.Advance(100 * time.Millisecond)

	state := f.surface.Snapshot()
	if state.SpeedIndicator.Visible() {
		t.Errorf("Expected speed indicator hidden")
	}
	if state.LoopIndicator.Phase != domain.PhaseVisible {
		t.Errorf("Expected loop indicator still visible, got %v", state.LoopIndicator.Phase)
	}
}

func TestEngineErrorsAreSwallowed(t *testing.T) {
	f := newFixture(100, DefaultOptions())
	f.engine.Err = errors.New("denied")

	f.surface.RequestFullscreen()
	f.surface.TogglePlayback()
	f.surface.VolumeDown()

	if f.engine.FullscreenCalls != 1 || f.engine.PlayCalls != 1 {
		t.Errorf("Expected calls to reach the engine despite errors")
	}
	if f.surface.Snapshot().PlayIcon != domain.IconPause {
		t.Errorf("Expected the icon to follow the toggle")
	}
}

func TestEngineNotificationStream(t *testing.T) {
	f := newFixture(0, DefaultOptions())

	f.engine.Dur = 50
	f.engine.Pos = 5
	f.engine.Emit(player.MetadataReady)
	f.engine.Emit(player.PositionChanged)

	for i := 0; i < 2; i++ {
		f.surface.Dispatch(<-f.engine.Notifications())
	}
	tl := f.surface.Snapshot().Timeline
	if tl.Max != 50 || tl.Value != 5 || tl.Fraction() != 0.1 {
		t.Errorf("Unexpected timeline %+v", tl)
	}
}
