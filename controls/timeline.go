package controls

import (
	"math"

	"github.com/yhkl-dev/mpvctl/domain"
	"github.com/yhkl-dev/mpvctl/player"
)

// TimelineSync keeps the timeline range and value in step with the engine.
// Position notifications are the only engine-to-UI path for the value.
type TimelineSync struct {
	engine player.Engine
	state  domain.Timeline
}

func newTimelineSync(engine player.Engine) *TimelineSync {
	return &TimelineSync{engine: engine}
}

// State returns the timeline model
func (t *TimelineSync) State() domain.Timeline {
	return t.state
}

func (t *TimelineSync) handleMetadataReady(player.Notification) {
	t.setMax(t.engine.Duration())
}

// handleNowPlaying covers engines that never report metadata. Duration is
// fixed per asset, so an existing maximum is left alone.
func (t *TimelineSync) handleNowPlaying(player.Notification) {
	if !t.state.MaxSet {
		t.setMax(t.engine.Duration())
	}
}

func (t *TimelineSync) handlePositionChanged(player.Notification) {
	pos := t.engine.Position()
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return
	}
	t.state.Value = pos
}

func (t *TimelineSync) setMax(duration float64) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return
	}
	t.state.Max = duration
	t.state.MaxSet = true
}

func (t *TimelineSync) setLoading(loading bool) {
	t.state.Loading = loading
}
