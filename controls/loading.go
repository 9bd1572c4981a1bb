package controls

import "github.com/yhkl-dev/mpvctl/player"

// LoadingReflector puts the timeline into its loading state while the engine
// buffers. It is level-triggered: repeated notifications change nothing.
type LoadingReflector struct {
	timeline *TimelineSync
}

func newLoadingReflector(timeline *TimelineSync) *LoadingReflector {
	return &LoadingReflector{timeline: timeline}
}

// Loading reports whether the loading state is applied
func (l *LoadingReflector) Loading() bool {
	return l.timeline.state.Loading
}

func (l *LoadingReflector) handleBufferingStart(player.Notification) {
	l.timeline.setLoading(true)
}

func (l *LoadingReflector) handleBufferingReady(player.Notification) {
	l.timeline.setLoading(false)
}
