// Package playertest provides an in-memory player.Engine for tests.
package playertest

import (
	"github.com/yhkl-dev/mpvctl/player"
)

// Engine is a scriptable fake. Fields are exported so tests can arrange
// state directly; calls are counted so tests can assert on them.
type Engine struct {
	Pos      float64
	Dur      float64
	IsPaused bool
	IsEnded  bool
	Vol      float64
	Rate     float64
	Looping  bool
	IsMuted  bool

	// Err, when set, is returned by every mutating call after it is applied
	Err error

	PlayCalls       int
	PauseCalls      int
	FullscreenCalls int
	Seeks           []float64

	events chan player.Notification
}

var _ player.Engine = (*Engine)(nil)

// New returns a paused engine holding media of the given duration
func New(duration float64) *Engine {
	return &Engine{
		Dur:      duration,
		IsPaused: true,
		Vol:      1,
		Rate:     1,
		events:   make(chan player.Notification, 32),
	}
}

func (e *Engine) Play() error {
	e.PlayCalls++
	if e.IsEnded {
		e.Pos = 0
		e.IsEnded = false
	}
	e.IsPaused = false
	return e.Err
}

func (e *Engine) Pause() error {
	e.PauseCalls++
	e.IsPaused = true
	return e.Err
}

func (e *Engine) Position() float64 { return e.Pos }

// Seek clamps to [0, duration] the way a media element does
func (e *Engine) Seek(seconds float64) error {
	e.Seeks = append(e.Seeks, seconds)
	if seconds < 0 {
		seconds = 0
	}
	if e.Dur > 0 && seconds > e.Dur {
		seconds = e.Dur
	}
	e.Pos = seconds
	return e.Err
}

func (e *Engine) Duration() float64 { return e.Dur }
func (e *Engine) Paused() bool      { return e.IsPaused }
func (e *Engine) Ended() bool       { return e.IsEnded }
func (e *Engine) Volume() float64   { return e.Vol }

func (e *Engine) SetVolume(v float64) error {
	e.Vol = v
	return e.Err
}

func (e *Engine) PlaybackRate() float64 { return e.Rate }

func (e *Engine) SetPlaybackRate(rate float64) error {
	e.Rate = rate
	return e.Err
}

func (e *Engine) Loop() bool { return e.Looping }

func (e *Engine) SetLoop(loop bool) error {
	e.Looping = loop
	return e.Err
}

func (e *Engine) Muted() bool { return e.IsMuted }

func (e *Engine) SetMuted(muted bool) error {
	e.IsMuted = muted
	return e.Err
}

func (e *Engine) RequestFullscreen() error {
	e.FullscreenCalls++
	return e.Err
}

func (e *Engine) Notifications() <-chan player.Notification {
	return e.events
}

// Emit queues a notification on the event stream
func (e *Engine) Emit(kind player.NotificationKind) {
	e.events <- player.Notification{Kind: kind}
}

// Finish moves the engine to the ended state at the end of the media
func (e *Engine) Finish() {
	e.Pos = e.Dur
	e.IsEnded = true
	e.IsPaused = true
}

// CloseNotifications ends the event stream, as a shut down engine does
func (e *Engine) CloseNotifications() {
	close(e.events)
}
