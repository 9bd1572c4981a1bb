package player

// Engine is the media playback primitive the control surface drives. It is
// the authoritative owner of position, duration, paused/ended, volume, rate,
// loop and mute; the control layer only reads, mutates and listens.
type Engine interface {
	// Play starts or resumes playback
	Play() error

	// Pause pauses playback
	Pause() error

	// Position returns the current playback position in seconds
	Position() float64

	// Seek moves the playback position to seconds from the start
	Seek(seconds float64) error

	// Duration returns the media length in seconds, 0 while unknown
	Duration() float64

	Paused() bool
	Ended() bool

	// Volume returns the output gain in [0,1]
	Volume() float64
	SetVolume(v float64) error

	PlaybackRate() float64
	SetPlaybackRate(rate float64) error

	Loop() bool
	SetLoop(loop bool) error

	Muted() bool
	SetMuted(muted bool) error

	// RequestFullscreen asks the engine to go fullscreen. Denial is silent.
	RequestFullscreen() error

	// Notifications returns the engine's event stream
	Notifications() <-chan Notification
}

// NativeControls is implemented by engines that ship their own controls.
// They stay usable until the custom surface has activated.
type NativeControls interface {
	HideNativeControls() error
}

// NotificationKind identifies an engine event
type NotificationKind int

const (
	MetadataReady NotificationKind = iota
	NowPlaying
	BufferingStart
	BufferingReady
	PositionChanged
	PlaybackEnded
)

var notificationNames = [...]string{
	MetadataReady:   "metadata-ready",
	NowPlaying:      "now-playing",
	BufferingStart:  "buffering-start",
	BufferingReady:  "buffering-ready",
	PositionChanged: "position-changed",
	PlaybackEnded:   "playback-ended",
}

func (k NotificationKind) String() string {
	if k < 0 || int(k) >= len(notificationNames) {
		return "unknown"
	}
	return notificationNames[k]
}

// Notification is a single engine event. Handlers read the values they need
// from the Engine itself, which stays authoritative.
type Notification struct {
	Kind NotificationKind
}
