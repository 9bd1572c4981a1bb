package domain

import "math"

// PlaybackIcon is the glyph shown on the play/pause control. It indicates
// what a click will do, not what the media is doing.
type PlaybackIcon int

const (
	IconPlay PlaybackIcon = iota
	IconPause
)

func (i PlaybackIcon) String() string {
	if i == IconPause {
		return "pause"
	}
	return "play"
}

// MuteIcon mirrors the engine's muted flag.
type MuteIcon int

const (
	IconSoundOn MuteIcon = iota
	IconSoundOff
)

// LoopIcon mirrors the engine's loop flag.
type LoopIcon int

const (
	IconLoopOff LoopIcon = iota
	IconLoopOn
)

// IndicatorPhase is the display state of a transient indicator
type IndicatorPhase int

const (
	PhaseHidden IndicatorPhase = iota
	PhaseVisible
	PhaseFading
)

func (p IndicatorPhase) String() string {
	switch p {
	case PhaseVisible:
		return "visible"
	case PhaseFading:
		return "fading"
	default:
		return "hidden"
	}
}

// Speed limits for the cyclic playback rate
const (
	MaxSpeed = 8.0
	MinSpeed = 0.5
)

// SpeedState is the playback-rate multiplier cycling 1,2,4,8,0.5,1,...
type SpeedState struct {
	Rate float64
}

// NewSpeedState starts at normal speed
func NewSpeedState() SpeedState {
	return SpeedState{Rate: 1}
}

// Next returns the state after one activation
func (s SpeedState) Next() SpeedState {
	if s.Rate < MaxSpeed {
		return SpeedState{Rate: s.Rate * 2}
	}
	return SpeedState{Rate: MinSpeed}
}

// MaxVolumeLevel is the top of the integer volume scale
const MaxVolumeLevel = 10

// VolumeLevel is an integer step counter in [0, MaxVolumeLevel]. Keeping the
// level integral avoids accumulating float error from repeated 0.1 steps.
type VolumeLevel struct {
	Level int
}

// NewVolumeLevel saturates level into range
func NewVolumeLevel(level int) VolumeLevel {
	return VolumeLevel{Level: min(max(level, 0), MaxVolumeLevel)}
}

// Up raises the level by one step, saturating at the top
func (v VolumeLevel) Up() VolumeLevel {
	return NewVolumeLevel(v.Level + 1)
}

// Down lowers the level by one step, saturating at zero
func (v VolumeLevel) Down() VolumeLevel {
	return NewVolumeLevel(v.Level - 1)
}

// Gain is the engine volume in [0,1]
func (v VolumeLevel) Gain() float64 {
	return float64(v.Level) / MaxVolumeLevel
}

// Percent is the value shown to the user
func (v VolumeLevel) Percent() int {
	return v.Level * 10
}

// ToggleState is a user-flipped boolean mirrored into the engine
type ToggleState struct {
	On bool
}

// Flip returns the opposite state
func (t ToggleState) Flip() ToggleState {
	return ToggleState{On: !t.On}
}

// Timeline is the range-input model: Min is always 0, Max is the media
// duration once known, Value mirrors the playback position.
type Timeline struct {
	Min     float64
	Max     float64
	Value   float64
	MaxSet  bool
	Loading bool
}

// Fraction returns Value as a share of Max, 0 while Max is unknown
func (t Timeline) Fraction() float64 {
	if !t.MaxSet || t.Max <= t.Min || math.IsNaN(t.Value) {
		return 0
	}
	f := (t.Value - t.Min) / (t.Max - t.Min)
	return min(max(f, 0), 1)
}

// IndicatorView is what a transient indicator currently shows
type IndicatorView struct {
	Phase IndicatorPhase
	Text  string
}

// Visible reports whether anything should be drawn
func (v IndicatorView) Visible() bool {
	return v.Phase != PhaseHidden
}

// SurfaceState is a render snapshot of the whole control surface
type SurfaceState struct {
	PlayIcon       PlaybackIcon
	OverlayVisible bool
	MuteIcon       MuteIcon
	LoopIcon       LoopIcon
	Timeline       Timeline
	Scrubbing      bool
	Speed          float64
	VolumeLevel    int

	SpeedIndicator  IndicatorView
	VolumeIndicator IndicatorView
	LoopIndicator   IndicatorView
}
