package controls

import (
	"time"

	"github.com/yhkl-dev/mpvctl/domain"
	"github.com/yhkl-dev/mpvctl/log"
	"github.com/yhkl-dev/mpvctl/player"
	"go.uber.org/multierr"
)

// Options fix the initial control state at load time
type Options struct {
	SeekStep      float64
	InitialVolume int
	InitialLoop   bool
	InitialMute   bool
	FadeAfter     time.Duration
	HideAfter     time.Duration
}

// DefaultOptions returns the stock control state
func DefaultOptions() Options {
	return Options{
		SeekStep:      DefaultSeekStep,
		InitialVolume: domain.MaxVolumeLevel,
		FadeAfter:     DefaultFadeAfter,
		HideAfter:     DefaultHideAfter,
	}
}

// Handler reacts to one engine notification
type Handler func(player.Notification)

// Surface owns every control and routes engine notifications to them. Each
// per-control flag is owned by exactly one control.
type Surface struct {
	// OnChange, when set, is called after any state the UI renders may have
	// changed, including indicator timer transitions.
	OnChange func()

	engine        player.Engine
	subscriptions map[player.NotificationKind][]Handler
	attached      bool

	Playback   *Playback
	Timeline   *TimelineSync
	Loading    *LoadingReflector
	Scrub      *Scrubber
	Speed      *SpeedControl
	Mute       *MuteControl
	Seek       *SeekControl
	Volume     *VolumeControl
	Loop       *LoopControl
	Fullscreen *FullscreenControl
}

// New builds a detached surface. Nothing touches the engine until Attach.
func New(engine player.Engine, sched Scheduler, viewport Viewport, bounds Bounds, opts Options) *Surface {
	s := &Surface{
		engine:        engine,
		subscriptions: make(map[player.NotificationKind][]Handler),
	}

	speedIndicator := NewIndicator(sched, opts.FadeAfter, opts.HideAfter)
	volumeIndicator := NewIndicator(sched, opts.FadeAfter, opts.HideAfter)
	loopIndicator := NewIndicator(sched, opts.FadeAfter, opts.HideAfter)
	for _, in := range []*Indicator{speedIndicator, volumeIndicator, loopIndicator} {
		in.onChange = s.changed
	}

	s.Playback = newPlayback(engine)
	s.Timeline = newTimelineSync(engine)
	s.Loading = newLoadingReflector(s.Timeline)
	s.Scrub = newScrubber(engine, viewport, bounds)
	s.Scrub.onChange = s.changed
	s.Speed = &SpeedControl{engine: engine, state: domain.NewSpeedState(), indicator: speedIndicator}
	s.Volume = &VolumeControl{engine: engine, state: domain.NewVolumeLevel(opts.InitialVolume), indicator: volumeIndicator}
	s.Mute = &MuteControl{engine: engine, state: domain.ToggleState{On: opts.InitialMute}, volume: s.Volume, indicator: volumeIndicator}
	s.Seek = &SeekControl{engine: engine, step: opts.SeekStep}
	s.Loop = &LoopControl{engine: engine, state: domain.ToggleState{On: opts.InitialLoop}, indicator: loopIndicator}
	s.Fullscreen = &FullscreenControl{engine: engine}

	return s
}

// Attach mirrors the initial control state into the engine, subscribes every
// component to its notifications and reflects the engine's playback state.
func (s *Surface) Attach() {
	if s.attached {
		return
	}
	s.attached = true

	err := multierr.Combine(
		s.engine.SetVolume(s.Volume.state.Gain()),
		s.engine.SetMuted(s.Mute.state.On),
		s.engine.SetLoop(s.Loop.state.On),
		s.engine.SetPlaybackRate(s.Speed.state.Rate),
	)
	if err != nil {
		log.Warnf("apply initial state: %v", err)
	}

	s.Subscribe(player.MetadataReady, s.Timeline.handleMetadataReady)
	s.Subscribe(player.NowPlaying, s.Timeline.handleNowPlaying)
	s.Subscribe(player.PositionChanged, s.Timeline.handlePositionChanged)
	s.Subscribe(player.BufferingStart, s.Loading.handleBufferingStart)
	s.Subscribe(player.BufferingReady, s.Loading.handleBufferingReady)
	s.Subscribe(player.PlaybackEnded, s.Playback.handleEnded)

	// The engine may already know its duration and position.
	s.Timeline.handleNowPlaying(player.Notification{Kind: player.NowPlaying})
	s.Timeline.handlePositionChanged(player.Notification{Kind: player.PositionChanged})
	s.Playback.sync()

	log.WithField("volume", s.Volume.Level()).Debug("control surface attached")
	s.changed()
}

// Detach drops every subscription and ends a running scrub session
func (s *Surface) Detach() {
	s.Scrub.Cancel()
	s.subscriptions = make(map[player.NotificationKind][]Handler)
	s.attached = false
}

// Subscribe registers h for notifications of kind, after earlier handlers
func (s *Surface) Subscribe(kind player.NotificationKind, h Handler) {
	s.subscriptions[kind] = append(s.subscriptions[kind], h)
}

// Dispatch delivers n to its subscribers in registration order
func (s *Surface) Dispatch(n player.Notification) {
	handlers := s.subscriptions[n.Kind]
	if len(handlers) == 0 {
		return
	}
	for _, h := range handlers {
		h(n)
	}
	s.changed()
}

func (s *Surface) TogglePlayback() { s.Playback.Toggle(); s.changed() }
func (s *Surface) CycleSpeed()     { s.Speed.Cycle(); s.changed() }
func (s *Surface) ToggleMute()     { s.Mute.Toggle(); s.changed() }
func (s *Surface) Rewind()         { s.Seek.Rewind(); s.changed() }
func (s *Surface) FastForward()    { s.Seek.FastForward(); s.changed() }
func (s *Surface) Restart()        { s.Seek.Restart(); s.changed() }
func (s *Surface) VolumeUp()       { s.Volume.Up(); s.changed() }
func (s *Surface) VolumeDown()     { s.Volume.Down(); s.changed() }
func (s *Surface) ToggleLoop()     { s.Loop.Toggle(); s.changed() }

// RequestFullscreen keeps no state, so nothing needs redrawing
func (s *Surface) RequestFullscreen() { s.Fullscreen.Request() }

// PointerDown starts a scrub session at x
func (s *Surface) PointerDown(x float64) { s.Scrub.PointerDown(x); s.changed() }

// Snapshot returns everything the UI draws
func (s *Surface) Snapshot() domain.SurfaceState {
	return domain.SurfaceState{
		PlayIcon:        s.Playback.Icon(),
		OverlayVisible:  s.Playback.OverlayVisible(),
		MuteIcon:        s.Mute.Icon(),
		LoopIcon:        s.Loop.Icon(),
		Timeline:        s.Timeline.State(),
		Scrubbing:       s.Scrub.State() == Scrubbing,
		Speed:           s.Speed.Rate(),
		VolumeLevel:     s.Volume.Level(),
		SpeedIndicator:  s.Speed.indicator.View(),
		VolumeIndicator: s.Volume.indicator.View(),
		LoopIndicator:   s.Loop.indicator.View(),
	}
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
