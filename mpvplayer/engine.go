package mpvplayer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wildeyedskies/go-mpv/mpv"
	"github.com/yhkl-dev/mpvctl/log"
	"github.com/yhkl-dev/mpvctl/player"
	"go.uber.org/multierr"
)

// Engine implements player.Engine on top of libmpv
type Engine struct {
	instance      *Mpvplayer
	notifications chan player.Notification
	listenerDone  <-chan struct{}
	closeOnce     sync.Once
}

// shutdownTimeout bounds how long Close waits for mpv to acknowledge quit
const shutdownTimeout = 2 * time.Second

var (
	_ player.Engine         = (*Engine)(nil)
	_ player.NativeControls = (*Engine)(nil)
)

// NewEngine creates a libmpv-backed engine. Its event listener runs until
// ctx is cancelled.
func NewEngine(ctx context.Context, opts Options) (*Engine, error) {
	mpvInstance, err := CreateMPVInstance(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MPV instance: %w", err)
	}

	events, done := createEventListener(ctx, mpvInstance)
	p := &Engine{
		instance: &Mpvplayer{
			Mpv:          mpvInstance,
			EventChannel: events,
		},
		notifications: make(chan player.Notification, 64),
		listenerDone:  done,
	}
	go p.translateEvents(ctx)

	return p, nil
}

// Load opens url in the engine
func (p *Engine) Load(url string) error {
	if p.instance == nil || p.instance.Mpv == nil {
		return fmt.Errorf("MPV instance not initialized")
	}
	return p.instance.Load(url)
}

func (p *Engine) Play() error {
	// Restarting ended media mirrors the browser: play() at the end rewinds.
	if p.Ended() {
		if err := p.instance.SeekAbsolute(0); err != nil {
			return err
		}
	}
	return p.instance.SetFlag("pause", false)
}

func (p *Engine) Pause() error {
	return p.instance.SetFlag("pause", true)
}

func (p *Engine) Position() float64 {
	return p.double("time-pos")
}

func (p *Engine) Seek(seconds float64) error {
	return p.instance.SeekAbsolute(seconds)
}

func (p *Engine) Duration() float64 {
	return p.double("duration")
}

func (p *Engine) Paused() bool {
	return p.flag("pause")
}

func (p *Engine) Ended() bool {
	return p.flag("eof-reached")
}

// Volume maps mpv's percent scale onto [0,1]
func (p *Engine) Volume() float64 {
	return p.double("volume") / 100
}

func (p *Engine) SetVolume(v float64) error {
	return p.instance.SetDouble("volume", v*100)
}

func (p *Engine) PlaybackRate() float64 {
	return p.double("speed")
}

func (p *Engine) SetPlaybackRate(rate float64) error {
	return p.instance.SetDouble("speed", rate)
}

func (p *Engine) Loop() bool {
	v, err := p.instance.GetString("loop-file")
	if err != nil {
		log.Debugf("read loop-file: %v", err)
		return false
	}
	return v != "no"
}

func (p *Engine) SetLoop(loop bool) error {
	if loop {
		return p.instance.SetString("loop-file", "inf")
	}
	return p.instance.SetString("loop-file", "no")
}

func (p *Engine) Muted() bool {
	return p.flag("mute")
}

func (p *Engine) SetMuted(muted bool) error {
	return p.instance.SetFlag("mute", muted)
}

func (p *Engine) RequestFullscreen() error {
	return p.instance.SetFlag("fullscreen", true)
}

// HideNativeControls hands control to the terminal surface: mpv's OSC is
// hidden and keys in the mpv window no longer change playback state
func (p *Engine) HideNativeControls() error {
	return p.instance.HideNativeControls()
}

// Notifications returns the translated event stream
func (p *Engine) Notifications() <-chan player.Notification {
	return p.notifications
}

// Close quits mpv and releases the handle
func (p *Engine) Close() error {
	var err error
	p.closeOnce.Do(func() {
		if p.instance == nil || p.instance.Mpv == nil {
			return
		}
		err = multierr.Append(err, p.instance.Quit())

		// The listener must stop calling WaitEvent before the handle is freed.
		select {
		case <-p.listenerDone:
		case <-time.After(shutdownTimeout):
			log.Warn("mpv did not shut down in time")
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					err = multierr.Append(err, fmt.Errorf("terminate mpv: %v", r))
				}
			}()
			p.instance.TerminateDestroy()
		}()
	})
	return err
}

func (p *Engine) double(name string) float64 {
	v, err := p.instance.GetDouble(name)
	if err != nil {
		// Unavailable before a file is loaded; treat as zero.
		log.Debugf("read %s: %v", name, err)
		return 0
	}
	return v
}

func (p *Engine) flag(name string) bool {
	v, err := p.instance.GetFlag(name)
	if err != nil {
		log.Debugf("read %s: %v", name, err)
		return false
	}
	return v
}

// translateEvents turns raw mpv events into Notifications
func (p *Engine) translateEvents(ctx context.Context) {
	defer close(p.notifications)

	for {
		select {
		case e, ok := <-p.instance.EventChannel:
			if !ok {
				return
			}
			n, ok := p.translate(e)
			if !ok {
				continue
			}
			select {
			case p.notifications <- n:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *Engine) translate(e *mpv.Event) (player.Notification, bool) {
	if e == nil {
		return player.Notification{}, false
	}

	switch e.Event_Id {
	case mpv.EVENT_FILE_LOADED:
		return player.Notification{Kind: player.MetadataReady}, true
	case mpv.EVENT_PLAYBACK_RESTART:
		return player.Notification{Kind: player.NowPlaying}, true
	case mpv.EVENT_END_FILE:
		return player.Notification{Kind: player.PlaybackEnded}, true
	case mpv.EVENT_PROPERTY_CHANGE:
		return p.translateProperty(e.Reply_Userdata)
	}
	return player.Notification{}, false
}

func (p *Engine) translateProperty(id uint64) (player.Notification, bool) {
	switch id {
	case PropTimePos:
		return player.Notification{Kind: player.PositionChanged}, true
	case PropDuration:
		if p.Duration() > 0 {
			return player.Notification{Kind: player.MetadataReady}, true
		}
	case PropPause:
		if !p.Paused() && !p.Ended() {
			return player.Notification{Kind: player.NowPlaying}, true
		}
	case PropPausedForCache:
		if p.flag("paused-for-cache") {
			return player.Notification{Kind: player.BufferingStart}, true
		}
		return player.Notification{Kind: player.BufferingReady}, true
	case PropEOFReached:
		if p.Ended() {
			return player.Notification{Kind: player.PlaybackEnded}, true
		}
	}
	return player.Notification{}, false
}

// createEventListener creates an event listener for MPV events. done is
// closed once the listener has stopped touching the handle.
func createEventListener(ctx context.Context, m *mpv.Mpv) (chan *mpv.Event, <-chan struct{}) {
	c := make(chan *mpv.Event)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(c)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				e := m.WaitEvent(1)
				if e == nil || e.Event_Id == mpv.EVENT_NONE {
					time.Sleep(10 * time.Millisecond)
					continue
				}
				if e.Event_Id == mpv.EVENT_SHUTDOWN {
					return
				}
				select {
				case c <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return c, done
}
