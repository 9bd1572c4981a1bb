package controls

import (
	"github.com/yhkl-dev/mpvctl/domain"
	"github.com/yhkl-dev/mpvctl/player"
)

// Playback owns play/pause and the icon and overlay that reflect it. Both
// are always set together by reflect so they cannot diverge.
type Playback struct {
	engine  player.Engine
	icon    domain.PlaybackIcon
	overlay bool
}

func newPlayback(engine player.Engine) *Playback {
	p := &Playback{engine: engine}
	p.reflect(false)
	return p
}

// Toggle plays paused or ended media and pauses playing media
func (p *Playback) Toggle() {
	if p.engine.Paused() || p.engine.Ended() {
		call("play", p.engine.Play())
		p.reflect(true)
		return
	}
	call("pause", p.engine.Pause())
	p.reflect(false)
}

// Icon is the glyph for the play/pause control
func (p *Playback) Icon() domain.PlaybackIcon {
	return p.icon
}

// OverlayVisible reports whether the paused overlay is shown
func (p *Playback) OverlayVisible() bool {
	return p.overlay
}

// sync reads the engine's current state
func (p *Playback) sync() {
	p.reflect(!p.engine.Paused() && !p.engine.Ended())
}

// handleEnded trusts the engine over the last toggle direction
func (p *Playback) handleEnded(player.Notification) {
	p.reflect(false)
}

func (p *Playback) reflect(playing bool) {
	if playing {
		p.icon = domain.IconPause
		p.overlay = false
		return
	}
	p.icon = domain.IconPlay
	p.overlay = true
}
