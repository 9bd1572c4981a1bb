package controls

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/yhkl-dev/mpvctl/domain"
	"github.com/yhkl-dev/mpvctl/player"
)

// DefaultSeekStep is the rewind/fast-forward offset in seconds
const DefaultSeekStep = 10.0

// SpeedControl cycles the playback rate 1,2,4,8,0.5,...
type SpeedControl struct {
	engine    player.Engine
	state     domain.SpeedState
	indicator *Indicator
}

// Cycle advances the rate and flashes it
func (c *SpeedControl) Cycle() {
	c.state = c.state.Next()
	call("set speed", c.engine.SetPlaybackRate(c.state.Rate))
	c.indicator.Flash(FormatRate(c.state.Rate))
}

// Rate returns the current multiplier
func (c *SpeedControl) Rate() float64 {
	return c.state.Rate
}

// FormatRate renders a multiplier as shown on the speed indicator, e.g. "0.5x"
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "x"
}

// MuteControl flips the muted flag. The icon always shows the state the
// engine is in after the flip.
type MuteControl struct {
	engine    player.Engine
	state     domain.ToggleState
	volume    *VolumeControl
	indicator *Indicator
}

// Toggle flips mute and flashes the volume indicator
func (c *MuteControl) Toggle() {
	c.state = c.state.Flip()
	call("set mute", c.engine.SetMuted(c.state.On))
	c.indicator.Flash(lo.Ternary(c.state.On, "Muted", c.volume.label()))
}

// Muted reports the toggle state
func (c *MuteControl) Muted() bool {
	return c.state.On
}

// Icon reflects the current mute state
func (c *MuteControl) Icon() domain.MuteIcon {
	if c.state.On {
		return domain.IconSoundOff
	}
	return domain.IconSoundOn
}

// SeekControl moves the position by a fixed step
type SeekControl struct {
	engine player.Engine
	step   float64
}

// Rewind steps back. At position 0 it does nothing; it never goes negative.
func (c *SeekControl) Rewind() {
	pos := c.engine.Position()
	if pos <= 0 {
		return
	}
	call("rewind", c.engine.Seek(max(pos-c.step, 0)))
}

// FastForward steps ahead without passing the end of the media
func (c *SeekControl) FastForward() {
	pos := c.engine.Position()
	target := pos + c.step
	if duration := c.engine.Duration(); duration > 0 {
		if pos >= duration {
			return
		}
		target = min(target, duration)
	}
	call("fast forward", c.engine.Seek(target))
}

// Restart jumps back to the start
func (c *SeekControl) Restart() {
	call("restart", c.engine.Seek(0))
}

// VolumeControl steps the volume level in [0,10]
type VolumeControl struct {
	engine    player.Engine
	state     domain.VolumeLevel
	indicator *Indicator
}

// Up raises the volume one step
func (c *VolumeControl) Up() {
	c.apply(c.state.Up())
}

// Down lowers the volume one step
func (c *VolumeControl) Down() {
	c.apply(c.state.Down())
}

// Level returns the integer level
func (c *VolumeControl) Level() int {
	return c.state.Level
}

func (c *VolumeControl) apply(next domain.VolumeLevel) {
	c.state = next
	call("set volume", c.engine.SetVolume(c.state.Gain()))
	c.indicator.Flash(c.label())
}

func (c *VolumeControl) label() string {
	return fmt.Sprintf("Volume: %d", c.state.Percent())
}

// LoopControl flips the loop flag
type LoopControl struct {
	engine    player.Engine
	state     domain.ToggleState
	indicator *Indicator
}

// Toggle flips loop and flashes the new state
func (c *LoopControl) Toggle() {
	c.state = c.state.Flip()
	call("set loop", c.engine.SetLoop(c.state.On))
	c.indicator.Flash(lo.Ternary(c.state.On, "Loop enabled", "Loop disabled"))
}

// Looping reports the toggle state
func (c *LoopControl) Looping() bool {
	return c.state.On
}

// Icon reflects the current loop state
func (c *LoopControl) Icon() domain.LoopIcon {
	if c.state.On {
		return domain.IconLoopOn
	}
	return domain.IconLoopOff
}

// FullscreenControl forwards a one-shot fullscreen request
type FullscreenControl struct {
	engine player.Engine
}

// Request asks the engine for fullscreen
func (c *FullscreenControl) Request() {
	call("fullscreen", c.engine.RequestFullscreen())
}
