package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"github.com/samber/lo"
	"github.com/yhkl-dev/mpvctl/domain"
)

// FormatDuration converts seconds to MM:SS, or H:MM:SS from one hour up
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatTimelineLabel renders "position / duration" under the timeline
func FormatTimelineLabel(tl domain.Timeline) string {
	total := "--:--"
	if tl.MaxSet {
		total = FormatDuration(tl.Max)
	}
	label := fmt.Sprintf("[white]%s[darkgray] / %s", FormatDuration(tl.Value), total)
	if tl.Loading {
		label += " [yellow]buffering..."
	}
	return label
}

// PlayButtonLabel shows what a click on the play control will do
func PlayButtonLabel(icon domain.PlaybackIcon) string {
	if icon == domain.IconPause {
		return "❚❚ Pause"
	}
	return "▶ Play"
}

// MuteButtonLabel reflects the current mute state
func MuteButtonLabel(icon domain.MuteIcon) string {
	if icon == domain.IconSoundOff {
		return "🔇 Muted"
	}
	return "🔊 Sound"
}

// LoopButtonLabel reflects the current loop state
func LoopButtonLabel(icon domain.LoopIcon) string {
	if icon == domain.IconLoopOn {
		return "↻ Loop on"
	}
	return "↻ Loop off"
}

// SpeedButtonLabel shows the current multiplier
func SpeedButtonLabel(rate float64) string {
	return fmt.Sprintf("» %gx", rate)
}

// FormatIndicator colors a transient indicator by phase; hidden renders blank
// padding of the same width so neighbours do not shift.
func FormatIndicator(view domain.IndicatorView, width int) string {
	text := runewidth.Truncate(view.Text, width, "…")
	padded := runewidth.FillRight(text, width)
	switch view.Phase {
	case domain.PhaseVisible:
		return "[white::b]" + tview.Escape(padded) + "[-:-:-]"
	case domain.PhaseFading:
		return "[darkgray]" + tview.Escape(padded) + "[-]"
	default:
		return strings.Repeat(" ", width)
	}
}

// CreateIndicatorStrip lays the speed, volume and loop indicators side by side
func CreateIndicatorStrip(state domain.SurfaceState) string {
	const slot = 14
	return strings.Join([]string{
		FormatIndicator(state.SpeedIndicator, slot),
		FormatIndicator(state.VolumeIndicator, slot),
		FormatIndicator(state.LoopIndicator, slot),
	}, "  ")
}

// CreateScreen renders the media surface panel with the paused overlay
func CreateScreen(title string, state domain.SurfaceState) string {
	overlay := "[darkgray]click here or press SPACE to pause"
	if state.OverlayVisible {
		overlay = "[yellow::b]▶  PAUSED[-:-:-]\n[darkgray]click here or press SPACE to play"
	}

	volume := lo.Ternary(state.MuteIcon == domain.IconSoundOff, "muted", fmt.Sprintf("%d%%", state.VolumeLevel*10))
	loop := lo.Ternary(state.LoopIcon == domain.IconLoopOn, "loop on", "loop off")

	return fmt.Sprintf(`
[lightgreen]%s

%s

[darkgray]speed %gx   volume %s   %s`,
		tview.Escape(runewidth.Truncate(title, 72, "…")),
		overlay,
		state.Speed,
		volume,
		loop)
}

// CreateHintLine lists the main shortcuts
func CreateHintLine() string {
	return `[gray]SPACE play/pause | ←/→ seek | ↑/↓ volume | s speed | m mute | l loop | f fullscreen | gg start | ? help | q quit`
}
