package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/domain"
)

// controlButtons are the clickable controls under the timeline
type controlButtons struct {
	play       *tview.Button
	rewind     *tview.Button
	forward    *tview.Button
	speed      *tview.Button
	mute       *tview.Button
	loop       *tview.Button
	fullscreen *tview.Button
}

// createHomepage sets up the UI layout
func (a *App) createHomepage() {
	a.screen = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetWrap(true)
	a.screen.SetBorder(true).
		SetTitle(" mpvctl ").
		SetBorderColor(tcell.ColorDarkGray)

	a.indicatorBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	a.timeline = NewTimeline(a.timelineState, a.timelinePointerDown)
	a.timeline.SetBorderPadding(0, 0, 1, 1)

	a.hintBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(CreateHintLine())

	a.helpView = NewHelpView(a)

	a.setupScreenMouse()
	a.setupKeyBindings()
	a.setupInputHandlers()

	a.rootFlex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.screen, 0, 1, false).
		AddItem(a.indicatorBar, 1, 0, false).
		AddItem(a.timeline, 2, 0, false).
		AddItem(a.createControlBar(), 1, 0, false).
		AddItem(a.hintBar, 1, 0, false)

	a.tviewApp.SetRoot(a.rootFlex, true)
}

// createControlBar lays out one button per control
func (a *App) createControlBar() *tview.Flex {
	newButton := func(label string, selected func()) *tview.Button {
		b := tview.NewButton(label).SetSelectedFunc(selected)
		b.SetStyle(tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite))
		b.SetActivatedStyle(tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite))
		return b
	}

	a.buttons = controlButtons{
		play:       newButton(PlayButtonLabel(domain.IconPlay), func() { a.surface.TogglePlayback() }),
		rewind:     newButton("« Back", func() { a.surface.Rewind() }),
		forward:    newButton("Fwd »", func() { a.surface.FastForward() }),
		speed:      newButton(SpeedButtonLabel(domain.NewSpeedState().Rate), func() { a.surface.CycleSpeed() }),
		mute:       newButton(MuteButtonLabel(domain.IconSoundOn), func() { a.surface.ToggleMute() }),
		loop:       newButton(LoopButtonLabel(domain.IconLoopOff), func() { a.surface.ToggleLoop() }),
		fullscreen: newButton("⛶ Full", func() { a.surface.RequestFullscreen() }),
	}

	bar := tview.NewFlex().SetDirection(tview.FlexColumn)
	for _, b := range []*tview.Button{
		a.buttons.play, a.buttons.rewind, a.buttons.forward, a.buttons.speed,
		a.buttons.mute, a.buttons.loop, a.buttons.fullscreen,
	} {
		bar.AddItem(b, 0, 1, false).AddItem(nil, 1, 0, false)
	}
	return bar
}

// timelineState feeds the timeline widget; it draws empty before attach
func (a *App) timelineState() domain.Timeline {
	if a.surface == nil {
		return domain.Timeline{}
	}
	return a.surface.Timeline.State()
}

func (a *App) timelinePointerDown(x float64) {
	if a.surface != nil {
		a.surface.PointerDown(x)
	}
}

// setupScreenMouse makes a click on the media surface toggle playback
func (a *App) setupScreenMouse() {
	a.screen.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick || a.surface == nil {
			return action, event
		}
		if !a.screen.InRect(event.Position()) {
			return action, event
		}
		a.surface.TogglePlayback()
		return action, nil
	})
}

// setupKeyBindings registers the keyboard map
func (a *App) setupKeyBindings() {
	km := a.keys
	km.RegisterKeyBinding(KeyAction{name: "togglePlayback", handler: func() { a.surface.TogglePlayback() }}, nil, []rune{' '})
	km.RegisterKeyBinding(KeyAction{name: "rewind", handler: func() { a.surface.Rewind() }}, []tcell.Key{tcell.KeyLeft}, nil)
	km.RegisterKeyBinding(KeyAction{name: "fastForward", handler: func() { a.surface.FastForward() }}, []tcell.Key{tcell.KeyRight}, nil)
	km.RegisterKeyBinding(KeyAction{name: "volumeUp", handler: func() { a.surface.VolumeUp() }}, []tcell.Key{tcell.KeyUp}, []rune{'+', '='})
	km.RegisterKeyBinding(KeyAction{name: "volumeDown", handler: func() { a.surface.VolumeDown() }}, []tcell.Key{tcell.KeyDown}, []rune{'-', '_'})
	km.RegisterKeyBinding(KeyAction{name: "cycleSpeed", handler: func() { a.surface.CycleSpeed() }}, nil, []rune{'s', 'S'})
	km.RegisterKeyBinding(KeyAction{name: "toggleMute", handler: func() { a.surface.ToggleMute() }}, nil, []rune{'m', 'M'})
	km.RegisterKeyBinding(KeyAction{name: "toggleLoop", handler: func() { a.surface.ToggleLoop() }}, nil, []rune{'l', 'L'})
	km.RegisterKeyBinding(KeyAction{name: "fullscreen", handler: func() { a.surface.RequestFullscreen() }}, nil, []rune{'f', 'F'})
	km.RegisterKeyBinding(KeyAction{name: "help", handler: a.showHelp}, nil, []rune{'?'})
	km.RegisterKeyBinding(KeyAction{name: "quit", handler: a.handleExit}, []tcell.Key{tcell.KeyEsc, tcell.KeyCtrlC}, []rune{'q', 'Q'})
	km.RegisterSequence(KeyAction{name: "restart", handler: func() { a.surface.Restart() }}, "gg")
}

// setupInputHandlers sets up keyboard and mouse capture
func (a *App) setupInputHandlers() {
	a.tviewApp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Handle modal views first
		if a.helpView != nil && a.helpView.IsActive() {
			if event.Key() == tcell.KeyEscape || event.Rune() == '?' {
				a.helpView.Close()
				return nil
			}
			return event
		}

		if a.keys.HandleKey(event) {
			return nil
		}
		return event
	})

	if a.cfg.UI.Mouse {
		a.tviewApp.EnableMouse(true)
		a.tviewApp.SetMouseCapture(a.viewport.capture)
	}
}

// showHelp shows the help view
func (a *App) showHelp() {
	a.keys.ResetPending()
	a.tviewApp.SetRoot(a.helpView.GetContainer(), true)
	a.helpView.Show()
}

// refresh redraws every widget from the surface state. It runs on the UI
// goroutine, which tview redraws after each queued update.
func (a *App) refresh() {
	if a.surface == nil {
		return
	}
	state := a.surface.Snapshot()

	a.screen.SetText(CreateScreen(a.title, state))
	a.indicatorBar.SetText(CreateIndicatorStrip(state))

	a.buttons.play.SetLabel(PlayButtonLabel(state.PlayIcon))
	a.buttons.speed.SetLabel(SpeedButtonLabel(state.Speed))
	a.buttons.mute.SetLabel(MuteButtonLabel(state.MuteIcon))
	a.buttons.loop.SetLabel(LoopButtonLabel(state.LoopIcon))
}
