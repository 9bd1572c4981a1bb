package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpView represents the keyboard shortcuts help interface
type HelpView struct {
	app       *App
	container *tview.Flex
	textView  *tview.TextView
	isActive  bool
}

// NewHelpView creates a new help view
func NewHelpView(app *App) *HelpView {
	hv := &HelpView{
		app: app,
	}

	hv.textView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	helpText := `[yellow::b]Keyboard Shortcuts[-:-:-]

[lightgreen]Playback:[-]
  [white]Space[-]       Play/Pause
  [white]←[-]           Seek back one step
  [white]→[-]           Seek forward one step
  [white]g g[-]         Jump to the start
  [white]s / S[-]       Cycle speed (1x 2x 4x 8x 0.5x)
  [white]l / L[-]       Toggle loop
  [white]f / F[-]       Fullscreen

[lightgreen]Sound:[-]
  [white]↑ / + / =[-]   Volume up
  [white]↓ / - / _[-]   Volume down
  [white]m / M[-]       Mute/Unmute

[lightgreen]Mouse:[-]
  [white]Click[-]       Media panel toggles play/pause
  [white]Drag[-]        Press on the timeline and drag to scrub

[lightgreen]General:[-]
  [white]?[-]           Show this help panel
  [white]q / ESC[-]     Exit program
  [white]Ctrl+C[-]      Exit program

[yellow]Press ESC or ? to close this help panel[-]
`

	hv.textView.SetText(helpText)

	hv.container = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(hv.textView, 0, 1, true)

	hv.container.SetBorder(true).
		SetTitle(" Help (ESC to close) ").
		SetBorderColor(tcell.ColorYellow)

	return hv
}

// Show displays the help view
func (hv *HelpView) Show() {
	hv.isActive = true
	hv.app.tviewApp.SetFocus(hv.textView)
}

// Close hides the help view
func (hv *HelpView) Close() {
	hv.isActive = false
	hv.app.tviewApp.SetRoot(hv.app.rootFlex, true)
}

// IsActive returns whether the help view is active
func (hv *HelpView) IsActive() bool {
	return hv.isActive
}

// GetContainer returns the help view container
func (hv *HelpView) GetContainer() *tview.Flex {
	return hv.container
}
