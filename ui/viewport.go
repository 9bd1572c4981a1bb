package ui

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/controls"
)

// viewport fans application-level mouse events out to scrub listeners, so a
// drag keeps seeking after the pointer leaves the timeline row.
type viewport struct {
	listeners map[int]controls.PointerListener
	nextID    int
}

func newViewport() *viewport {
	return &viewport{listeners: make(map[int]controls.PointerListener)}
}

// Subscribe implements controls.Viewport
func (v *viewport) Subscribe(l controls.PointerListener) func() {
	id := v.nextID
	v.nextID++
	v.listeners[id] = l
	return func() { delete(v.listeners, id) }
}

func (v *viewport) active() []controls.PointerListener {
	ids := make([]int, 0, len(v.listeners))
	for id := range v.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]controls.PointerListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.listeners[id])
	}
	return out
}

// capture is installed with tview.Application.SetMouseCapture. While a
// session runs, moves and the release are consumed here. A consumed release
// also keeps tview from synthesizing a click under the pointer.
func (v *viewport) capture(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if event == nil || len(v.listeners) == 0 {
		return event, action
	}

	x, _ := event.Position()
	switch action {
	case tview.MouseMove:
		for _, l := range v.active() {
			l.PointerMove(float64(x))
		}
		return nil, action
	case tview.MouseLeftUp:
		for _, l := range v.active() {
			l.PointerUp(float64(x))
		}
		return nil, action
	}
	return event, action
}
