package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/domain"
)

const (
	runeFilled  = '▓'
	runeEmpty   = '░'
	runeLoading = '▒'
)

// Timeline is the seekable progress bar. The first row is the bar itself,
// the second the position label.
type Timeline struct {
	*tview.Box

	state       func() domain.Timeline
	pointerDown func(x float64)
}

// NewTimeline returns a timeline drawing whatever state returns and reporting
// left-button presses on the bar to pointerDown.
func NewTimeline(state func() domain.Timeline, pointerDown func(x float64)) *Timeline {
	return &Timeline{
		Box:         tview.NewBox(),
		state:       state,
		pointerDown: pointerDown,
	}
}

// Rect implements controls.Bounds. The last cell maps to the full duration.
func (t *Timeline) Rect() (left, width float64) {
	x, _, w, _ := t.GetInnerRect()
	return float64(x), float64(w - 1)
}

// Draw draws this primitive onto the screen
func (t *Timeline) Draw(screen tcell.Screen) {
	t.Box.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	tl := t.state()
	filled := int(math.Round(tl.Fraction() * float64(width)))

	filledStyle := tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	loadingStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			screen.SetContent(x+i, y, runeFilled, nil, filledStyle)
		case tl.Loading && i%2 == 0:
			screen.SetContent(x+i, y, runeLoading, nil, loadingStyle)
		default:
			screen.SetContent(x+i, y, runeEmpty, nil, emptyStyle)
		}
	}

	if height > 1 {
		tview.Print(screen, FormatTimelineLabel(tl), x, y+1, width, tview.AlignLeft, tcell.ColorDarkGray)
	}
}

// MouseHandler starts a scrub on a left-button press over the bar row
func (t *Timeline) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if action != tview.MouseLeftDown || !t.InRect(x, y) {
			return false, nil
		}
		if _, top, _, _ := t.GetInnerRect(); y != top {
			return false, nil
		}
		t.pointerDown(float64(x))
		return true, nil
	})
}
