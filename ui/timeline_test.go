package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/domain"
)

func newTestTimeline(downs *[]float64) *Timeline {
	tl := NewTimeline(
		func() domain.Timeline { return domain.Timeline{Max: 100, MaxSet: true, Value: 25} },
		func(x float64) { *downs = append(*downs, x) },
	)
	tl.SetRect(5, 10, 41, 2)
	return tl
}

func TestTimelineRect(t *testing.T) {
	var downs []float64
	tl := newTestTimeline(&downs)

	left, width := tl.Rect()
	if left != 5 || width != 40 {
		t.Errorf("Expected (5, 40), got (%v, %v)", left, width)
	}
}

func TestTimelineMouseHandler(t *testing.T) {
	var downs []float64
	tl := newTestTimeline(&downs)
	handler := tl.MouseHandler()
	noFocus := func(tview.Primitive) {}

	press := tcell.NewEventMouse(25, 10, tcell.Button1, tcell.ModNone)
	if consumed, _ := handler(tview.MouseLeftDown, press, noFocus); !consumed {
		t.Errorf("Expected press on the bar to be consumed")
	}
	if len(downs) != 1 || downs[0] != 25 {
		t.Fatalf("Expected pointer down at 25, got %v", downs)
	}

	// The label row and other actions are ignored
	handler(tview.MouseLeftDown, tcell.NewEventMouse(25, 11, tcell.Button1, tcell.ModNone), noFocus)
	handler(tview.MouseMove, tcell.NewEventMouse(30, 10, tcell.ButtonNone, tcell.ModNone), noFocus)
	handler(tview.MouseLeftDown, tcell.NewEventMouse(2, 10, tcell.Button1, tcell.ModNone), noFocus)

	if len(downs) != 1 {
		t.Errorf("Expected a single pointer down, got %v", downs)
	}
}

func TestTimelineDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 20)

	tl := NewTimeline(
		func() domain.Timeline { return domain.Timeline{Max: 100, MaxSet: true, Value: 50} },
		func(float64) {},
	)
	tl.SetRect(0, 0, 10, 2)
	tl.Draw(screen)

	for i := 0; i < 10; i++ {
		r, _, _, _ := screen.GetContent(i, 0)
		want := runeEmpty
		if i < 5 {
			want = runeFilled
		}
		if r != want {
			t.Errorf("Cell %d: expected %q, got %q", i, want, r)
		}
	}
}
