package ui

import (
	"time"

	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/controls"
)

// uiScheduler runs deferred callbacks on the tview event loop
type uiScheduler struct {
	app *tview.Application
}

func newScheduler(app *tview.Application) *uiScheduler {
	return &uiScheduler{app: app}
}

// AfterFunc implements controls.Scheduler
func (s *uiScheduler) AfterFunc(d time.Duration, f func()) controls.Timer {
	return time.AfterFunc(d, func() {
		s.app.QueueUpdateDraw(f)
	})
}
