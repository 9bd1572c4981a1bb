package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/mpvctl/config"
	"github.com/yhkl-dev/mpvctl/controls"
	"github.com/yhkl-dev/mpvctl/log"
	"github.com/yhkl-dev/mpvctl/player"
)

// App represents the TUI application
type App struct {
	tviewApp *tview.Application
	cfg      *config.Config
	engine   player.Engine
	ctx      context.Context
	title    string

	surface  *controls.Surface
	viewport *viewport
	keys     *KeyBindingManager

	rootFlex     *tview.Flex
	screen       *tview.TextView
	indicatorBar *tview.TextView
	timeline     *Timeline
	buttons      controlButtons
	hintBar      *tview.TextView
	helpView     *HelpView

	nativeHidden bool
	done         chan struct{}
}

// NewApp creates a new TUI application with dependency injection
func NewApp(ctx context.Context, cfg *config.Config, engine player.Engine, title string) *App {
	return &App{
		tviewApp: tview.NewApplication(),
		cfg:      cfg,
		engine:   engine,
		ctx:      ctx,
		title:    title,
		viewport: newViewport(),
		keys:     NewKeyBindingManager(),
		done:     make(chan struct{}),
	}
}

// surfaceOptions maps the configuration onto the initial control state
func surfaceOptions(cfg *config.Config) controls.Options {
	return controls.Options{
		SeekStep:      cfg.Player.GetSeekStep(),
		InitialVolume: cfg.Player.InitialVolume,
		InitialLoop:   cfg.Player.Loop,
		InitialMute:   cfg.Player.Muted,
		FadeAfter:     cfg.UI.GetFadeAfter(),
		HideAfter:     cfg.UI.GetHideAfter(),
	}
}

// Run starts the application and blocks until it exits
func (a *App) Run() error {
	a.createHomepage()

	a.surface = controls.New(a.engine, newScheduler(a.tviewApp), a.viewport, a.timeline, surfaceOptions(a.cfg))
	a.surface.OnChange = a.refresh
	a.surface.Attach()
	defer a.surface.Detach()

	// The first frame proves the surface is up; until then mpv keeps its
	// own controls.
	a.tviewApp.SetAfterDrawFunc(func(tcell.Screen) {
		if a.nativeHidden {
			return
		}
		a.nativeHidden = true
		a.hideNativeControls()
	})

	defer close(a.done)
	go a.handlePlayerEvents()
	go a.stopOnCancel()

	log.Info("start mpvctl...")
	return a.tviewApp.Run()
}

// Stop stops the application
func (a *App) Stop() {
	if a.tviewApp != nil {
		a.tviewApp.Stop()
	}
}

// stopFromLoop stops the application from inside the event loop, so a stop
// requested before the loop starts is not lost.
func (a *App) stopFromLoop() {
	select {
	case <-a.done:
	default:
		a.tviewApp.QueueUpdate(a.Stop)
	}
}

// hideNativeControls swaps the engine's own controls for this surface.
// Engines without native controls are left alone.
func (a *App) hideNativeControls() {
	if !a.cfg.MPV.NativeControls {
		return
	}
	native, ok := a.engine.(player.NativeControls)
	if !ok {
		return
	}
	if err := native.HideNativeControls(); err != nil {
		log.Warnf("hide native controls: %v", err)
	}
}

// handlePlayerEvents forwards engine notifications onto the UI goroutine.
// A closed stream means the engine is gone, so the application stops.
func (a *App) handlePlayerEvents() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Player event handler panic recovered: %v", r)
		}
	}()

	notifications := a.engine.Notifications()
	for {
		select {
		case n, ok := <-notifications:
			if !ok {
				log.Warn("engine event stream closed")
				a.stopFromLoop()
				return
			}
			a.tviewApp.QueueUpdateDraw(func() {
				a.surface.Dispatch(n)
			})
		case <-a.ctx.Done():
			return
		case <-a.done:
			return
		}
	}
}

// stopOnCancel stops the event loop when the context is cancelled
func (a *App) stopOnCancel() {
	select {
	case <-a.ctx.Done():
		a.stopFromLoop()
	case <-a.done:
	}
}

// handleExit handles the exit key
func (a *App) handleExit() {
	log.Info("exit requested")
	a.Stop()
}
