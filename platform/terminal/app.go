// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/host"
)

// App runs a host on a tcell screen.
type App struct {
	screen  tcell.Screen
	ticker  *frame.Ticker
	host    *host.Host
	surface *Surface
}

// New creates an App that renders through b on screen.
// The screen is initialized by Run, not by New.
func New(screen tcell.Screen, b splathost.RenderBackend, opts ...Option) (*App, error) {
	if screen == nil {
		return nil, errors.New("terminal: nil screen")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tk := frame.NewTicker(frame.WithInterval(o.interval))
	h, err := host.New(b, tk, o.host...)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &App{screen: screen, ticker: tk, host: h, surface: NewSurface(screen)}, nil
}

// Host returns the host driven by the app.
func (a *App) Host() *host.Host {
	return a.host
}

// Surface returns the screen surface.
func (a *App) Surface() *Surface {
	return a.surface
}

// Run initializes the screen and processes events until the user quits or
// ctx is done.
//
// The surface is created from the screen size and the pump is resumed
// before the first event is read. On exit the ticker is stopped, the host
// is closed and the screen is finalized, in that order. Run returns the
// host's close error; a done ctx is a normal exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	defer a.screen.Fini()
	a.screen.HideCursor()
	a.screen.Clear()

	a.surface.SetCells(a.screen.Size())
	a.host.OnCreated(a.surface)
	a.host.OnResized(a.surface.Size())
	if err := a.host.Resume(); err != nil {
		_ = a.host.Close()
		return fmt.Errorf("terminal: %w", err)
	}

	tickCtx, stop := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = a.ticker.Run(tickCtx)
	}()
	go func() {
		defer wg.Done()
		<-tickCtx.Done()
		// Wake PollEvent so the loop sees ctx.
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	shutdown := func() error {
		stop()
		wg.Wait()
		return a.host.Close()
	}

	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return shutdown()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return shutdown()
			}
		case *tcell.EventResize:
			a.screen.Sync()
			cols, rows := ev.Size()
			a.surface.SetCells(cols, rows)
			a.host.OnResized(PixelSize(cols, rows))
		case *tcell.EventKey:
			if isQuit(ev) {
				return shutdown()
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
				a.togglePause()
			}
		}
	}
}

func (a *App) togglePause() {
	if a.host.IsActive() {
		a.host.Pause()
		return
	}
	if err := a.host.Resume(); err != nil {
		splathost.Logger().Warn("terminal: resume failed", "err", err)
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
