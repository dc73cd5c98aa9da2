//go:build !nodesktop

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/host"
)

// Game is an ebiten.Game that drives a host.
type Game struct {
	opts   options
	queue  *frame.Queue
	host   *host.Host
	window *Window
	start  time.Time

	created bool
	focused bool
}

// Ensure Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// New creates a Game that renders through b.
func New(b splathost.RenderBackend, opts ...Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := frame.NewQueue()
	h, err := host.New(b, q, o.host...)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	return &Game{
		opts:    o,
		queue:   q,
		host:    h,
		window:  &Window{},
		start:   time.Now(),
		focused: true,
	}, nil
}

// Host returns the host driven by the game.
func (g *Game) Host() *host.Host {
	return g.host
}

// Run opens the window, resumes the pump and blocks until the window is
// closed. The host is closed before Run returns.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.opts.title)
	ebiten.SetWindowSize(g.opts.width, g.opts.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := g.host.Resume(); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	closeErr := g.host.Close()
	g.window.release()
	return errors.Join(err, closeErr)
}

// Update handles window close requests and focus changes.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.setFocused(ebiten.IsFocused())
	return nil
}

// setFocused pauses the pump on focus loss and resumes it on focus gain.
func (g *Game) setFocused(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused
	if !focused {
		g.host.Pause()
		return
	}
	if err := g.host.Resume(); err != nil {
		splathost.Logger().Warn("desktop: resume failed", "err", err)
	}
}

// Draw runs one frame tick and paints the presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.tick(time.Since(g.start).Nanoseconds())
	g.window.draw(screen)
}

func (g *Game) tick(frameTimeNanos int64) {
	g.queue.Dispatch(frameTimeNanos)
}

// Layout reports the window size as the surface size. The first call
// creates the surface; later size changes resize it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) layout(width, height int) {
	if !g.created {
		g.created = true
		g.window.setSize(width, height)
		g.host.OnCreated(g.window)
		g.host.OnResized(width, height)
		return
	}
	if w, h := g.window.Size(); w == width && h == height {
		return
	}
	g.window.setSize(width, height)
	g.host.OnResized(width, height)
}
