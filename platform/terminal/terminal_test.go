// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package terminal

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/splathost/backend"
)

func waitFor(cond func() bool, timeout time.Duration, t *testing.T, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(cols, rows)
	return screen
}

func TestPixelSize(t *testing.T) {
	if w, h := PixelSize(80, 25); w != 80 || h != 50 {
		t.Errorf("PixelSize(80, 25) = (%d, %d), want (80, 50)", w, h)
	}
}

func TestSurfacePresent(t *testing.T) {
	screen := newSimScreen(t, 2, 1)
	defer screen.Fini()

	s := NewSurface(screen)
	s.SetCells(2, 1)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})

	if err := s.Present(img); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	tests := []struct {
		x      int
		fg, bg tcell.Color
	}{
		{0, tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)},
		{1, tcell.NewRGBColor(0, 255, 0), tcell.NewRGBColor(255, 255, 255)},
	}
	for _, tt := range tests {
		r, _, style, _ := screen.GetContent(tt.x, 0)
		if r != HalfBlock {
			t.Errorf("cell %d rune = %q, want %q", tt.x, r, HalfBlock)
		}
		fg, bg, _ := style.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("cell %d colors = (%v, %v), want (%v, %v)", tt.x, fg, bg, tt.fg, tt.bg)
		}
	}
}

func TestSurfacePresentScales(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	defer screen.Fini()

	s := NewSurface(screen)
	s.SetCells(4, 2)

	// A uniform frame at twice the grid resolution stays uniform.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 10, 20, 30, 255
	}
	if err := s.Present(img); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	want := tcell.NewRGBColor(10, 20, 30)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()
			if fg != want || bg != want {
				t.Errorf("cell (%d, %d) colors = (%v, %v), want %v", x, y, fg, bg, want)
			}
		}
	}
}

func TestSurfacePresentEmptyGrid(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	defer screen.Fini()

	s := NewSurface(screen)
	if err := s.Present(image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Errorf("Present() on empty grid error = %v", err)
	}
}

func TestNewNilScreen(t *testing.T) {
	if _, err := New(nil, backend.NewSoftwareBackend()); err == nil {
		t.Error("New(nil screen) error = nil, want error")
	}
}

func startApp(t *testing.T, c *backend.Counting) (tcell.SimulationScreen, *App, context.CancelFunc, chan error) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := New(screen, c, WithInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(ctx) }()

	waitFor(func() bool { return c.Counts().Rendered > 0 }, 2*time.Second, t, "first frame")
	return screen, app, cancel, errCh
}

func waitExit(t *testing.T, errCh chan error) {
	t.Helper()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not exit")
	}
}

func TestAppRendersAndQuits(t *testing.T) {
	c := backend.NewCounting(backend.NewSoftwareBackend())
	screen, app, cancel, errCh := startApp(t, c)
	defer cancel()

	cols, rows := app.Surface().Cells()
	if w, h := app.Host().Tracker().Size(); w != cols || h != rows*2 {
		t.Errorf("tracked size = (%d, %d), want (%d, %d)", w, h, cols, rows*2)
	}
	waitFor(func() bool {
		r, _, _, _ := screen.GetContent(0, 0)
		return r == HalfBlock
	}, time.Second, t, "frame to reach the screen")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	waitExit(t, errCh)

	got := c.Counts()
	if got.Created != 1 || got.Destroyed != 1 {
		t.Errorf("Counts() = %+v, want 1 create and 1 destroy", got)
	}
	if app.Host().IsActive() {
		t.Error("pump still active after exit")
	}
}

func TestAppResize(t *testing.T) {
	c := backend.NewCounting(backend.NewSoftwareBackend())
	screen, app, cancel, errCh := startApp(t, c)
	defer cancel()

	screen.PostEvent(tcell.NewEventResize(30, 12))
	waitFor(func() bool {
		w, h := app.Host().Tracker().Size()
		return w == 30 && h == 24
	}, time.Second, t, "resize to be tracked")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	waitExit(t, errCh)
}

func TestAppPauseToggle(t *testing.T) {
	c := backend.NewCounting(backend.NewSoftwareBackend())
	screen, app, cancel, errCh := startApp(t, c)
	defer cancel()

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'p', 0))
	waitFor(func() bool { return !app.Host().IsActive() }, time.Second, t, "pause")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'p', 0))
	waitFor(func() bool { return app.Host().IsActive() }, time.Second, t, "resume")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0))
	waitExit(t, errCh)
}

func TestAppContextCancel(t *testing.T) {
	c := backend.NewCounting(backend.NewSoftwareBackend())
	_, app, cancel, errCh := startApp(t, c)

	cancel()
	waitExit(t, errCh)

	if app.Host().IsReady() {
		t.Error("surface still ready after exit")
	}
}

// failingScreen fails Init.
type failingScreen struct {
	tcell.Screen
}

func (failingScreen) Init() error { return errors.New("no tty") }

func TestAppInitError(t *testing.T) {
	app, err := New(failingScreen{}, backend.NewSoftwareBackend())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Run(context.Background()); err == nil {
		t.Error("Run() error = nil, want init error")
	}
}
