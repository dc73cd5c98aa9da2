// Command splatview shows a Gaussian splatting renderer in a terminal or a
// desktop window.
//
// Usage:
//
//	splatview [-platform terminal|desktop] [-backend name] [-fps n] [-v] [-log file] [-version]
//
// Without -backend the best registered backend is used: the native renderer
// when built with -tags native, otherwise the software preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/backend"
	_ "github.com/gogpu/splathost/backend/native"
	"github.com/gogpu/splathost/host"
	"github.com/gogpu/splathost/platform/terminal"
)

func main() {
	var (
		platform = flag.String("platform", "terminal", "surface to render to: terminal or desktop")
		name     = flag.String("backend", "", "render backend (default: best available; one of "+strings.Join(backend.Available(), ", ")+")")
		fps      = flag.Int("fps", 60, "terminal frame rate")
		verbose  = flag.Bool("v", false, "debug logging")
		logFile  = flag.String("log", "", "write logs to file instead of stderr")
		version  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(versionString())
		return
	}

	closeLog, err := setupLogging(*verbose, *logFile)
	if err != nil {
		log.Fatalf("splatview: %v", err)
	}
	defer closeLog()

	b, err := backend.Open(*name)
	if err != nil {
		log.Fatalf("splatview: %v", err)
	}
	c := backend.NewCounting(b)
	splathost.Logger().Info("splatview: starting", "platform", *platform, "backend", c.Name())

	var h *host.Host
	switch *platform {
	case "terminal":
		h, err = runTerminal(c, *fps)
	case "desktop":
		h, err = runDesktop(c)
	default:
		err = fmt.Errorf("unknown platform %q", *platform)
	}
	if h != nil {
		printStats(os.Stdout, h.Stats(), c.Counts())
	}
	if err != nil {
		log.Fatalf("splatview: %v", err)
	}
}

func runTerminal(b backend.Backend, fps int) (*host.Host, error) {
	if fps <= 0 {
		return nil, errors.New("-fps must be positive")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	app, err := terminal.New(screen, b, terminal.WithInterval(time.Second/time.Duration(fps)))
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Host(), app.Run(ctx)
}

// setupLogging installs the process logger. Without -v logging stays
// silent. The returned func closes the log file, if any.
func setupLogging(verbose bool, path string) (func(), error) {
	if !verbose {
		return func() {}, nil
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	splathost.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return closeFn, nil
}

func versionString() string {
	return "splatview " + splathost.Version + " (backends: " + strings.Join(backend.Available(), ", ") + ")"
}

func printStats(w io.Writer, s host.Stats, c backend.Counts) {
	fmt.Fprintf(w, "frames: %d rendered, %d skipped, %d failed (%d ticks)\n",
		s.Frame.Frames, s.Frame.Skipped, s.Frame.Failures, s.Frame.Ticks)
	if s.Frame.LastErr != nil {
		fmt.Fprintf(w, "last render error: %v\n", s.Frame.LastErr)
	}
	fmt.Fprintf(w, "surface: %d created, %d resized, %d destroyed, %d violations\n",
		s.Surface.Created, s.Surface.Resized, s.Surface.Destroyed, s.Surface.Violations)
	fmt.Fprintf(w, "backend: %d calls failed\n", c.Errors)
}
