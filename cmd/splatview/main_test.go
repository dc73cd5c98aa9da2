package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/backend"
	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/host"
	"github.com/gogpu/splathost/surface"
)

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	s := host.Stats{
		Surface: surface.Stats{Created: 1, Resized: 2, Destroyed: 1, Violations: 3},
		Frame:   frame.Stats{Ticks: 10, Frames: 8, Skipped: 2, Failures: 1, LastErr: errors.New("device lost")},
	}
	printStats(&buf, s, backend.Counts{Errors: 1})

	out := buf.String()
	for _, want := range []string{
		"8 rendered, 2 skipped, 1 failed (10 ticks)",
		"last render error: device lost",
		"1 created, 2 resized, 1 destroyed, 3 violations",
		"1 calls failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("printStats() output missing %q:\n%s", want, out)
		}
	}
}

func TestRunTerminalRejectsFPS(t *testing.T) {
	if _, err := runTerminal(backend.NewSoftwareBackend(), 0); err == nil {
		t.Error("runTerminal(fps=0) error = nil, want error")
	}
}

func TestSetupLoggingSilent(t *testing.T) {
	closeFn, err := setupLogging(false, "")
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	closeFn()
}

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.HasPrefix(got, "splatview "+splathost.Version) {
		t.Errorf("versionString() = %q, want prefix %q", got, "splatview "+splathost.Version)
	}
	if !strings.Contains(got, backend.BackendSoftware) {
		t.Errorf("versionString() = %q, want it to list %q", got, backend.BackendSoftware)
	}
}
