// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/surface"
)

// ErrClosed is returned by Resume after Close.
var ErrClosed = errors.New("host: closed")

// Host owns one surface tracker and one frame pump bound to a backend.
type Host struct {
	backend splathost.RenderBackend
	tracker *surface.Tracker
	pump    *frame.Pump

	// life serializes OnCreated, Resume and Close so that neither a
	// surface nor the pump comes alive after Close has started.
	life     sync.Mutex
	closeErr error

	mu     sync.Mutex
	closed bool
}

// Ensure Host implements surface.Listener.
var _ surface.Listener = (*Host)(nil)

// Stats combines the tracker and pump counters.
type Stats struct {
	Surface surface.Stats
	Frame   frame.Stats
}

// New creates a Host that renders through b on ticks delivered by s.
// The pump starts inactive; call Resume to start ticking.
func New(b splathost.RenderBackend, s frame.Scheduler, opts ...Option) (*Host, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tracker, err := surface.NewTracker(b, o.tracker...)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	pump, err := frame.NewPump(tracker, s, o.pump...)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return &Host{backend: b, tracker: tracker, pump: pump}, nil
}

// MustNew is like New but panics on error.
func MustNew(b splathost.RenderBackend, s frame.Scheduler, opts ...Option) *Host {
	h, err := New(b, s, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// OnCreated forwards a surface-created notification.
// Ignored after Close.
func (h *Host) OnCreated(handle splathost.Handle) {
	h.life.Lock()
	defer h.life.Unlock()

	if h.isClosed() {
		splathost.Logger().Warn("host: surface created after close, ignoring")
		return
	}
	h.tracker.OnCreated(handle)
}

// OnResized forwards a surface-changed notification.
func (h *Host) OnResized(width, height int) {
	h.tracker.OnResized(width, height)
}

// OnDestroyed forwards a surface-destroyed notification.
func (h *Host) OnDestroyed() {
	h.tracker.OnDestroyed()
}

// Resume activates the frame pump. Scheduler errors are returned as is
// and not retried.
func (h *Host) Resume() error {
	h.life.Lock()
	defer h.life.Unlock()

	if h.isClosed() {
		return ErrClosed
	}
	return h.pump.Activate()
}

// Pause deactivates the frame pump.
func (h *Host) Pause() {
	h.pump.Deactivate()
}

// Close deactivates the pump, destroys a live surface and closes the
// backend if it implements io.Closer.
//
// Close is idempotent; later calls return the first call's result.
func (h *Host) Close() error {
	h.life.Lock()
	defer h.life.Unlock()

	h.mu.Lock()
	closed := h.closed
	h.closed = true
	h.mu.Unlock()
	if closed {
		return h.closeErr
	}

	h.pump.Deactivate()
	if h.tracker.IsReady() {
		h.tracker.OnDestroyed()
	}
	if c, ok := h.backend.(io.Closer); ok {
		if err := c.Close(); err != nil {
			h.closeErr = fmt.Errorf("host: close backend: %w", err)
		}
	}
	splathost.Logger().Info("host: closed", "err", h.closeErr)
	return h.closeErr
}

func (h *Host) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// IsReady reports whether a surface currently exists.
func (h *Host) IsReady() bool {
	return h.tracker.IsReady()
}

// IsActive reports whether the pump is ticking.
func (h *Host) IsActive() bool {
	return h.pump.IsActive()
}

// Tracker returns the surface tracker.
func (h *Host) Tracker() *surface.Tracker {
	return h.tracker
}

// Pump returns the frame pump.
func (h *Host) Pump() *frame.Pump {
	return h.pump
}

// Stats returns a snapshot of the tracker and pump counters.
func (h *Host) Stats() Stats {
	return Stats{Surface: h.tracker.Stats(), Frame: h.pump.Stats()}
}
