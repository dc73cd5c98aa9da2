// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/splathost"
)

// Tracker is the surface lifecycle state cell.
//
// All methods are safe for concurrent use. Lifecycle events and render
// requests may arrive from different goroutines; see the package
// documentation for the ordering guarantees.
type Tracker struct {
	mu      sync.Mutex
	backend splathost.RenderBackend
	opts    trackerOptions

	state  State
	handle splathost.Handle
	width  int
	height int
	stats  Stats
}

// Ensure Tracker implements Listener.
var _ Listener = (*Tracker)(nil)

// NewTracker creates a Tracker in StateAbsent that forwards lifecycle
// events to b.
//
// Returns ErrNilBackend if b is nil.
func NewTracker(b splathost.RenderBackend, opts ...TrackerOption) (*Tracker, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	var o trackerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{
		backend: b,
		opts:    o,
		state:   StateAbsent,
	}, nil
}

// OnCreated records h, forwards it to SurfaceCreated and transitions to
// StateReady.
//
// If h implements Sizer its size becomes the recorded dimensions. A
// second OnCreated without an intervening OnDestroyed replaces the handle;
// the backend sees another SurfaceCreated and is expected to recreate its
// surface. A nil handle is ignored.
//
// SurfaceCreated may block on GPU or driver setup; render requests wait
// until it returns.
func (t *Tracker) OnCreated(h splathost.Handle) {
	v, err := t.create(h)
	t.report(EventCreated, v, err)
}

func (t *Tracker) create(h splathost.Handle) (*Violation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h == nil {
		return t.violationLocked(EventCreated, ErrNilHandle), nil
	}
	if t.state == StateReady {
		splathost.Logger().Warn("surface: created while ready, replacing handle",
			"width", t.width, "height", t.height)
	}

	t.handle = h
	t.width, t.height = 0, 0
	if s, ok := h.(Sizer); ok {
		if w, hgt := s.Size(); w >= 0 && hgt >= 0 {
			t.width, t.height = w, hgt
		}
	}

	err := t.call(func() error { return t.backend.SurfaceCreated(h) })
	t.state = StateReady
	t.stats.Created++
	t.countFailureLocked(err)

	splathost.Logger().Info("surface: created", "width", t.width, "height", t.height)
	return nil, err
}

// OnResized records the new dimensions and forwards them to
// SurfaceChanged.
//
// Valid only in StateReady. A zero-area size is legal and forwarded.
// Negative sizes and resizes while absent are ignored.
func (t *Tracker) OnResized(width, height int) {
	v, err := t.resize(width, height)
	t.report(EventResized, v, err)
}

func (t *Tracker) resize(width, height int) (*Violation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateReady {
		return t.violationLocked(EventResized, ErrNotReady), nil
	}
	if width < 0 || height < 0 {
		return t.violationLocked(EventResized,
			fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)), nil
	}

	t.width, t.height = width, height
	err := t.call(func() error { return t.backend.SurfaceChanged(width, height) })
	t.stats.Resized++
	t.countFailureLocked(err)

	splathost.Logger().Info("surface: resized", "width", width, "height", height)
	return nil, err
}

// OnDestroyed transitions to StateAbsent, forwards SurfaceDestroyed and
// releases the handle.
//
// Any render in progress finishes before SurfaceDestroyed is called, and
// no render starts afterwards until the next OnCreated.
func (t *Tracker) OnDestroyed() {
	v, err := t.destroy()
	t.report(EventDestroyed, v, err)
}

func (t *Tracker) destroy() (*Violation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateReady {
		return t.violationLocked(EventDestroyed, ErrNotReady), nil
	}

	t.state = StateAbsent
	err := t.call(t.backend.SurfaceDestroyed)
	t.handle = nil
	t.width, t.height = 0, 0
	t.stats.Destroyed++
	t.countFailureLocked(err)

	splathost.Logger().Info("surface: destroyed")
	return nil, err
}

// RenderIfReady calls Render if a surface exists.
//
// It reports whether a render boundary call was made and the error that
// call returned. The readiness check and the call happen under the same
// lock as the lifecycle events, so a concurrent OnDestroyed waits for the
// render to finish.
func (t *Tracker) RenderIfReady() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateReady {
		return false, nil
	}
	err := t.call(t.backend.Render)
	t.stats.Rendered++
	t.countFailureLocked(err)
	return true, err
}

// IsReady reports whether a surface currently exists.
func (t *Tracker) IsReady() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == StateReady
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Size returns the last recorded dimensions.
// Both are zero while no surface exists.
func (t *Tracker) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Stats returns a snapshot of the tracker counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// call invokes a backend method, converting a panic into ErrBackendPanic.
// Must be called with t.mu held.
func (t *Tracker) call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBackendPanic, r)
		}
	}()
	return fn()
}

// violationLocked counts a violation. Must be called with t.mu held.
func (t *Tracker) violationLocked(ev Event, err error) *Violation {
	t.stats.Violations++
	return &Violation{Event: ev, State: t.state, Err: err}
}

// countFailureLocked counts a failed boundary call. Must be called with
// t.mu held.
func (t *Tracker) countFailureLocked(err error) {
	if err != nil {
		t.stats.Failures++
	}
}

// report logs and dispatches the outcome of a lifecycle event.
// Must be called without t.mu held.
func (t *Tracker) report(ev Event, v *Violation, err error) {
	if v != nil {
		splathost.Logger().Warn("surface: ignoring event",
			"event", v.Event.String(), "state", v.State.String(), "err", v.Err)
		if t.opts.onViolation != nil {
			t.opts.onViolation(*v)
		}
		return
	}
	if err == nil {
		return
	}
	splathost.Logger().Warn("surface: backend call failed", "event", ev.String(), "err", err)
	if t.opts.onFailure != nil {
		t.opts.onFailure(ev, err)
	}
}
