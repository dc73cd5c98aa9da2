// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/splathost"
)

// State is the readiness of the tracked surface.
type State uint8

const (
	// StateAbsent means no surface exists. Render calls are skipped.
	StateAbsent State = iota

	// StateReady means a surface exists and has not been destroyed.
	StateReady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Event identifies a lifecycle event or boundary call.
type Event uint8

const (
	// EventCreated is the surface-created notification.
	EventCreated Event = iota

	// EventResized is the surface-changed notification.
	EventResized

	// EventDestroyed is the surface-destroyed notification.
	EventDestroyed

	// EventRender is a render request from the frame pump.
	EventRender
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventResized:
		return "resized"
	case EventDestroyed:
		return "destroyed"
	case EventRender:
		return "render"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

// Listener receives platform surface notifications.
// Tracker implements it; platform adapters call it.
type Listener interface {
	// OnCreated reports that the surface h became valid.
	OnCreated(h splathost.Handle)

	// OnResized reports new surface dimensions in pixels.
	OnResized(width, height int)

	// OnDestroyed reports that the surface became invalid.
	OnDestroyed()
}

// Sizer is implemented by handles that know their size at creation time.
// OnCreated records the size without issuing a SurfaceChanged call.
type Sizer interface {
	Size() (width, height int)
}

// Protocol violations.
var (
	// ErrNilHandle is reported when OnCreated receives a nil handle.
	ErrNilHandle = errors.New("surface: nil handle")

	// ErrNotReady is reported when an event requires a live surface
	// but none exists.
	ErrNotReady = errors.New("surface: not ready")

	// ErrNegativeSize is reported when OnResized receives a negative
	// width or height.
	ErrNegativeSize = errors.New("surface: negative size")
)

var (
	// ErrNilBackend is returned by NewTracker when the backend is nil.
	ErrNilBackend = errors.New("surface: nil backend")

	// ErrBackendPanic wraps a panic recovered from a backend call.
	ErrBackendPanic = errors.New("surface: backend panic")
)

// Violation describes an event that arrived in the wrong state.
type Violation struct {
	// Event is the offending event.
	Event Event

	// State is the tracker state when the event arrived.
	State State

	// Err is one of ErrNilHandle, ErrNotReady or ErrNegativeSize.
	Err error
}

// Error implements the error interface.
func (v Violation) Error() string {
	return fmt.Sprintf("%s while %s: %v", v.Event, v.State, v.Err)
}

// Unwrap returns the underlying sentinel error.
func (v Violation) Unwrap() error {
	return v.Err
}

// Stats counts tracker activity since construction.
type Stats struct {
	// Created, Resized and Destroyed count forwarded lifecycle calls.
	Created   uint64
	Resized   uint64
	Destroyed uint64

	// Rendered counts Render boundary calls, failed ones included.
	Rendered uint64

	// Violations counts ignored out-of-state events.
	Violations uint64

	// Failures counts boundary calls that returned an error or panicked.
	Failures uint64
}
