// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "errors"

// Callback is a unit of work run on a scheduler tick.
type Callback interface {
	// DoFrame runs one tick. frameTimeNanos is the time the tick was
	// scheduled for, in nanoseconds.
	DoFrame(frameTimeNanos int64)
}

// Scheduler delivers one-shot frame callbacks.
//
// PostFrameCallback arranges for cb to run once on the next tick. It must not
// run cb synchronously. RemoveFrameCallback cancels pending posts of cb; it is
// a no-op if none are pending. Callbacks are compared with ==, so they must
// be comparable (pointer receivers are).
type Scheduler interface {
	PostFrameCallback(cb Callback) error
	RemoveFrameCallback(cb Callback)
}

// Renderer renders a frame when a surface exists.
// *surface.Tracker implements it.
type Renderer interface {
	// RenderIfReady reports whether a render was attempted and the error
	// it returned.
	RenderIfReady() (bool, error)
}

var (
	// ErrNilRenderer is returned by NewPump when the renderer is nil.
	ErrNilRenderer = errors.New("frame: nil renderer")

	// ErrNilScheduler is returned by NewPump when the scheduler is nil.
	ErrNilScheduler = errors.New("frame: nil scheduler")

	// ErrNilCallback is returned when posting a nil callback.
	ErrNilCallback = errors.New("frame: nil callback")

	// ErrSchedulerClosed is returned when posting to a closed scheduler.
	ErrSchedulerClosed = errors.New("frame: scheduler closed")
)
