// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// TrackerOption configures a Tracker during creation.
//
// Example:
//
//	t, err := surface.NewTracker(b,
//	    surface.WithViolationHandler(func(v surface.Violation) {
//	        metrics.Violations.Inc()
//	    }))
type TrackerOption func(*trackerOptions)

type trackerOptions struct {
	onViolation func(Violation)
	onFailure   func(Event, error)
}

// WithViolationHandler installs fn to observe protocol violations.
//
// fn runs after the tracker lock is released, on the goroutine that
// delivered the offending event. It may call back into the tracker.
func WithViolationHandler(fn func(Violation)) TrackerOption {
	return func(o *trackerOptions) {
		o.onViolation = fn
	}
}

// WithFailureHandler installs fn to observe failed lifecycle boundary
// calls (SurfaceCreated, SurfaceChanged, SurfaceDestroyed).
//
// Render failures are returned from RenderIfReady instead, so the frame
// pump can report them. Like the violation handler, fn runs outside the
// tracker lock.
func WithFailureHandler(fn func(Event, error)) TrackerOption {
	return func(o *trackerOptions) {
		o.onFailure = fn
	}
}
