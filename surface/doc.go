// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface tracks the lifecycle of a platform drawable surface.
//
// A Tracker owns the surface state cell: whether a surface currently exists
// (StateAbsent or StateReady), the borrowed handle, and the last reported
// dimensions. Platform surface callbacks drive it through the [Listener]
// methods; each transition is forwarded to a [splathost.RenderBackend].
//
// # State Machine
//
//	            OnCreated
//	  Absent ─────────────► Ready ◄──┐
//	    ▲                     │      │ OnResized
//	    │     OnDestroyed     │      │
//	    └─────────────────────┴──────┘
//
// Events that do not fit the current state (resize or destroy while absent,
// a nil handle) are protocol violations. They are ignored, logged, counted
// in [Stats], and passed to the handler installed with
// [WithViolationHandler]. None of them panics or returns an error.
//
// # Linearization
//
// One mutex guards the state cell and is held across every boundary call.
// RenderIfReady checks readiness and calls Render under that same lock, so
//
//   - no Render starts after SurfaceDestroyed has started, and
//   - no SurfaceDestroyed starts while a Render is in progress.
//
// The frame pump therefore never needs to know about surface teardown.
//
// # Usage
//
//	t, err := surface.NewTracker(b)
//	if err != nil {
//	    return err
//	}
//
//	t.OnCreated(handle)     // surfaceCreated
//	t.OnResized(w, h)       // surfaceChanged
//	rendered, err := t.RenderIfReady()
//	t.OnDestroyed()         // surfaceDestroyed
package surface
