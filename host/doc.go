// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host composes a surface tracker and a frame pump into the single
// object an application shell talks to.
//
// The shell forwards surface notifications to the Listener methods and its
// visibility changes to Resume and Pause:
//
//	h, err := host.New(b, frame.NewQueue())
//	...
//	h.OnCreated(window)       // surface became valid
//	h.OnResized(w, ht)        // dimensions changed
//	_ = h.Resume()            // start ticking
//	h.Pause()                 // stop ticking
//	h.OnDestroyed()           // surface invalid
//	_ = h.Close()             // pump off, surface gone, backend closed
//
// Close tears down in a fixed order: the pump is deactivated first, then a
// live surface is destroyed, then the backend is closed if it implements
// io.Closer. OnCreated, Resume and Close are serialized, so a Close racing
// either of them leaves no live surface and no active pump. Tracker and pump
// handlers run inside these calls and must not call them again.
package host
