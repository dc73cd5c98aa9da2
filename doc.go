// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package splathost drives a native Gaussian-splatting renderer from a
// host application's drawable surface.
//
// # Overview
//
// splathost is the thin layer between an operating-system display surface
// and a native rendering engine reached through a foreign-function
// boundary. It does three things:
//
//   - tracks the validity window of the drawable surface (created, resized,
//     destroyed)
//   - forwards surface geometry changes to the renderer
//   - runs a per-display-refresh frame pump that asks the renderer for one
//     frame per tick, but only while a valid surface exists
//
// The renderer itself (scene representation, splat sorting, rasterization,
// GPU resources) is opaque. It is reached only through the four methods of
// [RenderBackend].
//
// # Architecture
//
//	platform surface events ──► surface.Tracker ──► RenderBackend
//	                                   ▲              (create/change/destroy)
//	                                   │ RenderIfReady
//	display refresh ──► frame.Queue ──► frame.Pump ──► RenderBackend.Render
//
// The packages are organized as:
//   - splathost: boundary types ([Handle], [RenderBackend]) and logging
//   - surface: the surface lifecycle tracker (guarded state cell)
//   - frame: the frame pump and per-frame schedulers
//   - host: composition of tracker and pump with ordered teardown
//   - backend: backend registry, software fallback, counting decorator
//   - backend/native: cgo binding to the native renderer (build tag "native")
//   - platform/terminal, platform/desktop: concrete drawable surfaces
//
// # Quick Start
//
//	b := backend.Default()
//	h, err := host.New(b, frame.NewQueue())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
//	// From the platform's surface callbacks:
//	h.OnCreated(surf)
//	h.OnResized(w, hgt)
//
//	// From the platform's resume/pause callbacks:
//	if err := h.Resume(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Lifecycle events and frame ticks may arrive on different goroutines.
// A render boundary call never overlaps a destroy boundary call and never
// starts after one has started. See package surface for details.
package splathost

// Version is the current version of the module.
const Version = "0.1.0"
