// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package splathost

import (
	"image"
	"unsafe"
)

// Handle is an opaque reference to a platform drawable surface.
//
// A Handle is owned by the platform. splathost borrows it between the
// surface-created and surface-destroyed events and passes it to
// [RenderBackend.SurfaceCreated]; it never dereferences it. Backends
// discover what a handle can do through optional interfaces such as
// [NativeHandle] and [Presenter].
type Handle any

// NativeHandle is implemented by handles that wrap a raw platform window
// pointer (ANativeWindow*, CAMetalLayer*, HWND, ...).
//
// The pointer is only valid while the surface exists.
type NativeHandle interface {
	NativeWindow() unsafe.Pointer
}

// Presenter is implemented by handles that accept CPU-rendered frames.
//
// Present copies img to the surface. The image is owned by the caller and
// may be reused after Present returns.
type Presenter interface {
	Present(img *image.RGBA) error
}

// RenderBackend is the boundary to the rendering engine.
//
// The four methods mirror the native renderer's entry points. splathost
// calls them in a strict order: SurfaceCreated, then any number of
// SurfaceChanged and Render calls, then SurfaceDestroyed. No two calls
// overlap, and Render is never called without a live surface.
//
// Returned errors are diagnostics only. splathost logs and counts them but
// never retries a call or changes its own state because of one.
type RenderBackend interface {
	// SurfaceCreated allocates surface-bound resources (swapchain,
	// framebuffers). It may block on driver setup.
	SurfaceCreated(h Handle) error

	// SurfaceChanged resizes size-dependent resources. Zero width or
	// height is legal; the backend should skip drawing until a non-zero
	// size arrives.
	SurfaceChanged(width, height int) error

	// SurfaceDestroyed releases surface-bound resources. The handle passed
	// to SurfaceCreated must not be used after this call.
	SurfaceDestroyed() error

	// Render draws one frame to the current surface.
	Render() error
}
