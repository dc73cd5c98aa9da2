// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop hosts a render backend in an ebiten window.
//
// The window is the drawable surface and the display refresh is the frame
// source: every ebiten Draw dispatches one tick of a frame.Queue, so the
// pump renders at most once per refresh. Layout reports the window size,
// which drives the created and resized notifications. Losing window focus
// pauses the pump; regaining it resumes.
//
// Build with -tags nodesktop to leave this package out on machines
// without a windowing system.
package desktop
