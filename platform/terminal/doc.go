// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package terminal hosts a render backend on a tcell screen.
//
// The screen is the drawable surface. Each cell shows two vertically
// stacked pixels with the upper half block '▀', so a screen of cols×rows
// cells is a surface of cols×(rows*2) pixels. Frames are ticked by a
// frame.Ticker since terminals have no vsync signal.
//
// Keys:
//
//	p           pause or resume rendering
//	q, Esc, ^C  quit
package terminal
