// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/surface"
)

// Option configures a Host during creation.
type Option func(*options)

type options struct {
	tracker []surface.TrackerOption
	pump    []frame.PumpOption
}

// WithTrackerOptions passes opts to the surface tracker.
func WithTrackerOptions(opts ...surface.TrackerOption) Option {
	return func(o *options) {
		o.tracker = append(o.tracker, opts...)
	}
}

// WithPumpOptions passes opts to the frame pump.
func WithPumpOptions(opts ...frame.PumpOption) Option {
	return func(o *options) {
		o.pump = append(o.pump, opts...)
	}
}
