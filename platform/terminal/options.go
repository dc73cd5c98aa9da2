// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package terminal

import (
	"time"

	"github.com/gogpu/splathost/frame"
	"github.com/gogpu/splathost/host"
)

// Option configures an App during creation.
type Option func(*options)

type options struct {
	interval time.Duration
	host     []host.Option
}

func defaultOptions() options {
	return options{interval: frame.DefaultInterval}
}

// WithInterval sets the time between frame ticks.
// Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithHostOptions passes opts to the host.
func WithHostOptions(opts ...host.Option) Option {
	return func(o *options) {
		o.host = append(o.host, opts...)
	}
}
