//go:build !nodesktop

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import "github.com/gogpu/splathost/host"

// Option configures a Game during creation.
type Option func(*options)

type options struct {
	title         string
	width, height int
	host          []host.Option
}

func defaultOptions() options {
	return options{title: "splatview", width: 960, height: 540}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithWindowSize sets the initial window size in device-independent
// pixels. Non-positive values are ignored.
func WithWindowSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithHostOptions passes opts to the host.
func WithHostOptions(opts ...host.Option) Option {
	return func(o *options) {
		o.host = append(o.host, opts...)
	}
}
