// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "time"

// PumpOption configures a Pump during creation.
type PumpOption func(*pumpOptions)

type pumpOptions struct {
	onError func(error)
}

// WithErrorHandler installs fn to observe render errors.
// fn runs on the tick goroutine, before the pump re-arms.
func WithErrorHandler(fn func(error)) PumpOption {
	return func(o *pumpOptions) {
		o.onError = fn
	}
}

// DefaultInterval is the Ticker refresh interval, 60 ticks per second.
const DefaultInterval = time.Second / 60

// TickerOption configures a Ticker during creation.
type TickerOption func(*tickerOptions)

type tickerOptions struct {
	interval time.Duration
}

func defaultTickerOptions() tickerOptions {
	return tickerOptions{interval: DefaultInterval}
}

// WithInterval sets the time between ticks.
// Non-positive values are ignored.
func WithInterval(d time.Duration) TickerOption {
	return func(o *tickerOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}
