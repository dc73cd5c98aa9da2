// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"time"

	"github.com/gogpu/splathost"
)

// Ticker is a Queue dispatched at a fixed refresh interval.
type Ticker struct {
	*Queue
	interval time.Duration
}

// NewTicker creates a Ticker. The interval defaults to DefaultInterval.
func NewTicker(opts ...TickerOption) *Ticker {
	o := defaultTickerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Ticker{Queue: NewQueue(), interval: o.interval}
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run dispatches the queue on every tick until ctx is done, then returns
// ctx.Err(). Ticks that fall behind are dropped, not queued.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	splathost.Logger().Debug("frame: ticker started", "interval", t.interval)
	for {
		select {
		case <-ctx.Done():
			splathost.Logger().Debug("frame: ticker stopped", "err", ctx.Err())
			return ctx.Err()
		case now := <-tk.C:
			t.Dispatch(now.UnixNano())
		}
	}
}
