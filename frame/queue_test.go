// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// countingCallback counts ticks and optionally re-posts itself.
type countingCallback struct {
	n      atomic.Int64
	last   atomic.Int64
	repost Scheduler
}

func (c *countingCallback) DoFrame(frameTimeNanos int64) {
	c.n.Add(1)
	c.last.Store(frameTimeNanos)
	if c.repost != nil {
		_ = c.repost.PostFrameCallback(c)
	}
}

func TestQueuePostNil(t *testing.T) {
	q := NewQueue()
	if err := q.PostFrameCallback(nil); !errors.Is(err, ErrNilCallback) {
		t.Errorf("PostFrameCallback(nil) error = %v, want %v", err, ErrNilCallback)
	}
}

func TestQueueDispatchOneShot(t *testing.T) {
	q := NewQueue()
	a, b := &countingCallback{}, &countingCallback{}
	_ = q.PostFrameCallback(a)
	_ = q.PostFrameCallback(b)

	if n := q.Dispatch(42); n != 2 {
		t.Errorf("Dispatch() = %d, want 2", n)
	}
	if n := q.Dispatch(43); n != 0 {
		t.Errorf("second Dispatch() = %d, want 0", n)
	}
	if a.n.Load() != 1 || b.n.Load() != 1 {
		t.Errorf("ticks = (%d, %d), want (1, 1)", a.n.Load(), b.n.Load())
	}
	if a.last.Load() != 42 {
		t.Errorf("frame time = %d, want 42", a.last.Load())
	}
}

func TestQueueRepostRunsNextTick(t *testing.T) {
	q := NewQueue()
	cb := &countingCallback{repost: q}
	_ = q.PostFrameCallback(cb)

	for i := 0; i < 3; i++ {
		if n := q.Dispatch(int64(i)); n != 1 {
			t.Fatalf("Dispatch() #%d = %d, want 1", i, n)
		}
	}
	if got := cb.n.Load(); got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}
}

func TestQueueRemove(t *testing.T) {
	q := NewQueue()
	a, b := &countingCallback{}, &countingCallback{}
	_ = q.PostFrameCallback(a)
	_ = q.PostFrameCallback(b)
	_ = q.PostFrameCallback(a)

	q.RemoveFrameCallback(a)
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	q.RemoveFrameCallback(&countingCallback{})

	q.Dispatch(0)
	if a.n.Load() != 0 || b.n.Load() != 1 {
		t.Errorf("ticks = (%d, %d), want (0, 1)", a.n.Load(), b.n.Load())
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	cb := &countingCallback{}
	_ = q.PostFrameCallback(cb)

	q.Close()

	if q.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", q.Len())
	}
	if err := q.PostFrameCallback(cb); !errors.Is(err, ErrSchedulerClosed) {
		t.Errorf("PostFrameCallback() after Close error = %v, want %v", err, ErrSchedulerClosed)
	}
	if n := q.Dispatch(0); n != 0 {
		t.Errorf("Dispatch() after Close = %d, want 0", n)
	}
}

func TestTickerInterval(t *testing.T) {
	tests := []struct {
		name string
		opts []TickerOption
		want time.Duration
	}{
		{"default", nil, DefaultInterval},
		{"custom", []TickerOption{WithInterval(time.Second / 30)}, time.Second / 30},
		{"zero ignored", []TickerOption{WithInterval(0)}, DefaultInterval},
		{"negative ignored", []TickerOption{WithInterval(-time.Second)}, DefaultInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTicker(tt.opts...).Interval(); got != tt.want {
				t.Errorf("Interval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickerRun(t *testing.T) {
	tk := NewTicker(WithInterval(time.Millisecond))
	cb := &countingCallback{repost: tk}
	if err := tk.PostFrameCallback(cb); err != nil {
		t.Fatalf("PostFrameCallback() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tk.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if cb.n.Load() == 0 {
		t.Error("Run() dispatched no ticks")
	}
}

func TestTickerDrivesPump(t *testing.T) {
	tk := NewTicker(WithInterval(time.Millisecond))
	r := &mockRenderer{ready: true}
	p := newTestPump(t, r, tk)
	if err := p.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tk.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for r.count() < 3 {
		select {
		case <-deadline:
			t.Fatal("pump did not render 3 frames")
		case <-time.After(time.Millisecond):
		}
	}
	p.Deactivate()
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}
