// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "sync"

// Queue is an in-process Scheduler whose ticks are driven by Dispatch.
//
// It suits hosts that own their refresh signal, such as a game loop's draw
// call, and tests that need to step ticks one at a time.
type Queue struct {
	mu      sync.Mutex
	pending []Callback
	closed  bool
}

// Ensure Queue implements Scheduler.
var _ Scheduler = (*Queue)(nil)

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PostFrameCallback queues cb for the next Dispatch.
func (q *Queue) PostFrameCallback(cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrSchedulerClosed
	}
	q.pending = append(q.pending, cb)
	return nil
}

// RemoveFrameCallback drops every pending post of cb.
func (q *Queue) RemoveFrameCallback(cb Callback) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.pending[:0]
	for _, c := range q.pending {
		if c != cb {
			kept = append(kept, c)
		}
	}
	clear(q.pending[len(kept):])
	q.pending = kept
}

// Dispatch runs one tick. Every callback pending when Dispatch starts runs
// exactly once, in post order. Callbacks posted while dispatching run on
// the next tick. Returns the number of callbacks run.
func (q *Queue) Dispatch(frameTimeNanos int64) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cb := range batch {
		cb.DoFrame(frameTimeNanos)
	}
	return len(batch)
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close drops pending callbacks and rejects further posts.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.pending = nil
}
