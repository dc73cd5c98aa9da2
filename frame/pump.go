// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"sync"

	"github.com/gogpu/splathost"
)

// Pump is a self-rescheduling frame callback.
//
// While active it holds exactly one pending registration with its
// scheduler. Activate and Deactivate are the only operations that change
// the registration, and both are idempotent.
type Pump struct {
	renderer  Renderer
	scheduler Scheduler
	opts      pumpOptions

	mu      sync.Mutex
	active  bool
	pending *registration

	statsMu sync.Mutex
	stats   Stats
}

// registration is one post of the pump. A registration that is no longer
// the pump's pending one is stale and its tick does nothing.
type registration struct {
	pump *Pump
}

// DoFrame implements Callback.
func (r *registration) DoFrame(frameTimeNanos int64) {
	r.pump.tick(r, frameTimeNanos)
}

// Stats counts pump activity since construction.
type Stats struct {
	// Ticks counts ticks that ran while the pump was active.
	Ticks uint64

	// Frames counts ticks that attempted a render.
	Frames uint64

	// Skipped counts ticks with no surface to render to.
	Skipped uint64

	// Failures counts renders that returned an error.
	Failures uint64

	// LastErr is the most recent render error, or nil.
	LastErr error
}

// NewPump creates an inactive pump that renders through r on ticks
// delivered by s.
func NewPump(r Renderer, s Scheduler, opts ...PumpOption) (*Pump, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if s == nil {
		return nil, ErrNilScheduler
	}
	var o pumpOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Pump{renderer: r, scheduler: s, opts: o}, nil
}

// Activate registers the pump for the next tick.
//
// Calling Activate on an active pump does nothing. If the scheduler
// rejects the post, the error is returned and the pump stays inactive.
func (p *Pump) Activate() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}
	if err := p.postLocked(); err != nil {
		return fmt.Errorf("frame: activate: %w", err)
	}
	p.active = true
	splathost.Logger().Info("frame: pump activated")
	return nil
}

// Deactivate removes the pending registration.
//
// A tick already in progress finishes but does not re-arm. Calling
// Deactivate on an inactive pump does nothing.
func (p *Pump) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	if p.pending != nil {
		p.scheduler.RemoveFrameCallback(p.pending)
		p.pending = nil
	}
	p.active = false
	splathost.Logger().Info("frame: pump deactivated")
}

// IsActive reports whether the pump is activated.
func (p *Pump) IsActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// tick runs one tick for reg: render if ready, then re-arm.
func (p *Pump) tick(reg *registration, frameTimeNanos int64) {
	p.mu.Lock()
	if reg != p.pending {
		p.mu.Unlock()
		splathost.Logger().Debug("frame: stale tick ignored")
		return
	}
	p.pending = nil
	p.mu.Unlock()

	defer p.rearm()

	rendered, err := p.renderer.RenderIfReady()

	p.statsMu.Lock()
	p.stats.Ticks++
	switch {
	case !rendered:
		p.stats.Skipped++
	case err != nil:
		p.stats.Frames++
		p.stats.Failures++
		p.stats.LastErr = err
	default:
		p.stats.Frames++
	}
	p.statsMu.Unlock()

	if !rendered {
		splathost.Logger().Debug("frame: no surface, skipping", "time", frameTimeNanos)
		return
	}
	if err != nil {
		splathost.Logger().Warn("frame: render failed", "err", err)
		if p.opts.onError != nil {
			p.opts.onError(err)
		}
	}
}

// rearm posts the next tick if the pump is still active and has no
// pending registration. Deactivate followed by Activate during a tick
// leaves the registration made by Activate in place.
func (p *Pump) rearm() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active || p.pending != nil {
		return
	}
	if err := p.postLocked(); err != nil {
		p.active = false
		splathost.Logger().Warn("frame: re-arm failed, pump stopped", "err", err)
	}
}

// postLocked posts a fresh registration. Must be called with p.mu held.
func (p *Pump) postLocked() error {
	reg := &registration{pump: p}
	if err := p.scheduler.PostFrameCallback(reg); err != nil {
		return err
	}
	p.pending = reg
	return nil
}

// Stats returns a snapshot of the pump counters.
func (p *Pump) Stats() Stats {
	p.statsMu.Lock()
	defer p.statsMu.Unlock()
	return p.stats
}
