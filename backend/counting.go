package backend

import (
	"io"
	"sync/atomic"

	"github.com/gogpu/splathost"
)

// Counts is a snapshot of boundary calls made through a Counting backend.
type Counts struct {
	Created   uint64
	Changed   uint64
	Destroyed uint64
	Rendered  uint64
	Errors    uint64
}

// Counting wraps a backend and counts each boundary call.
// It is safe to read Counts while calls are in progress.
type Counting struct {
	inner splathost.RenderBackend

	created   atomic.Uint64
	changed   atomic.Uint64
	destroyed atomic.Uint64
	rendered  atomic.Uint64
	errors    atomic.Uint64
}

// Ensure Counting implements Backend and io.Closer.
var (
	_ Backend   = (*Counting)(nil)
	_ io.Closer = (*Counting)(nil)
)

// NewCounting wraps inner.
func NewCounting(inner splathost.RenderBackend) *Counting {
	return &Counting{inner: inner}
}

// Name returns the wrapped backend's name, or "counting" if it has none.
func (c *Counting) Name() string {
	if n, ok := c.inner.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "counting"
}

// Unwrap returns the wrapped backend.
func (c *Counting) Unwrap() splathost.RenderBackend {
	return c.inner
}

// SurfaceCreated implements splathost.RenderBackend.
func (c *Counting) SurfaceCreated(h splathost.Handle) error {
	c.created.Add(1)
	return c.count(c.inner.SurfaceCreated(h))
}

// SurfaceChanged implements splathost.RenderBackend.
func (c *Counting) SurfaceChanged(width, height int) error {
	c.changed.Add(1)
	return c.count(c.inner.SurfaceChanged(width, height))
}

// SurfaceDestroyed implements splathost.RenderBackend.
func (c *Counting) SurfaceDestroyed() error {
	c.destroyed.Add(1)
	return c.count(c.inner.SurfaceDestroyed())
}

// Render implements splathost.RenderBackend.
func (c *Counting) Render() error {
	c.rendered.Add(1)
	return c.count(c.inner.Render())
}

// Close closes the wrapped backend if it implements io.Closer.
func (c *Counting) Close() error {
	if cl, ok := c.inner.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Counts returns the current counters.
func (c *Counting) Counts() Counts {
	return Counts{
		Created:   c.created.Load(),
		Changed:   c.changed.Load(),
		Destroyed: c.destroyed.Load(),
		Rendered:  c.rendered.Load(),
		Errors:    c.errors.Load(),
	}
}

func (c *Counting) count(err error) error {
	if err != nil {
		c.errors.Add(1)
	}
	return err
}
