//go:build native && cgo

package native

/*
#cgo LDFLAGS: -lgaussiansplatting
#include <stdint.h>

void gsplat_on_surface_created(void *window);
void gsplat_on_surface_changed(int32_t width, int32_t height);
void gsplat_on_surface_destroyed(void);
void gsplat_render(void);
*/
import "C"

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/backend"
)

// init registers the native backend on package import.
func init() {
	backend.Register(backend.BackendNative, func() backend.Backend {
		return &Backend{}
	})
}

// Backend forwards boundary calls to the native renderer.
type Backend struct {
	window unsafe.Pointer
}

// NewBackend creates a native backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendNative
}

// SurfaceCreated passes the handle's native window to the renderer, which
// creates its Vulkan surface and swapchain. It may block on driver setup.
func (b *Backend) SurfaceCreated(h splathost.Handle) error {
	nh, ok := h.(splathost.NativeHandle)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoNativeWindow, h)
	}
	w := nh.NativeWindow()
	if w == nil {
		return ErrNoNativeWindow
	}
	b.window = w
	C.gsplat_on_surface_created(w)
	return nil
}

// SurfaceChanged forwards new dimensions.
func (b *Backend) SurfaceChanged(width, height int) error {
	if width < 0 || height < 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	C.gsplat_on_surface_changed(C.int32_t(width), C.int32_t(height))
	return nil
}

// SurfaceDestroyed releases the renderer's surface-bound resources.
func (b *Backend) SurfaceDestroyed() error {
	C.gsplat_on_surface_destroyed()
	b.window = nil
	return nil
}

// Render draws one frame.
func (b *Backend) Render() error {
	C.gsplat_render()
	return nil
}
