// Package native binds the Gaussian splatting renderer library through cgo.
//
// The renderer exposes four C entry points, one per boundary call:
//
//	void gsplat_on_surface_created(void *window);
//	void gsplat_on_surface_changed(int32_t width, int32_t height);
//	void gsplat_on_surface_destroyed(void);
//	void gsplat_render(void);
//
// Backend forwards splathost.RenderBackend calls to them. The window pointer
// comes from the handle's splathost.NativeHandle implementation
// (ANativeWindow* on Android, CAMetalLayer* on Apple platforms).
//
// # Registration and Selection
//
// The backend is registered when this package is imported with the
// "native" build tag and cgo enabled:
//
//	// Build with: go build -tags native
//	import _ "github.com/gogpu/splathost/backend/native"
//
// The backend is preferred over the software backend when available.
// Priority order: native > software
//
// # Build Tags
//
// This package requires the "native" build tag:
//
//	CGO_ENABLED=1 go build -tags native ./...
//
// Without the tag, a stub implementation is compiled that returns nil from
// the factory, so backend.Get(backend.BackendNative) returns nil and
// backend.Default() falls through to software.
//
// # Dependencies
//
// The renderer library must be on the linker path:
//   - Android: libgaussiansplatting.so (per ABI, in jniLibs)
//   - Linux: libgaussiansplatting.so
//   - macOS: libgaussiansplatting.dylib
//
// # Thread Safety
//
// The renderer keeps process-wide state, so at most one Backend may be
// bound to a surface at a time. Calls must be serialized; surface.Tracker
// does this.
//
// # Error Handling
//
// The C entry points report nothing. Errors returned by this package come
// from argument checks on the Go side:
//
//   - ErrNoNativeWindow: handle does not implement splathost.NativeHandle
//     or returned a nil window
//   - ErrInvalidSize: dimensions do not fit in int32
package native
