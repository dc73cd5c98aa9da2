// Package backend provides the render backends a host can drive.
//
// A backend receives the four boundary calls of splathost.RenderBackend
// (surface created, changed, destroyed and render). The native Gaussian
// splatting renderer is one backend; a software preview drawn with gg is
// another, used when the native library is not linked.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/splathost/backend"
//
// The native backend registers itself when its package is imported; without
// the "native" build tag its factory returns nil:
//
//	import _ "github.com/gogpu/splathost/backend/native"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("software")
//
// # Counting
//
// Counting wraps any backend and counts boundary calls, for overlays and
// tests:
//
//	c := backend.NewCounting(backend.Default())
//	h, _ := host.New(c, frame.NewQueue())
//	...
//	fmt.Println(c.Counts().Rendered)
//
// # Available Backends
//
// - "native": Gaussian splatting renderer via cgo (build tag "native")
// - "software": gg preview (always available)
package backend
