//go:build !native || !cgo

package native

import "github.com/gogpu/splathost/backend"

// init registers a nil-returning factory when the native tag is not set.
// This allows code to compile without the native library while still
// allowing backend.Get(backend.BackendNative) to return nil gracefully.
func init() {
	backend.Register(backend.BackendNative, func() backend.Backend {
		return nil
	})
}
