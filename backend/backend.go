package backend

import (
	"errors"

	"github.com/gogpu/splathost"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoSurface is returned by Render when no surface has been created.
	ErrNoSurface = errors.New("backend: no surface")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU preview backend drawn with gg.
	BackendSoftware = "software"
	// BackendNative is the name of the native Gaussian splatting renderer (cgo).
	BackendNative = "native"
)

// Backend is a named splathost.RenderBackend.
//
// Backends must be registered via Register() and are selected via
// Get() or Default(). A backend that holds resources beyond the surface
// also implements io.Closer.
type Backend interface {
	splathost.RenderBackend

	// Name returns the backend identifier (e.g., "software", "native").
	Name() string
}
