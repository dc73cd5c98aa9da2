package backend

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/splathost"
	"github.com/gogpu/splathost/surface"
)

// SoftwareBackend is a CPU preview backend.
// It draws a placeholder splat field with gg and presents it through the
// surface's splathost.Presenter.
//
// Calls are serialized by the surface tracker; SoftwareBackend itself is
// not safe for concurrent use.
type SoftwareBackend struct {
	created   bool
	presenter splathost.Presenter
	bgra      bool

	dc     *gg.Context
	width  int
	height int
	frame  uint64

	// draw paints one frame; nil means drawPreview.
	draw func(dc *gg.Context, n uint64) error
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// SurfaceCreated binds the backend to h.
// Handles that do not implement splathost.Presenter are drawn to but
// never presented.
func (b *SoftwareBackend) SurfaceCreated(h splathost.Handle) error {
	b.presenter, _ = h.(splathost.Presenter)
	b.bgra = surface.IsBGRA(surface.Format(h))
	b.created = true
	b.frame = 0

	b.width, b.height = 0, 0
	if s, ok := h.(surface.Sizer); ok {
		w, ht := s.Size()
		return b.resize(w, ht)
	}
	return nil
}

// SurfaceChanged resizes the drawing context.
func (b *SoftwareBackend) SurfaceChanged(width, height int) error {
	if !b.created {
		return ErrNoSurface
	}
	return b.resize(width, height)
}

// resize creates or resizes the drawing context as needed.
// Zero-area sizes are recorded but keep the current context.
func (b *SoftwareBackend) resize(width, height int) error {
	b.width, b.height = width, height
	if width <= 0 || height <= 0 {
		return nil
	}
	if b.dc == nil {
		b.dc = gg.NewContext(width, height)
		return nil
	}
	if err := b.dc.Resize(width, height); err != nil {
		return fmt.Errorf("backend: resize: %w", err)
	}
	return nil
}

// SurfaceDestroyed releases surface-bound state.
func (b *SoftwareBackend) SurfaceDestroyed() error {
	b.created = false
	b.presenter = nil
	b.width, b.height = 0, 0
	return b.release()
}

// Render draws and presents one frame. A zero-area surface is skipped.
// A drawing error is returned without presenting.
func (b *SoftwareBackend) Render() error {
	if !b.created {
		return ErrNoSurface
	}
	if b.width <= 0 || b.height <= 0 || b.dc == nil {
		return nil
	}

	draw := b.draw
	if draw == nil {
		draw = drawPreview
	}
	if err := draw(b.dc, b.frame); err != nil {
		return err
	}
	b.frame++

	if b.presenter == nil {
		return nil
	}
	img := toRGBA(b.dc.Image())
	if b.bgra {
		swapRB(img)
	}
	if err := b.presenter.Present(img); err != nil {
		return fmt.Errorf("backend: present: %w", err)
	}
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() error {
	b.created = false
	b.presenter = nil
	return b.release()
}

func (b *SoftwareBackend) release() error {
	if b.dc == nil {
		return nil
	}
	err := b.dc.Close()
	b.dc = nil
	return err
}

// Frame returns the number of frames drawn since the surface was created.
func (b *SoftwareBackend) Frame() uint64 {
	return b.frame
}

// toRGBA returns src as *image.RGBA, copying only when it has another type.
func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// swapRB converts RGBA pixels to BGRA in place.
func swapRB(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
