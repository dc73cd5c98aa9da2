//go:build !nodesktop

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/splathost"
)

// Window is the surface handle for an ebiten window.
// It implements splathost.Presenter and surface.Sizer.
//
// All methods run on the ebiten game goroutine.
type Window struct {
	width, height int
	frame         *ebiten.Image
}

// Ensure Window implements splathost.Presenter.
var _ splathost.Presenter = (*Window)(nil)

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

func (w *Window) setSize(width, height int) {
	w.width, w.height = width, height
}

// Present copies img into the offscreen frame drawn on the next Draw.
func (w *Window) Present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	if w.frame == nil || w.frame.Bounds().Dx() != b.Dx() || w.frame.Bounds().Dy() != b.Dy() {
		w.release()
		w.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	w.frame.WritePixels(packed(img))
	return nil
}

// packed returns the pixels of img without row padding.
func packed(img *image.RGBA) []byte {
	b := img.Bounds()
	row := 4 * b.Dx()
	if img.Stride == row && len(img.Pix) == row*b.Dy() {
		return img.Pix
	}
	pix := make([]byte, 0, row*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		pix = append(pix, img.Pix[off:off+row]...)
	}
	return pix
}

// draw paints the last presented frame full-bleed onto screen.
func (w *Window) draw(screen *ebiten.Image) {
	if w.frame == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := w.frame.Bounds().Dx(), w.frame.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	if sw != fw || sh != fh {
		op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(w.frame, op)
}

func (w *Window) release() {
	if w.frame != nil {
		w.frame.Deallocate()
		w.frame = nil
	}
}
