// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package terminal

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/splathost"
)

// HalfBlock is the rune painted in every cell: the foreground colors the
// upper pixel and the background colors the lower one.
const HalfBlock = '▀'

// Surface presents frames on a tcell screen.
// It implements splathost.Presenter and surface.Sizer.
type Surface struct {
	screen tcell.Screen

	mu   sync.Mutex
	cols int
	rows int
	grid *image.RGBA
}

// Ensure Surface implements splathost.Presenter.
var _ splathost.Presenter = (*Surface)(nil)

// NewSurface wraps screen with an empty cell grid. Call SetCells once the
// screen is initialized.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// SetCells updates the cell grid size.
func (s *Surface) SetCells(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = max(cols, 0), max(rows, 0)
}

// Cells returns the cell grid size.
func (s *Surface) Cells() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PixelSize(s.cols, s.rows)
}

// PixelSize converts a cell grid size to a pixel size.
func PixelSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Present scales img to the pixel grid and paints it.
func (s *Surface) Present(img *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := PixelSize(s.cols, s.rows)
	if w == 0 || h == 0 || img.Bounds().Empty() {
		return nil
	}

	src := img
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		if s.grid == nil || s.grid.Bounds().Dx() != w || s.grid.Bounds().Dy() != h {
			s.grid = image.NewRGBA(image.Rect(0, 0, w, h))
		}
		draw.ApproxBiLinear.Scale(s.grid, s.grid.Bounds(), img, img.Bounds(), draw.Src, nil)
		src = s.grid
	}

	b := src.Bounds()
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			up := src.RGBAAt(b.Min.X+x, b.Min.Y+2*y)
			lo := src.RGBAAt(b.Min.X+x, b.Min.Y+2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(up.R), int32(up.G), int32(up.B))).
				Background(tcell.NewRGBColor(int32(lo.R), int32(lo.G), int32(lo.B)))
			s.screen.SetContent(x, y, HalfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}
