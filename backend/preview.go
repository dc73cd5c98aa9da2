package backend

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ClearColor is the background of every frame, matching the native
// renderer's clear pass.
var ClearColor = gg.RGB(0.07, 0.07, 0.10)

const (
	previewSplats = 24
	// Radians per frame.
	previewSpeed = 0.02
)

// splatFalloff approximates a Gaussian footprint with nested ellipses,
// outermost first: scale of the splat radius and alpha of the layer.
var splatFalloff = [...]struct{ scale, alpha float64 }{
	{1.0, 0.12},
	{0.7, 0.22},
	{0.45, 0.35},
	{0.2, 0.55},
}

// drawPreview draws frame n of the placeholder splat field: a ring of
// soft elliptical splats orbiting the surface center, depth-scaled so the
// ring reads as tilted. It stops at the first failed fill.
func drawPreview(dc *gg.Context, n uint64) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.ClearWithColor(ClearColor)

	cx, cy := w/2, h/2
	orbit := 0.32 * math.Min(w, h)
	base := 0.07 * math.Min(w, h)
	phase := float64(n) * previewSpeed

	for i := 0; i < previewSplats; i++ {
		theta := phase + 2*math.Pi*float64(i)/previewSplats
		depth := 0.5 + 0.5*math.Sin(theta)
		x := cx + orbit*math.Cos(theta)
		y := cy + 0.45*orbit*math.Sin(theta)
		rx := base * (0.6 + 0.6*depth)
		ry := rx * 0.7

		r := 0.5 + 0.5*math.Cos(theta)
		g := 0.5 + 0.5*math.Cos(theta+2*math.Pi/3)
		b := 0.5 + 0.5*math.Cos(theta+4*math.Pi/3)

		for _, f := range splatFalloff {
			dc.SetRGBA(r, g, b, f.alpha*(0.4+0.6*depth))
			dc.DrawEllipse(x, y, rx*f.scale, ry*f.scale)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("backend: fill splat %d: %w", i, err)
			}
		}
	}
	return nil
}
