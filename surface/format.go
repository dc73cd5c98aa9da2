// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/splathost"
)

// FormatProvider is implemented by handles that know their pixel format.
type FormatProvider interface {
	Format() gputypes.TextureFormat
}

// DefaultFormat is the format assumed for handles that do not report one.
const DefaultFormat = gputypes.TextureFormatRGBA8Unorm

// Format returns the pixel format of the surface behind h.
//
// Lookup order:
//   - FormatProvider.Format
//   - gpucontext.DeviceProvider.SurfaceFormat, for surfaces owned by a GPU host
//   - DefaultFormat
//
// Undefined formats are skipped.
func Format(h splathost.Handle) gputypes.TextureFormat {
	if p, ok := h.(FormatProvider); ok {
		if f := p.Format(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	if p, ok := h.(gpucontext.DeviceProvider); ok {
		if f := p.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return DefaultFormat
}

// IsBGRA reports whether f stores pixels in blue-green-red-alpha order.
func IsBGRA(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm
}
