// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/splathost"
)

type formatHandle struct {
	format gputypes.TextureFormat
}

func (h formatHandle) Format() gputypes.TextureFormat { return h.format }

// deviceHandle is a DeviceProvider without a real GPU behind it.
type deviceHandle struct {
	format gputypes.TextureFormat
}

func (deviceHandle) Device() gpucontext.Device               { return nil }
func (deviceHandle) Queue() gpucontext.Queue                 { return nil }
func (deviceHandle) Adapter() gpucontext.Adapter             { return nil }
func (deviceHandle) AdapterInfo() gpucontext.AdapterInfo     { return gpucontext.AdapterInfo{} }
func (d deviceHandle) SurfaceFormat() gputypes.TextureFormat { return d.format }

var _ gpucontext.DeviceProvider = deviceHandle{}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		h    splathost.Handle
		want gputypes.TextureFormat
	}{
		{"nil handle", nil, DefaultFormat},
		{"plain handle", &mockHandle{}, DefaultFormat},
		{"format provider", formatHandle{gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
		{"undefined format provider", formatHandle{gputypes.TextureFormatUndefined}, DefaultFormat},
		{"device provider", deviceHandle{gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
		{"null device provider", deviceHandle{gputypes.TextureFormatUndefined}, DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.h); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBGRA(t *testing.T) {
	if !IsBGRA(gputypes.TextureFormatBGRA8Unorm) {
		t.Error("IsBGRA(BGRA8Unorm) = false, want true")
	}
	if IsBGRA(gputypes.TextureFormatRGBA8Unorm) {
		t.Error("IsBGRA(RGBA8Unorm) = true, want false")
	}
}
