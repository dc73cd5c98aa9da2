// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame drives per-refresh rendering.
//
// A Scheduler delivers one-shot frame callbacks, the way a display
// choreographer does: a posted Callback fires once on the next tick and must
// be posted again to fire on the tick after. Pump is a Callback that
// re-posts itself on every tick it runs, so once activated it keeps running
// until it is deactivated.
//
// # Tick
//
// Each tick the Pump asks its Renderer to render if a surface exists:
//
//	DoFrame(t)
//	  ├─ RenderIfReady()   render at most once
//	  └─ re-post           always, even after a render error
//
// Render errors are counted and reported through the error handler; they
// never stop the pump.
//
// # Schedulers
//
// Queue is an in-process scheduler whose ticks are driven by the caller
// through Dispatch. Ticker wraps a Queue with a time.Ticker for hosts that
// have no vsync source.
//
//	tk := frame.NewTicker(frame.WithInterval(time.Second / 30))
//	pump, _ := frame.NewPump(tracker, tk)
//	_ = pump.Activate()
//	go tk.Run(ctx)
//
// # Thread Safety
//
// Activate, Deactivate and Stats may be called from any goroutine. The Pump
// never holds its own lock while rendering.
package frame
