// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"time"

	"github.com/olsgo/sash/app/internal/diag"
	"github.com/olsgo/sash/f32"
)

// PixelFormat selects the pixel layout of a surface's drawables.
type PixelFormat uint8

const (
	// PixelFormatBGRA8 is 32-bit BGRA with 8 bits per channel, the
	// native composition format.
	PixelFormatBGRA8 PixelFormat = iota
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatBGRA8:
		return "BGRA8"
	default:
		return "unknown"
	}
}

// SurfaceConfig describes how a window's surface presents.
type SurfaceConfig struct {
	// Format is the drawable pixel format.
	Format PixelFormat
	// QueueDepth is the maximum number of in-flight drawables.
	QueueDepth int
	// Async presents without blocking the caller.
	Async bool
	// DisplaySync aligns presentation with the display refresh.
	DisplaySync bool
	// Opaque marks the surface as fully covering its bounds.
	Opaque bool
}

func defaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{
		Format:      PixelFormatBGRA8,
		QueueDepth:  2,
		Async:       true,
		DisplaySync: true,
		Opaque:      true,
	}
}

// Surface owns the drawable backing a window and the display link
// that paces its redraws. All methods except DisplayTick must be
// called on the UI thread.
type Surface struct {
	app   *Application
	owner *Window
	cfg   SurfaceConfig

	scale    float32
	bounds   f32.Point
	drawable image.Point

	needsDisplay bool
	ticks        uint64
	frames       uint64
	epoch        time.Time
	lastDur      time.Duration

	link *displayLink
}

func newSurface(a *Application, w *Window, bounds f32.Point, scale float32) *Surface {
	s := &Surface{
		app:   a,
		owner: w,
		cfg:   defaultSurfaceConfig(),
		epoch: time.Now(),
		link:  newDisplayLink(),
	}
	s.resizeDrawable(bounds, scale)
	if a.tickInterval > 0 {
		s.link.start(a, s, a.tickInterval)
	}
	return s
}

// Config returns the presentation parameters of the surface.
func (s *Surface) Config() SurfaceConfig {
	return s.cfg
}

// DrawableSize returns the current drawable size in physical
// pixels.
func (s *Surface) DrawableSize() image.Point {
	return s.drawable
}

// FrameCount returns the number of frames drawn so far.
func (s *Surface) FrameCount() uint64 {
	return s.frames
}

// TickCount returns the number of display ticks processed so far.
// Ticks that found nothing to redraw still count.
func (s *Surface) TickCount() uint64 {
	return s.ticks
}

// LastFrameDuration returns how long the most recent draw callback
// ran.
func (s *Surface) LastFrameDuration() time.Duration {
	return s.lastDur
}

// DisplayTick records one display refresh. Unlike the rest of the
// surface it may be called from any goroutine; refreshes arriving
// while one is already pending are coalesced, and refreshes arriving
// while the application loop is not serving are dropped.
func (s *Surface) DisplayTick() {
	s.link.tick(s.app, s)
}

// resizeDrawable recomputes the drawable size from logical bounds
// and the backing scale.
func (s *Surface) resizeDrawable(bounds f32.Point, scale float32) {
	s.bounds = bounds
	s.scale = scale
	s.drawable = image.Pt(round(bounds.X*scale), round(bounds.Y*scale))
	diag.Logf("surface", "drawable %dx%d (bounds %v scale %g)", s.drawable.X, s.drawable.Y, bounds, scale)
}

// uiDisplayTick processes a display refresh delivered on the UI
// thread itself, consuming any refresh still queued for it.
func (s *Surface) uiDisplayTick() {
	s.link.drain()
	s.uiTick()
}

// uiTick processes one coalesced display refresh on the UI thread.
func (s *Surface) uiTick() {
	w := s.owner
	if w == nil {
		// The owning window died between the tick and its delivery.
		return
	}
	s.ticks++
	if !w.Visible() {
		return
	}
	if s.drawable.X == 0 || s.drawable.Y == 0 {
		return
	}
	s.needsDisplay = true
	w.view.SetNeedsDisplay()
}

// redraw runs the owner's draw callback once. Called when the host
// asks the view to paint.
func (s *Surface) redraw() {
	w := s.owner
	if w == nil {
		return
	}
	if !w.Visible() {
		diag.Logf("surface", "skip redraw of hidden view %#x", uintptr(w.NativeHandle()))
		return
	}
	if s.drawable.X == 0 || s.drawable.Y == 0 {
		diag.Logf("surface", "skip redraw of empty view %#x", uintptr(w.NativeHandle()))
		return
	}
	s.needsDisplay = false
	if draw := w.handlers.Draw; draw != nil {
		start := time.Now()
		draw(time.Since(s.epoch).Seconds())
		s.lastDur = time.Since(start)
		if diag.Enabled() {
			diag.Logf("surface", "frame %d of view %#x took %v", s.frames+1, uintptr(w.NativeHandle()), s.lastDur)
		}
	}
	s.frames++
}

// teardown detaches the surface from its window. Ticks already in
// flight find a nil owner and fall out.
func (s *Surface) teardown() {
	s.link.close()
	s.owner = nil
}

// displayLink forwards display refreshes to the UI thread. The
// single-entry channel coalesces refreshes that arrive faster than
// the UI thread drains them, so at most one tick is ever queued.
type displayLink struct {
	redraw chan struct{}
	stop   chan struct{}
}

func newDisplayLink() *displayLink {
	return &displayLink{
		redraw: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
}

func (l *displayLink) tick(a *Application, s *Surface) {
	select {
	case l.redraw <- struct{}{}:
	default:
		// A tick is already pending.
		return
	}
	posted := a.post(func() {
		l.drain()
		s.uiTick()
	})
	if !posted {
		// No loop to take the tick; drop it.
		l.drain()
	}
}

// drain removes a pending refresh, if any.
func (l *displayLink) drain() {
	select {
	case <-l.redraw:
	default:
	}
}

// start drives the link from a ticker instead of a host display
// callback. Used when no host paces the surface. Ticks before the
// application loop runs are dropped; there is no thread to take
// them.
func (l *displayLink) start(a *Application, s *Surface, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				l.tick(a, s)
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *displayLink) close() {
	select {
	case <-l.stop:
		return
	default:
	}
	close(l.stop)
}
