// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slices"

	"github.com/olsgo/sash/app/internal/diag"
	"github.com/olsgo/sash/app/internal/wingeom"
	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/pointer"
)

// Application owns the windows of a process and the loop that
// serves them. One goroutine, the UI thread, creates the
// application, creates and drives its windows, and runs the loop;
// nothing here locks, because nothing else may call in.
type Application struct {
	driver  Driver
	windows *Registry
	geom    *wingeom.Store

	funcs    chan func()
	dead     chan struct{}
	deadOnce sync.Once
	running  atomic.Bool

	tickInterval time.Duration
	epoch        time.Time
}

// AppOption alters a new Application.
type AppOption func(*Application)

// WithRegistry injects a window registry, for sharing or
// instrumenting it.
func WithRegistry(r *Registry) AppOption {
	return func(a *Application) { a.windows = r }
}

// WithTickInterval drives every surface from an internal ticker at
// the given interval, for drivers without a display callback.
func WithTickInterval(d time.Duration) AppOption {
	return func(a *Application) { a.tickInterval = d }
}

// WithGeometryStore persists window geometry to the file at path
// for windows created with PersistGeometry.
func WithGeometryStore(path string) AppOption {
	return func(a *Application) { a.geom = wingeom.NewStore(path) }
}

// New creates an application on the given driver. The calling
// goroutine becomes the UI thread.
func New(d Driver, opts ...AppOption) *Application {
	a := &Application{
		driver:  d,
		windows: NewRegistry(),
		funcs:   make(chan func(), 128),
		dead:    make(chan struct{}),
		epoch:   time.Now(),
	}
	for _, o := range opts {
		o(a)
	}
	d.Bind(a)
	return a
}

// Run serves posted functions until Stop. It returns an error only
// when called while already running.
func (a *Application) Run() error {
	if a.running.Swap(true) {
		return errors.New("app: already running")
	}
	defer a.running.Store(false)
	diag.Logf("app", "loop running")
	for {
		select {
		case f := <-a.funcs:
			f()
		case <-a.dead:
			for {
				select {
				case f := <-a.funcs:
					f()
				default:
					diag.Logf("app", "loop stopped")
					return nil
				}
			}
		}
	}
}

// Stop ends Run after draining pending functions. Stopping more
// than once is harmless.
func (a *Application) Stop() {
	a.deadOnce.Do(func() { close(a.dead) })
}

// Post schedules f on the UI thread. While the loop runs it may be
// called from any goroutine; before and after, it runs f inline and
// the caller must be the UI thread.
func (a *Application) Post(f func()) {
	if !a.running.Load() {
		f()
		return
	}
	select {
	case a.funcs <- f:
	case <-a.dead:
		f()
	}
}

// post queues f on the UI thread without ever running it inline,
// reporting whether a serving loop accepted it. Callers off the UI
// thread use this and handle refusal themselves.
func (a *Application) post(f func()) bool {
	if !a.running.Load() {
		return false
	}
	select {
	case a.funcs <- f:
		return true
	case <-a.dead:
		return false
	}
}

// stopIfLastClosed ends the loop when the last window is gone.
// Outside Run there is nothing to stop; tests and setup code
// destroy windows freely.
func (a *Application) stopIfLastClosed() {
	if a.running.Load() && a.windows.Len() == 0 {
		diag.Logf("app", "last window closed")
		a.Stop()
	}
}

// now returns the event timestamp base.
func (a *Application) now() time.Duration {
	return time.Since(a.epoch)
}

// Windows returns the application's window registry.
func (a *Application) Windows() *Registry {
	return a.windows
}

// Delegate returns the callback receiver for the driver's native
// views.
func (a *Application) Delegate() Delegate {
	return Delegate{app: a}
}

// Screens returns the connected screens. The first is the primary.
func (a *Application) Screens() []Screen {
	return slices.Clone(a.driver.Screens())
}

// MaxWindowSize returns the usable size in physical pixels of the
// largest screen.
func (a *Application) MaxWindowSize() image.Point {
	var best image.Point
	for _, s := range a.driver.Screens() {
		sz := s.PxUsable().Size()
		if sz.X*sz.Y > best.X*best.Y {
			best = sz
		}
	}
	return best
}

// CloseAll requests close of every window, in ascending handle
// order.
func (a *Application) CloseAll() {
	a.windows.CloseAll()
}

// Terminate polls every window with its close request, and if none
// vetoes, closes them all and stops the loop. It reports whether
// termination went ahead.
func (a *Application) Terminate() bool {
	if !a.windows.RequestAllToClose() {
		diag.Logf("app", "terminate vetoed")
		return false
	}
	a.CloseAll()
	a.Stop()
	return true
}

// ReadClipboard returns the host clipboard text.
func (a *Application) ReadClipboard() string {
	return a.driver.ReadClipboard()
}

// WriteClipboard replaces the host clipboard text.
func (a *Application) WriteClipboard(s string) {
	a.driver.WriteClipboard(s)
}

// SetCursor selects the pointer image.
func (a *Application) SetCursor(c pointer.Cursor) {
	a.driver.SetCursor(c)
}

// SetCursorVisible shows or hides the pointer.
func (a *Application) SetCursorVisible(v bool) {
	a.driver.SetCursorVisible(v)
}

// CursorPosition returns the pointer position in global physical
// pixels.
func (a *Application) CursorPosition() f32.Point {
	return a.driver.CursorPos()
}

// SetCursorPosition warps the pointer, in global physical pixels.
func (a *Application) SetCursorPosition(p f32.Point) {
	a.driver.SetCursorPos(p)
}

// ShowMessageBox presents a modal host alert.
func (a *Application) ShowMessageBox(title, body string) {
	a.driver.ShowMessage(title, body)
}
