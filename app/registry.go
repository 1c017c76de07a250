// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/olsgo/sash/app/internal/diag"
)

// Registry tracks the live windows of an Application, keyed by
// native view handle. It never owns a window: entries are added by
// the window's constructor and removed before its destruction
// completes, so a handle found here is guaranteed valid.
//
// A Registry is owned by the UI thread. None of its methods lock;
// calling them from another goroutine is a contract violation the
// registry does not detect.
type Registry struct {
	windows map[ViewID]*Window
}

// NewRegistry returns an empty registry. Application creates one
// itself unless a shared or instrumented registry is injected with
// WithRegistry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[ViewID]*Window)}
}

// Add registers w under its native handle. Adding a handle twice is
// a logic error in the caller; it is traced and ignored.
func (r *Registry) Add(w *Window) {
	id := w.NativeHandle()
	if _, ok := r.windows[id]; ok {
		diag.Logf("registry", "duplicate add of view %#x", uintptr(id))
		return
	}
	r.windows[id] = w
	diag.Logf("registry", "add view %#x (%d live)", uintptr(id), len(r.windows))
}

// Remove unregisters w. It is idempotent: both the close path and
// the destruction path may call it.
func (r *Registry) Remove(w *Window) {
	id := w.NativeHandle()
	if _, ok := r.windows[id]; !ok {
		return
	}
	delete(r.windows, id)
	diag.Logf("registry", "remove view %#x (%d live)", uintptr(id), len(r.windows))
}

// Find returns the window registered under id, or nil. Native
// callbacks that only carry a view handle use it to recover the
// owning window; a nil result means the window is already torn down
// and the callback should do nothing.
func (r *Registry) Find(id ViewID) *Window {
	return r.windows[id]
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// AnyOpen reports whether any registered window is currently
// showing.
func (r *Registry) AnyOpen() bool {
	for _, w := range r.windows {
		if w.Visible() {
			return true
		}
	}
	return false
}

// All returns the registered windows in ascending handle order.
func (r *Registry) All() []*Window {
	ids := maps.Keys(r.windows)
	slices.Sort(ids)
	ws := make([]*Window, 0, len(ids))
	for _, id := range ids {
		ws = append(ws, r.windows[id])
	}
	return ws
}

// CloseAll requests close of every registered window. It iterates a
// snapshot, so windows unregistering themselves mid-iteration are
// harmless.
func (r *Registry) CloseAll() {
	for _, w := range r.All() {
		w.Close()
	}
}

// RequestAllToClose reports whether every registered window
// confirms it is ready to close. A single veto makes it false;
// with no windows registered it is true. It is a read-only query:
// no window is closed.
func (r *Registry) RequestAllToClose() bool {
	for _, w := range r.windows {
		if !w.closeRequested() {
			return false
		}
	}
	return true
}
