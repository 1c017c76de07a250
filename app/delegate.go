// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"github.com/olsgo/sash/app/internal/diag"
	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/transfer"
)

// Delegate receives the native callbacks of a driver's views and
// routes them to the owning window. Callbacks carry only the view
// handle; a handle with no registered window means the window is
// already torn down, and the callback falls out silently.
//
// All methods must be called on the UI thread. Display refreshes
// arriving on other threads go through Surface.DisplayTick instead.
type Delegate struct {
	app *Application
}

func (d Delegate) find(id ViewID, what string) *Window {
	w := d.app.windows.Find(id)
	if w == nil {
		diag.Logf("delegate", "%s for dead view %#x", what, uintptr(id))
	}
	return w
}

// MouseDown routes a button press.
func (d Delegate) MouseDown(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseDown"); w != nil {
		w.pointerDown(n)
	}
}

// MouseUp routes a button release.
func (d Delegate) MouseUp(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseUp"); w != nil {
		w.pointerUp(n)
	}
}

// MouseMoved routes a pointer move without buttons held.
func (d Delegate) MouseMoved(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseMoved"); w != nil {
		w.pointerMove(n)
	}
}

// MouseDragged routes a pointer move with buttons held.
func (d Delegate) MouseDragged(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseDragged"); w != nil {
		w.pointerMove(n)
	}
}

// MouseEntered routes the pointer entering the view. Views must
// keep their hover tracking region matched to their bounds so
// enter and exit keep arriving after resizes.
func (d Delegate) MouseEntered(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseEntered"); w != nil {
		w.pointerEnter(n)
	}
}

// MouseExited routes the pointer leaving the view.
func (d Delegate) MouseExited(id ViewID, n NativeMouse) {
	if w := d.find(id, "mouseExited"); w != nil {
		w.pointerLeave(n)
	}
}

// ScrollWheel routes a wheel or trackpad scroll.
func (d Delegate) ScrollWheel(id ViewID, n NativeScroll) {
	if w := d.find(id, "scrollWheel"); w != nil {
		w.pointerScroll(n)
	}
}

// KeyDown routes a key press and reports whether it was consumed.
// Unconsumed presses should continue down the host's responder
// chain.
func (d Delegate) KeyDown(id ViewID, n NativeKey) bool {
	if w := d.find(id, "keyDown"); w != nil {
		return w.keyDown(n)
	}
	return false
}

// KeyUp routes a key release.
func (d Delegate) KeyUp(id ViewID, n NativeKey) {
	if w := d.find(id, "keyUp"); w != nil {
		w.keyUp(n)
	}
}

// InsertText routes committed text input.
func (d Delegate) InsertText(id ViewID, s string) {
	if w := d.find(id, "insertText"); w != nil {
		w.textInput(s)
	}
}

// ViewResized records a view's new content bounds, given in
// logical coordinates, and resizes the surface drawable to match.
func (d Delegate) ViewResized(id ViewID, bounds f32.Point) {
	w := d.find(id, "viewResized")
	if w == nil {
		return
	}
	w.frame = w.view.Frame()
	w.surface.resizeDrawable(bounds, w.scale)
	if cb := w.handlers.Lifecycle.Resized; cb != nil {
		cb(w.frame.Size())
	}
}

// BackingScaleChanged records a new backing scale, usually from the
// window moving to a screen of different density.
func (d Delegate) BackingScaleChanged(id ViewID, scale float32) {
	w := d.find(id, "backingScaleChanged")
	if w == nil || w.scale == scale {
		return
	}
	w.scale = scale
	w.frame = w.view.Frame()
	w.surface.resizeDrawable(w.logicalBounds(), scale)
	if cb := w.handlers.Lifecycle.ScaleChanged; cb != nil {
		cb(scale)
	}
}

// WindowShouldClose asks the window whether it may close. Dead
// views may always close.
func (d Delegate) WindowShouldClose(id ViewID) bool {
	if w := d.app.windows.Find(id); w != nil {
		return w.closeRequested()
	}
	return true
}

// WindowWillClose tears the window down. The native view is about
// to go away regardless.
func (d Delegate) WindowWillClose(id ViewID) {
	if w := d.find(id, "windowWillClose"); w != nil {
		w.destroy()
	}
}

// OcclusionChanged records whether the window contents are on
// screen. Embedded windows ignore it; their host decides what is
// visible.
func (d Delegate) OcclusionChanged(id ViewID, visible bool) {
	w := d.find(id, "occlusionChanged")
	if w == nil {
		return
	}
	if w.embedded {
		diag.Logf("delegate", "occlusion ignored for embedded view %#x", uintptr(id))
		return
	}
	w.setVisible(visible)
}

// WillStartLiveResize marks the start of an interactive resize.
func (d Delegate) WillStartLiveResize(id ViewID) {
	if w := d.find(id, "willStartLiveResize"); w != nil {
		w.in.resizeH, w.in.resizeV = false, false
	}
}

// WillEndLiveResize marks the end of an interactive resize.
func (d Delegate) WillEndLiveResize(id ViewID) {
	if w := d.find(id, "willEndLiveResize"); w != nil {
		w.in.resizeH, w.in.resizeV = false, false
	}
}

// WindowWillResize constrains a proposed frame size, given in
// logical coordinates including decorations, and returns the size
// to use instead. The dragged axes are inferred from which
// dimensions differ from the current frame and stay sticky for the
// rest of the resize.
func (d Delegate) WindowWillResize(id ViewID, proposed f32.Point) f32.Point {
	w := d.find(id, "windowWillResize")
	if w == nil {
		return proposed
	}
	insets := w.view.ContentInsets()
	content := f32.Pt(proposed.X-insets.X, proposed.Y-insets.Y)
	size := image.Pt(round(content.X*w.scale), round(content.Y*w.scale))
	cur := w.frame.Size()
	if size.X != cur.X {
		w.in.resizeH = true
	}
	if size.Y != cur.Y {
		w.in.resizeV = true
	}
	min := image.Pt(round(float32(w.cfg.MinSize.X)*w.scale), round(float32(w.cfg.MinSize.Y)*w.scale))
	max := image.Pt(round(float32(w.cfg.MaxSize.X)*w.scale), round(float32(w.cfg.MaxSize.Y)*w.scale))
	if cb := w.handlers.Lifecycle.AdjustResize; cb != nil {
		size = cb(size, w.in.resizeH, w.in.resizeV)
	} else {
		size = adjustAspect(size, min, max, w.cfg.Aspect, w.in.resizeH, w.in.resizeV)
	}
	return f32.Pt(float32(size.X)/w.scale+insets.X, float32(size.Y)/w.scale+insets.Y)
}

// WindowMoved records the window's new origin.
func (d Delegate) WindowMoved(id ViewID) {
	w := d.find(id, "windowMoved")
	if w == nil {
		return
	}
	w.frame = w.view.Frame()
	w.refreshScreen()
	if cb := w.handlers.Lifecycle.Moved; cb != nil {
		cb(w.frame.Min)
	}
}

// DragEntered reports the operation for a drag entering the view.
func (d Delegate) DragEntered(id ViewID, n NativeDrag) transfer.Op {
	if w := d.find(id, "dragEntered"); w != nil {
		return w.dragQuery(n)
	}
	return transfer.None
}

// DragUpdated reports the operation for a drag moving over the
// view.
func (d Delegate) DragUpdated(id ViewID, n NativeDrag) transfer.Op {
	if w := d.find(id, "dragUpdated"); w != nil {
		return w.dragQuery(n)
	}
	return transfer.None
}

// DragExited reports a drag leaving the view.
func (d Delegate) DragExited(id ViewID) {
	if w := d.find(id, "dragExited"); w != nil {
		w.dragExited()
	}
}

// Drop performs a drop and reports whether it was accepted.
func (d Delegate) Drop(id ViewID, n NativeDrag) bool {
	if w := d.find(id, "drop"); w != nil {
		return w.drop(n)
	}
	return false
}

// DisplayTick records one display refresh for the view's surface.
func (d Delegate) DisplayTick(id ViewID) {
	if w := d.app.windows.Find(id); w != nil {
		w.surface.uiDisplayTick()
	}
}

// DrawView runs the window's draw callback. Called when the host
// asks the view to paint.
func (d Delegate) DrawView(id ViewID) {
	if w := d.app.windows.Find(id); w != nil {
		w.surface.redraw()
	}
}

// ShouldTerminate asks every window whether the application may
// quit. No window vetoing means yes.
func (d Delegate) ShouldTerminate() bool {
	return d.app.windows.RequestAllToClose()
}
