// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"net/url"

	xdraw "golang.org/x/image/draw"

	"github.com/olsgo/sash/app/internal/diag"
	"github.com/olsgo/sash/app/internal/mackey"
	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/key"
	"github.com/olsgo/sash/io/pointer"
	"github.com/olsgo/sash/io/transfer"
)

// preciseScrollScale converts high-resolution scroll deltas, which
// arrive in physical pixels, to the line-based scroll unit.
const preciseScrollScale = 0.008

// inputState accumulates the per-window input context that native
// events only carry implicitly.
type inputState struct {
	buttons       pointer.Buttons
	mods          key.Modifiers
	lastPress     f32.Point
	haveLastPress bool
	dragging      bool

	resizeH bool
	resizeV bool
}

func buttonBit(button int) pointer.Buttons {
	switch button {
	case 0:
		return pointer.ButtonPrimary
	case 1:
		return pointer.ButtonSecondary
	case 2:
		return pointer.ButtonTertiary
	default:
		return 0
	}
}

// contentPoint converts a native view position, which has its
// origin at the bottom left in logical coordinates, to a top-left
// position in physical pixels.
func (w *Window) contentPoint(p f32.Point) f32.Point {
	bounds := w.logicalBounds()
	return f32.Pt(p.X*w.scale, (bounds.Y-p.Y)*w.scale)
}

// globalPoint converts a content position to global physical
// pixels.
func (w *Window) globalPoint(p f32.Point) f32.Point {
	return p.Add(f32.Pt(float32(w.frame.Min.X), float32(w.frame.Min.Y)))
}

func (w *Window) pointerDown(n NativeMouse) {
	bit := buttonBit(n.Button)
	if bit == 0 {
		return
	}
	w.in.buttons |= bit
	w.in.mods = mackey.Modifiers(n.Flags)
	pos := w.contentPoint(n.Position)
	w.in.lastPress = w.globalPoint(pos)
	w.in.haveLastPress = true
	// A primary press re-derives keyboard focus: the view hosting
	// the click asks its window to become key. For an embedded view
	// that window is the host's. Popups never take key.
	if bit == pointer.ButtonPrimary && w.cfg.Kind != PopupDecoration {
		w.view.MakeKey()
	}
	if cb := w.handlers.Input.MouseDown; cb != nil {
		cb(pointer.Event{
			Kind:      pointer.Press,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  pos,
			Clicks:    n.Clicks,
			Modifiers: w.in.mods,
		})
	}
	if w.dragSourcePath != "" && bit == pointer.ButtonPrimary {
		w.beginDrag(pos)
	}
}

func (w *Window) pointerUp(n NativeMouse) {
	bit := buttonBit(n.Button)
	if bit == 0 {
		return
	}
	w.in.buttons &^= bit
	w.in.mods = mackey.Modifiers(n.Flags)
	if cb := w.handlers.Input.MouseUp; cb != nil {
		cb(pointer.Event{
			Kind:      pointer.Release,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  w.contentPoint(n.Position),
			Clicks:    n.Clicks,
			Modifiers: w.in.mods,
		})
	}
}

func (w *Window) pointerMove(n NativeMouse) {
	w.in.mods = mackey.Modifiers(n.Flags)
	pos := w.contentPoint(n.Position)
	kind := pointer.Move
	if w.in.buttons != 0 {
		kind = pointer.Drag
	}
	if cb := w.handlers.Input.MouseMove; cb != nil {
		cb(pointer.Event{
			Kind:      kind,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  pos,
			Modifiers: w.in.mods,
		})
	}
	if w.relativeMouse && kind == pointer.Drag && w.in.haveLastPress {
		w.app.driver.SetCursorPos(w.in.lastPress)
	}
}

func (w *Window) pointerEnter(n NativeMouse) {
	w.in.mods = mackey.Modifiers(n.Flags)
	if cb := w.handlers.Input.MouseEnter; cb != nil {
		cb(pointer.Event{
			Kind:      pointer.Enter,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  w.contentPoint(n.Position),
			Modifiers: w.in.mods,
		})
	}
}

func (w *Window) pointerLeave(n NativeMouse) {
	w.in.mods = mackey.Modifiers(n.Flags)
	if cb := w.handlers.Input.MouseLeave; cb != nil {
		cb(pointer.Event{
			Kind:      pointer.Leave,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  w.contentPoint(n.Position),
			Modifiers: w.in.mods,
		})
	}
}

// pointerScroll translates a wheel event. Line-based deltas pass
// through; high-resolution deltas are scaled to the line unit and
// carried separately so handlers can pick their precision.
func (w *Window) pointerScroll(n NativeScroll) {
	w.in.mods = mackey.Modifiers(n.Flags)
	precise := n.Lines
	if n.HasPixels {
		precise = n.Pixels.Mul(preciseScrollScale)
	}
	if cb := w.handlers.Input.MouseWheel; cb != nil {
		cb(pointer.Event{
			Kind:      pointer.Scroll,
			Time:      w.app.now(),
			Buttons:   w.in.buttons,
			Position:  w.contentPoint(n.Position),
			Scroll:    n.Lines,
			Precise:   precise,
			Momentum:  n.Momentum,
			Modifiers: w.in.mods,
		})
	}
}

// keyDown translates a key press and reports whether it was
// consumed. The quit shortcuts are checked before the handler so a
// window that opted in cannot swallow them.
func (w *Window) keyDown(n NativeKey) bool {
	code := mackey.Translate(n.Code)
	mods := mackey.Modifiers(n.Flags)
	w.in.mods = mods
	if w.cfg.Quit && mods.Contain(key.ModShortcut) {
		switch code {
		case key.CodeQ, key.CodeW:
			w.app.CloseAll()
			return true
		}
	}
	if cb := w.handlers.Input.KeyDown; cb != nil {
		return cb(key.Event{Code: code, Modifiers: mods, Repeat: n.Repeat})
	}
	return false
}

func (w *Window) keyUp(n NativeKey) {
	code := mackey.Translate(n.Code)
	w.in.mods = mackey.Modifiers(n.Flags)
	if cb := w.handlers.Input.KeyUp; cb != nil {
		cb(key.Event{Code: code, Modifiers: w.in.mods})
	}
}

func (w *Window) textInput(s string) {
	if s == "" {
		return
	}
	if cb := w.handlers.Input.TextInput; cb != nil {
		cb(s)
	}
}

// beginDrag starts a synchronous drag of the armed source path,
// presenting the host's icon for the file centered on the press
// position.
func (w *Window) beginDrag(pos f32.Point) {
	if w.in.dragging {
		return
	}
	path := w.dragSourcePath
	icon := scaleIcon(w.app.driver.FileIcon(path), w.scale)
	var size image.Point
	if icon != nil {
		size = icon.Bounds().Size()
	}
	anchor := pos.Sub(f32.Pt(float32(size.X)/2, float32(size.Y)/2))
	w.in.dragging = true
	done := w.view.BeginDrag(path, icon, anchor)
	w.in.dragging = false
	diag.Logf("input", "drag of %q done=%v", path, done)
}

// scaleIcon resizes a drag icon from logical to physical pixels.
func scaleIcon(src image.Image, scale float32) image.Image {
	if src == nil || scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, round(float32(b.Dx())*scale), round(float32(b.Dy())*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// filePaths extracts local file paths from dragged items. Only
// file URLs qualify; anything else is dropped.
func filePaths(items []string) []string {
	var paths []string
	for _, it := range items {
		u, err := url.Parse(it)
		if err != nil || u.Scheme != "file" {
			continue
		}
		paths = append(paths, u.Path)
	}
	return paths
}

// dragQuery asks the window whether it accepts the dragged files.
// Windows without a FileDrag handler are not drop targets.
func (w *Window) dragQuery(n NativeDrag) transfer.Op {
	paths := filePaths(n.Items)
	if len(paths) == 0 {
		return transfer.None
	}
	cb := w.handlers.Input.FileDrag
	if cb == nil {
		return transfer.None
	}
	if cb(w.contentPoint(n.Position), paths) {
		return transfer.Copy
	}
	return transfer.None
}

func (w *Window) dragExited() {
	if cb := w.handlers.Input.DragLeave; cb != nil {
		cb()
	}
}

func (w *Window) drop(n NativeDrag) bool {
	paths := filePaths(n.Items)
	if len(paths) == 0 {
		return false
	}
	cb := w.handlers.Input.FileDrop
	if cb == nil {
		return false
	}
	cb(w.contentPoint(n.Position), paths)
	return true
}
