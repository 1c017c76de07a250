// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/pointer"
	"github.com/olsgo/sash/io/transfer"
)

// Headless is a driver without a host: screens, views, clipboard
// and drags are simulated in memory. It backs tests and tools that
// need window semantics with no display server.
//
// The Send, Tick and Draw methods inject the events a host would
// deliver. Like the application they feed, they must be called on
// the UI thread.
type Headless struct {
	app     *Application
	screens []Screen

	views  map[ViewID]*headlessView
	nextID ViewID

	keyWindow ViewID
	raised    ViewID

	clipboard     string
	cursor        pointer.Cursor
	cursorVisible bool
	cursorPos     f32.Point

	messages []Message
	drags    []DragSession

	autoDraw bool
	icon     image.Image
}

// Message records a ShowMessage call.
type Message struct {
	Title string
	Body  string
}

// DragSession records a drag started by a view.
type DragSession struct {
	Path     string
	IconSize image.Point
	Anchor   f32.Point
}

// HeadlessViewInfo is a snapshot of a simulated view.
type HeadlessViewInfo struct {
	Frame    image.Rectangle
	Scale    float32
	Visible  bool
	Attached bool
	Kind     DecorationKind
	Title    string
}

// NewHeadless creates a headless driver. Without screens it
// simulates a single 1920x1080 screen at scale 1 with a 25 point
// menu bar.
func NewHeadless(screens ...Screen) *Headless {
	if len(screens) == 0 {
		bounds := image.Rect(0, 0, 1920, 1080)
		usable := bounds
		usable.Min.Y += 25
		screens = []Screen{{Bounds: bounds, Usable: usable, Scale: 1}}
	}
	icon := image.NewRGBA(image.Rect(0, 0, 32, 32))
	draw.Draw(icon, icon.Bounds(), image.NewUniform(color.RGBA{R: 90, G: 98, B: 120, A: 255}), image.Point{}, draw.Src)
	return &Headless{
		screens:       screens,
		views:         make(map[ViewID]*headlessView),
		cursorVisible: true,
		autoDraw:      true,
		icon:          icon,
	}
}

func (h *Headless) Bind(a *Application) {
	h.app = a
}

func (h *Headless) Screens() []Screen {
	return h.screens
}

func (h *Headless) NewView(cfg ViewConfig) (View, error) {
	v := &headlessView{h: h, frame: cfg.Frame, scale: cfg.Scale, parent: cfg.Parent}
	if cfg.Parent != 0 {
		p, ok := h.views[cfg.Parent]
		if !ok {
			return nil, ErrNoParent
		}
		v.scale = p.scale
		v.visible = true
	}
	h.nextID++
	v.id = h.nextID
	h.views[v.id] = v
	return v, nil
}

func (h *Headless) ReadClipboard() string {
	return h.clipboard
}

func (h *Headless) WriteClipboard(s string) {
	h.clipboard = s
}

func (h *Headless) SetCursor(c pointer.Cursor) {
	h.cursor = c
}

func (h *Headless) SetCursorVisible(v bool) {
	h.cursorVisible = v
}

func (h *Headless) CursorPos() f32.Point {
	return h.cursorPos
}

func (h *Headless) SetCursorPos(p f32.Point) {
	h.cursorPos = p
}

func (h *Headless) ShowMessage(title, body string) {
	h.messages = append(h.messages, Message{Title: title, Body: body})
}

func (h *Headless) FileIcon(path string) image.Image {
	return h.icon
}

// CreateHostView simulates a foreign view for embedding, like a
// plugin host's editor area.
func (h *Headless) CreateHostView(frame image.Rectangle, scale float32) ViewID {
	h.nextID++
	v := &headlessView{h: h, id: h.nextID, frame: frame, scale: scale, visible: true}
	h.views[v.id] = v
	return v.id
}

// KeyWindow returns the view that last became key, or zero.
func (h *Headless) KeyWindow() ViewID {
	return h.keyWindow
}

// Raised returns the view that was last raised, or zero.
func (h *Headless) Raised() ViewID {
	return h.raised
}

// Messages returns the alerts shown so far.
func (h *Headless) Messages() []Message {
	return h.messages
}

// DragSessions returns the drags started so far.
func (h *Headless) DragSessions() []DragSession {
	return h.drags
}

// CursorVisible reports whether the simulated pointer is shown.
func (h *Headless) CursorVisible() bool {
	return h.cursorVisible
}

// Cursor returns the selected pointer image.
func (h *Headless) Cursor() pointer.Cursor {
	return h.cursor
}

// SetAutoDraw controls whether SetNeedsDisplay paints immediately.
// On by default; turn it off to count pending paints instead.
func (h *Headless) SetAutoDraw(v bool) {
	h.autoDraw = v
}

// ViewInfo returns a snapshot of the simulated view behind id.
func (h *Headless) ViewInfo(id ViewID) (HeadlessViewInfo, bool) {
	v, ok := h.views[id]
	if !ok {
		return HeadlessViewInfo{}, false
	}
	return HeadlessViewInfo{
		Frame:    v.frame,
		Scale:    v.scale,
		Visible:  v.visible,
		Attached: v.attached,
		Kind:     v.kind,
		Title:    v.title,
	}, true
}

// SendMouseDown injects a button press. pos is in view
// coordinates, origin bottom left, logical units.
func (h *Headless) SendMouseDown(id ViewID, button int, pos f32.Point, flags uint64, clicks int) {
	h.app.Delegate().MouseDown(id, NativeMouse{Button: button, Position: pos, Clicks: clicks, Flags: flags})
}

// SendMouseUp injects a button release.
func (h *Headless) SendMouseUp(id ViewID, button int, pos f32.Point, flags uint64, clicks int) {
	h.app.Delegate().MouseUp(id, NativeMouse{Button: button, Position: pos, Clicks: clicks, Flags: flags})
}

// SendMouseMove injects a pointer move.
func (h *Headless) SendMouseMove(id ViewID, pos f32.Point, flags uint64) {
	h.app.Delegate().MouseMoved(id, NativeMouse{Position: pos, Flags: flags})
}

// SendMouseDrag injects a pointer move with buttons held.
func (h *Headless) SendMouseDrag(id ViewID, pos f32.Point, flags uint64) {
	h.app.Delegate().MouseDragged(id, NativeMouse{Position: pos, Flags: flags})
}

// SendMouseEnter injects the pointer entering the view.
func (h *Headless) SendMouseEnter(id ViewID, pos f32.Point) {
	h.app.Delegate().MouseEntered(id, NativeMouse{Position: pos})
}

// SendMouseExit injects the pointer leaving the view.
func (h *Headless) SendMouseExit(id ViewID, pos f32.Point) {
	h.app.Delegate().MouseExited(id, NativeMouse{Position: pos})
}

// SendScroll injects a wheel event.
func (h *Headless) SendScroll(id ViewID, n NativeScroll) {
	h.app.Delegate().ScrollWheel(id, n)
}

// SendKeyDown injects a key press and reports whether it was
// consumed.
func (h *Headless) SendKeyDown(id ViewID, code uint16, flags uint64, repeat bool) bool {
	return h.app.Delegate().KeyDown(id, NativeKey{Code: code, Flags: flags, Repeat: repeat})
}

// SendKeyUp injects a key release.
func (h *Headless) SendKeyUp(id ViewID, code uint16, flags uint64) {
	h.app.Delegate().KeyUp(id, NativeKey{Code: code, Flags: flags})
}

// SendText injects committed text input.
func (h *Headless) SendText(id ViewID, s string) {
	h.app.Delegate().InsertText(id, s)
}

// SendOcclusion injects a visibility change.
func (h *Headless) SendOcclusion(id ViewID, visible bool) {
	h.app.Delegate().OcclusionChanged(id, visible)
}

// SendBackingScale moves the view to a new backing scale, keeping
// its size in logical units.
func (h *Headless) SendBackingScale(id ViewID, scale float32) {
	v, ok := h.views[id]
	if !ok {
		return
	}
	width := round(float32(v.frame.Dx()) / v.scale * scale)
	height := round(float32(v.frame.Dy()) / v.scale * scale)
	v.scale = scale
	v.frame.Max = v.frame.Min.Add(image.Pt(width, height))
	h.app.Delegate().BackingScaleChanged(id, scale)
}

// BeginLiveResize starts an interactive resize.
func (h *Headless) BeginLiveResize(id ViewID) {
	h.app.Delegate().WillStartLiveResize(id)
}

// ProposeFrameSize proposes a frame size in logical units the way
// an interactive resize would, applies the constrained result and
// returns it.
func (h *Headless) ProposeFrameSize(id ViewID, size f32.Point) f32.Point {
	v, ok := h.views[id]
	if !ok {
		return size
	}
	adjusted := h.app.Delegate().WindowWillResize(id, size)
	insets := v.ContentInsets()
	content := f32.Pt(adjusted.X-insets.X, adjusted.Y-insets.Y)
	px := image.Pt(round(content.X*v.scale), round(content.Y*v.scale))
	v.frame.Max = v.frame.Min.Add(px)
	h.app.Delegate().ViewResized(id, content)
	return adjusted
}

// EndLiveResize finishes an interactive resize.
func (h *Headless) EndLiveResize(id ViewID) {
	h.app.Delegate().WillEndLiveResize(id)
}

// MoveWindow moves the view origin, in global physical pixels.
func (h *Headless) MoveWindow(id ViewID, origin image.Point) {
	v, ok := h.views[id]
	if !ok {
		return
	}
	v.frame = v.frame.Sub(v.frame.Min).Add(origin)
	h.app.Delegate().WindowMoved(id)
}

// SendDragEnter injects a drag entering the view and returns the
// window's answer.
func (h *Headless) SendDragEnter(id ViewID, n NativeDrag) transfer.Op {
	return h.app.Delegate().DragEntered(id, n)
}

// SendDragUpdate injects a drag moving over the view.
func (h *Headless) SendDragUpdate(id ViewID, n NativeDrag) transfer.Op {
	return h.app.Delegate().DragUpdated(id, n)
}

// SendDragExit injects a drag leaving the view.
func (h *Headless) SendDragExit(id ViewID) {
	h.app.Delegate().DragExited(id)
}

// SendDrop injects a drop and returns whether it was accepted.
func (h *Headless) SendDrop(id ViewID, n NativeDrag) bool {
	return h.app.Delegate().Drop(id, n)
}

// Tick injects one display refresh for the view.
func (h *Headless) Tick(id ViewID) {
	h.app.Delegate().DisplayTick(id)
}

// Draw asks the view to paint.
func (h *Headless) Draw(id ViewID) {
	h.app.Delegate().DrawView(id)
}

// headlessView simulates one native view.
type headlessView struct {
	h      *Headless
	id     ViewID
	frame  image.Rectangle
	scale  float32
	parent ViewID

	visible  bool
	attached bool
	released bool

	kind  DecorationKind
	title string
}

func (v *headlessView) Handle() ViewID {
	return v.id
}

func (v *headlessView) Scale() float32 {
	return v.scale
}

func (v *headlessView) Attach(kind DecorationKind, title string) error {
	v.attached = true
	v.kind = kind
	v.title = title
	return nil
}

func (v *headlessView) Show() {
	v.visible = true
}

func (v *headlessView) Hide() {
	v.visible = false
}

func (v *headlessView) Raise() {
	v.h.raised = v.id
}

func (v *headlessView) RequestClose() {
	d := v.h.app.Delegate()
	if d.WindowShouldClose(v.id) {
		d.WindowWillClose(v.id)
	}
}

func (v *headlessView) SetTitle(t string) {
	v.title = t
}

func (v *headlessView) SetFrame(r image.Rectangle) {
	v.frame = r
	v.h.app.Delegate().ViewResized(v.id, f32.Pt(float32(r.Dx())/v.scale, float32(r.Dy())/v.scale))
}

func (v *headlessView) Frame() image.Rectangle {
	return v.frame
}

func (v *headlessView) ContentInsets() f32.Point {
	if v.attached && v.kind == NativeDecoration {
		return f32.Pt(0, 28)
	}
	return f32.Point{}
}

func (v *headlessView) MakeKey() {
	v.h.keyWindow = v.id
}

func (v *headlessView) SetNeedsDisplay() {
	if v.h.autoDraw {
		v.h.app.Delegate().DrawView(v.id)
	}
}

func (v *headlessView) BeginDrag(path string, icon image.Image, at f32.Point) bool {
	var size image.Point
	if icon != nil {
		size = icon.Bounds().Size()
	}
	v.h.drags = append(v.h.drags, DragSession{Path: path, IconSize: size, Anchor: at})
	return true
}

func (v *headlessView) Release() {
	if v.released {
		return
	}
	v.released = true
	delete(v.h.views, v.id)
	if v.h.keyWindow == v.id {
		v.h.keyWindow = 0
	}
}
