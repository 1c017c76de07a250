// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"

	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/pointer"
)

// ViewID is the opaque handle of a native view. It is the key under
// which a window is registered and the identity native callbacks
// carry. The zero ViewID is never a valid view.
type ViewID uintptr

// Screen describes one attached display.
type Screen struct {
	// Bounds is the screen rectangle in the global logical
	// coordinate space, origin top left.
	Bounds image.Rectangle
	// Usable is Bounds minus space reserved by the system, such as
	// the menu bar.
	Usable image.Rectangle
	// Scale is the physical pixels per logical point.
	Scale float32
}

// PxBounds returns the screen bounds in physical pixels.
func (s Screen) PxBounds() image.Rectangle {
	return scaleRect(s.Bounds, s.Scale)
}

// PxUsable returns the usable bounds in physical pixels.
func (s Screen) PxUsable() image.Rectangle {
	return scaleRect(s.Usable, s.Scale)
}

func scaleRect(r image.Rectangle, scale float32) image.Rectangle {
	return image.Rect(
		round(float32(r.Min.X)*scale),
		round(float32(r.Min.Y)*scale),
		round(float32(r.Max.X)*scale),
		round(float32(r.Max.Y)*scale),
	)
}

// ViewConfig is the initial geometry a driver receives when the
// backend asks for a new view.
type ViewConfig struct {
	// Frame is the content rectangle in physical pixels.
	Frame image.Rectangle
	// Scale is the DPI scale of the target screen.
	Scale float32
	// Parent is the host view an embedded window attaches to. It is
	// zero for standalone windows.
	Parent ViewID
}

// Errors shared by the window factories.
var (
	ErrNoScreens = errors.New("app: driver reports no screens")
	ErrNoParent  = errors.New("app: embedded window requires a parent view")
)

// Driver is the platform layer. Implementations create native views
// and deliver native events back through the Application's
// Delegate. The in-repo Headless driver simulates a host for tests
// and windowless operation; an OS adapter implements the same
// contract over the native toolkit.
//
// All methods are called on the UI thread.
type Driver interface {
	// Bind attaches the driver to its Application. New calls it
	// exactly once, before any other method.
	Bind(a *Application)
	// Screens returns the attached displays, the main screen first.
	Screens() []Screen
	// NewView creates a backing view and its render surface.
	NewView(cfg ViewConfig) (View, error)
	// ReadClipboard returns the system clipboard text.
	ReadClipboard() string
	// WriteClipboard replaces the system clipboard text.
	WriteClipboard(s string)
	// SetCursor sets the process-wide cursor shape.
	SetCursor(c pointer.Cursor)
	// SetCursorVisible hides or shows the cursor.
	SetCursorVisible(visible bool)
	// CursorPos returns the cursor position in global physical
	// pixels.
	CursorPos() f32.Point
	// SetCursorPos warps the cursor to a global physical pixel
	// position.
	SetCursorPos(p f32.Point)
	// ShowMessage presents a modal message box and returns when it
	// is dismissed.
	ShowMessage(title, body string)
	// FileIcon returns the system icon for the file at path, used
	// as the drag image of a drag source.
	FileIcon(path string) image.Image
}

// View is a driver's per-window object. The owning Window calls it
// on the UI thread only; the window holds the single owning
// reference and Release ends the view's life.
type View interface {
	// Handle returns the view's identity.
	Handle() ViewID
	// Scale returns the view's current DPI scale.
	Scale() float32
	// Attach creates the native top-level window around the view.
	// Standalone windows call it once, on first show; embedded
	// views are never attached.
	Attach(kind DecorationKind, title string) error
	// Show makes the view (and its window, if attached) visible.
	Show()
	// Hide removes the view from screen without destroying it.
	Hide()
	// Raise brings the window to the front and gives it key status.
	Raise()
	// RequestClose asks the native window to close, running the
	// should-close/will-close protocol.
	RequestClose()
	// SetTitle sets the native window title.
	SetTitle(title string)
	// SetFrame moves and resizes the content rectangle, in physical
	// pixels.
	SetFrame(frame image.Rectangle)
	// Frame returns the current content rectangle in physical
	// pixels.
	Frame() image.Rectangle
	// ContentInsets returns the extra size of the native frame
	// around the content, in logical points.
	ContentInsets() f32.Point
	// MakeKey requests key (first responder) status for the view's
	// window.
	MakeKey()
	// SetNeedsDisplay marks the view dirty so the system schedules
	// a redraw.
	SetNeedsDisplay()
	// BeginDrag starts a synchronous drag session carrying the file
	// at path, rendered with icon anchored at the view-local
	// physical-pixel position at. It reports whether a session
	// began.
	BeginDrag(path string, icon image.Image, at f32.Point) bool
	// Release destroys the view. No other method may be called
	// after it.
	Release()
}

// NativeMouse is a native mouse event payload. Positions are
// view-local logical points with the origin in the bottom left, the
// native convention.
type NativeMouse struct {
	// Button is the native button number: 0 primary, 1 secondary,
	// 2 tertiary.
	Button int
	// Position in view-local bottom-left-origin logical points.
	Position f32.Point
	// Clicks is the native click count at a press.
	Clicks int
	// Flags is the raw modifier bit set.
	Flags uint64
}

// NativeScroll is a native scroll-wheel event payload.
type NativeScroll struct {
	// Position in view-local bottom-left-origin logical points.
	Position f32.Point
	// Flags is the raw modifier bit set.
	Flags uint64
	// Lines is the coarse per-line scroll delta.
	Lines f32.Point
	// Pixels is the high-resolution scroll delta, valid when
	// HasPixels is set.
	Pixels f32.Point
	// HasPixels reports whether the device delivered
	// high-resolution deltas.
	HasPixels bool
	// Momentum reports whether the event is part of the inertial
	// phase of the gesture.
	Momentum bool
}

// NativeKey is a native key event payload.
type NativeKey struct {
	// Code is the virtual key code.
	Code uint16
	// Flags is the raw modifier bit set.
	Flags uint64
	// Repeat reports auto-repeat of a held key.
	Repeat bool
}

// NativeDrag is a native drag-and-drop payload for a drop target.
type NativeDrag struct {
	// Position in view-local bottom-left-origin logical points.
	Position f32.Point
	// Items are the pasteboard item URLs. Only file URLs are
	// considered; everything else is filtered out.
	Items []string
}
