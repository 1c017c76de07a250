// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/key"
	"github.com/olsgo/sash/io/pointer"
)

// DrawFunc renders a frame into the window's surface. The argument
// is the monotonic time of the frame in seconds, measured from
// surface creation.
type DrawFunc func(now float64)

// InputCallbacks receives the window's translated input. Every
// field is optional; a nil callback drops the event. KeyDown
// reports whether the event was consumed: an unconsumed key
// continues through the system's text dispatch so input methods
// keep working. FileDrag reports whether the dragged files would be
// accepted if dropped.
type InputCallbacks struct {
	MouseDown  func(e pointer.Event)
	MouseUp    func(e pointer.Event)
	MouseMove  func(e pointer.Event)
	MouseEnter func(e pointer.Event)
	MouseLeave func(e pointer.Event)
	MouseWheel func(e pointer.Event)
	KeyDown    func(e key.Event) bool
	KeyUp      func(e key.Event)
	TextInput  func(s string)
	FileDrag   func(p f32.Point, paths []string) bool
	FileDrop   func(p f32.Point, paths []string)
	DragLeave  func()
}

// LifecycleCallbacks receives window state transitions. Every field
// is optional. A nil CloseRequested allows the close; returning
// false vetoes it. AdjustResize may clamp an interactively resized
// content size; horizontal and vertical report which axes the user
// is dragging. When AdjustResize is nil the window's fixed aspect
// ratio and minimum/maximum sizes apply instead.
type LifecycleCallbacks struct {
	CloseRequested    func() bool
	Destroyed         func()
	Resized           func(size image.Point)
	AdjustResize      func(size image.Point, horizontal, vertical bool) image.Point
	Moved             func(origin image.Point)
	VisibilityChanged func(visible bool)
	ScaleChanged      func(scale float32)
}

// Handlers bundles the callbacks a window delivers its events to,
// installed with Window.SetHandlers. The backend depends only on
// these records, never on the framework that fills them in.
type Handlers struct {
	Draw      DrawFunc
	Input     InputCallbacks
	Lifecycle LifecycleCallbacks
}
