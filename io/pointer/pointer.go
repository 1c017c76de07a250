// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements the neutral mouse event model windows
// receive from the platform layer.
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in the local
	// coordinate system of the window content: origin in the top
	// left corner, units of physical pixels.
	Position f32.Point
	// Clicks is the click count for press events: 1 for a single
	// click, 2 for a double click. It is zero for other kinds.
	Clicks int
	// Scroll is the scroll delta in lines, if any.
	Scroll f32.Point
	// Precise is the high-resolution scroll delta, scaled by the
	// scroll sensitivity. When the platform reports no
	// high-resolution data it carries the line delta unscaled.
	Precise f32.Point
	// Momentum reports whether a scroll event belongs to the
	// inertial phase of a scroll gesture.
	Momentum bool
	// Modifiers is the set of active modifiers when
	// the event fired.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint

const (
	// Press of a pointer button.
	Press Kind = 1 << iota
	// Release of a pointer button.
	Release
	// Move of a pointer with no button pressed.
	Move
	// Drag is a Move with at least one button pressed.
	Drag
	// Enter of a pointer into the window content area.
	Enter
	// Leave of a pointer out of the window content area.
	Leave
	// Scroll of a pointer.
	Scroll
)

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// ButtonPrimary is the primary button, usually the left button
	// for a right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right
	// button for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle
	// button.
	ButtonTertiary
)

// Contain reports whether b contains all of the buttons in b2.
func (b Buttons) Contain(b2 Buttons) bool {
	return b&b2 == b2
}

// Cursor denotes a pre-defined pointer shape.
type Cursor byte

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor. To show it again, use a
	// different cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link.
	CursorPointer
	// CursorCrosshair is for precise location.
	CursorCrosshair
	// CursorGrab is for content that can be grabbed (dragged to be
	// moved).
	CursorGrab
	// CursorGrabbing is for content that is being grabbed (dragged
	// to be moved).
	CursorGrabbing
	// CursorNotAllowed is shown when the requested action cannot be
	// carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy.
	CursorWait
	// CursorEastWestResize is for horizontal resizing. Both
	// directional styles collapse to this one shape.
	CursorEastWestResize
	// CursorNorthSouthResize is for vertical resizing.
	CursorNorthSouthResize
)

var cursorNames = [...]string{
	CursorDefault:          "Default",
	CursorNone:             "None",
	CursorText:             "Text",
	CursorPointer:          "Pointer",
	CursorCrosshair:        "Crosshair",
	CursorGrab:             "Grab",
	CursorGrabbing:         "Grabbing",
	CursorNotAllowed:       "NotAllowed",
	CursorWait:             "Wait",
	CursorEastWestResize:   "EastWestResize",
	CursorNorthSouthResize: "NorthSouthResize",
}

func (c Cursor) String() string {
	if int(c) >= len(cursorNames) {
		return "Default"
	}
	return cursorNames[c]
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Drag:
		return "Drag"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Scroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "Primary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "Secondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "Tertiary")
	}
	return strings.Join(strs, "|")
}

func (e Event) String() string {
	return fmt.Sprintf("%v %v %v buttons=%v mods=%v", e.Kind, e.Position, e.Scroll, e.Buttons, e.Modifiers)
}
