// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements the neutral keyboard event model windows
// receive from the platform layer.
package key

import "strings"

// An Event is generated when a key is pressed or released.
type Event struct {
	// Code identifies the key independent of layout and platform.
	Code Code
	// Modifiers is the set of active modifiers when the key was
	// pressed.
	Modifiers Modifiers
	// Repeat reports whether the event is an auto-repeat of a key
	// being held down. It is never set on release events.
	Repeat bool
}

// Modifiers is a set of modifier keys.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// ModShortcut is the platform's primary shortcut modifier: the
// command key on Apple keyboards.
const ModShortcut = ModCommand

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModCommand) {
		strs = append(strs, "Cmd")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}

// Code identifies a keyboard key independent of layout. Translation
// from native key codes is many-to-one; codes with no mapping
// translate to CodeUnknown.
type Code uint8

const (
	// CodeUnknown is the zero Code, the translation of every
	// native key code absent from the mapping table.
	CodeUnknown Code = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20

	CodeReturn
	CodeTab
	CodeSpace
	CodeEscape
	CodeDeleteBackward
	CodeDeleteForward
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodeShift
	CodeCtrl
	CodeAlt
	CodeCommand
	CodeCapsLock
	CodeFunction

	CodeMinus
	CodeEqual
	CodeLeftBracket
	CodeRightBracket
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeComma
	CodePeriod
	CodeSlash
	CodeGrave

	CodeKeypad0
	CodeKeypad1
	CodeKeypad2
	CodeKeypad3
	CodeKeypad4
	CodeKeypad5
	CodeKeypad6
	CodeKeypad7
	CodeKeypad8
	CodeKeypad9
	CodeKeypadDecimal
	CodeKeypadMultiply
	CodeKeypadPlus
	CodeKeypadDivide
	CodeKeypadMinus
	CodeKeypadEquals
	CodeKeypadClear
	CodeKeypadEnter

	maxCode
)

var codeNames = [...]string{
	CodeUnknown: "Unknown",

	CodeA: "A", CodeB: "B", CodeC: "C", CodeD: "D", CodeE: "E",
	CodeF: "F", CodeG: "G", CodeH: "H", CodeI: "I", CodeJ: "J",
	CodeK: "K", CodeL: "L", CodeM: "M", CodeN: "N", CodeO: "O",
	CodeP: "P", CodeQ: "Q", CodeR: "R", CodeS: "S", CodeT: "T",
	CodeU: "U", CodeV: "V", CodeW: "W", CodeX: "X", CodeY: "Y",
	CodeZ: "Z",

	Code0: "0", Code1: "1", Code2: "2", Code3: "3", Code4: "4",
	Code5: "5", Code6: "6", Code7: "7", Code8: "8", Code9: "9",

	CodeF1: "F1", CodeF2: "F2", CodeF3: "F3", CodeF4: "F4",
	CodeF5: "F5", CodeF6: "F6", CodeF7: "F7", CodeF8: "F8",
	CodeF9: "F9", CodeF10: "F10", CodeF11: "F11", CodeF12: "F12",
	CodeF13: "F13", CodeF14: "F14", CodeF15: "F15", CodeF16: "F16",
	CodeF17: "F17", CodeF18: "F18", CodeF19: "F19", CodeF20: "F20",

	CodeReturn:         "Return",
	CodeTab:            "Tab",
	CodeSpace:          "Space",
	CodeEscape:         "Escape",
	CodeDeleteBackward: "Backspace",
	CodeDeleteForward:  "Delete",
	CodeLeftArrow:      "Left",
	CodeRightArrow:     "Right",
	CodeUpArrow:        "Up",
	CodeDownArrow:      "Down",
	CodeHome:           "Home",
	CodeEnd:            "End",
	CodePageUp:         "PageUp",
	CodePageDown:       "PageDown",

	CodeShift:    "Shift",
	CodeCtrl:     "Ctrl",
	CodeAlt:      "Alt",
	CodeCommand:  "Cmd",
	CodeCapsLock: "CapsLock",
	CodeFunction: "Fn",

	CodeMinus:        "-",
	CodeEqual:        "=",
	CodeLeftBracket:  "[",
	CodeRightBracket: "]",
	CodeBackslash:    "\\",
	CodeSemicolon:    ";",
	CodeQuote:        "'",
	CodeComma:        ",",
	CodePeriod:       ".",
	CodeSlash:        "/",
	CodeGrave:        "`",

	CodeKeypad0: "KP0", CodeKeypad1: "KP1", CodeKeypad2: "KP2",
	CodeKeypad3: "KP3", CodeKeypad4: "KP4", CodeKeypad5: "KP5",
	CodeKeypad6: "KP6", CodeKeypad7: "KP7", CodeKeypad8: "KP8",
	CodeKeypad9: "KP9",
	CodeKeypadDecimal:  "KP.",
	CodeKeypadMultiply: "KP*",
	CodeKeypadPlus:     "KP+",
	CodeKeypadDivide:   "KP/",
	CodeKeypadMinus:    "KP-",
	CodeKeypadEquals:   "KP=",
	CodeKeypadClear:    "KPClear",
	CodeKeypadEnter:    "KPEnter",
}

func (c Code) String() string {
	if int(c) >= len(codeNames) || codeNames[c] == "" {
		return "Unknown"
	}
	return codeNames[c]
}
