// SPDX-License-Identifier: Unlicense OR MIT

// Package mackey translates Apple virtual key codes and modifier
// flags into the neutral io/key model. The translation is total:
// codes absent from the table come back as key.CodeUnknown.
package mackey

import "github.com/olsgo/sash/io/key"

// Modifier flag bits as delivered in native key and mouse events.
const (
	FlagCapsLock uint64 = 1 << 16
	FlagShift    uint64 = 1 << 17
	FlagControl  uint64 = 1 << 18
	FlagOption   uint64 = 1 << 19
	FlagCommand  uint64 = 1 << 20
)

// Modifiers converts native modifier flags to the neutral modifier
// set.
func Modifiers(flags uint64) key.Modifiers {
	var kmods key.Modifiers
	if flags&FlagOption != 0 {
		kmods |= key.ModAlt
	}
	if flags&FlagControl != 0 {
		kmods |= key.ModCtrl
	}
	if flags&FlagCommand != 0 {
		kmods |= key.ModCommand
	}
	if flags&FlagShift != 0 {
		kmods |= key.ModShift
	}
	return kmods
}

// Translate maps a virtual key code to its neutral code. The
// mapping is many-to-one; unmapped codes translate to
// key.CodeUnknown.
func Translate(code uint16) key.Code {
	switch code {
	case 0x00:
		return key.CodeA
	case 0x01:
		return key.CodeS
	case 0x02:
		return key.CodeD
	case 0x03:
		return key.CodeF
	case 0x04:
		return key.CodeH
	case 0x05:
		return key.CodeG
	case 0x06:
		return key.CodeZ
	case 0x07:
		return key.CodeX
	case 0x08:
		return key.CodeC
	case 0x09:
		return key.CodeV
	case 0x0B:
		return key.CodeB
	case 0x0C:
		return key.CodeQ
	case 0x0D:
		return key.CodeW
	case 0x0E:
		return key.CodeE
	case 0x0F:
		return key.CodeR
	case 0x10:
		return key.CodeY
	case 0x11:
		return key.CodeT
	case 0x12:
		return key.Code1
	case 0x13:
		return key.Code2
	case 0x14:
		return key.Code3
	case 0x15:
		return key.Code4
	case 0x16:
		return key.Code6
	case 0x17:
		return key.Code5
	case 0x18:
		return key.CodeEqual
	case 0x19:
		return key.Code9
	case 0x1A:
		return key.Code7
	case 0x1B:
		return key.CodeMinus
	case 0x1C:
		return key.Code8
	case 0x1D:
		return key.Code0
	case 0x1E:
		return key.CodeRightBracket
	case 0x1F:
		return key.CodeO
	case 0x20:
		return key.CodeU
	case 0x21:
		return key.CodeLeftBracket
	case 0x22:
		return key.CodeI
	case 0x23:
		return key.CodeP
	case 0x24:
		return key.CodeReturn
	case 0x25:
		return key.CodeL
	case 0x26:
		return key.CodeJ
	case 0x27:
		return key.CodeQuote
	case 0x28:
		return key.CodeK
	case 0x29:
		return key.CodeSemicolon
	case 0x2A:
		return key.CodeBackslash
	case 0x2B:
		return key.CodeComma
	case 0x2C:
		return key.CodeSlash
	case 0x2D:
		return key.CodeN
	case 0x2E:
		return key.CodeM
	case 0x2F:
		return key.CodePeriod
	case 0x30:
		return key.CodeTab
	case 0x31:
		return key.CodeSpace
	case 0x32:
		return key.CodeGrave
	case 0x33:
		return key.CodeDeleteBackward
	case 0x35:
		return key.CodeEscape
	case 0x36, 0x37:
		return key.CodeCommand
	case 0x38, 0x3C:
		return key.CodeShift
	case 0x39:
		return key.CodeCapsLock
	case 0x3A, 0x3D:
		return key.CodeAlt
	case 0x3B, 0x3E:
		return key.CodeCtrl
	case 0x3F:
		return key.CodeFunction
	case 0x40:
		return key.CodeF17
	case 0x41:
		return key.CodeKeypadDecimal
	case 0x43:
		return key.CodeKeypadMultiply
	case 0x45:
		return key.CodeKeypadPlus
	case 0x47:
		return key.CodeKeypadClear
	case 0x4B:
		return key.CodeKeypadDivide
	case 0x4C:
		return key.CodeKeypadEnter
	case 0x4E:
		return key.CodeKeypadMinus
	case 0x4F:
		return key.CodeF18
	case 0x50:
		return key.CodeF19
	case 0x51:
		return key.CodeKeypadEquals
	case 0x52:
		return key.CodeKeypad0
	case 0x53:
		return key.CodeKeypad1
	case 0x54:
		return key.CodeKeypad2
	case 0x55:
		return key.CodeKeypad3
	case 0x56:
		return key.CodeKeypad4
	case 0x57:
		return key.CodeKeypad5
	case 0x58:
		return key.CodeKeypad6
	case 0x59:
		return key.CodeKeypad7
	case 0x5A:
		return key.CodeF20
	case 0x5B:
		return key.CodeKeypad8
	case 0x5C:
		return key.CodeKeypad9
	case 0x60:
		return key.CodeF5
	case 0x61:
		return key.CodeF6
	case 0x62:
		return key.CodeF7
	case 0x63:
		return key.CodeF3
	case 0x64:
		return key.CodeF8
	case 0x65:
		return key.CodeF9
	case 0x67:
		return key.CodeF11
	case 0x69:
		return key.CodeF13
	case 0x6A:
		return key.CodeF16
	case 0x6B:
		return key.CodeF14
	case 0x6D:
		return key.CodeF10
	case 0x6F:
		return key.CodeF12
	case 0x71:
		return key.CodeF15
	case 0x73:
		return key.CodeHome
	case 0x74:
		return key.CodePageUp
	case 0x75:
		return key.CodeDeleteForward
	case 0x76:
		return key.CodeF4
	case 0x77:
		return key.CodeEnd
	case 0x78:
		return key.CodeF2
	case 0x79:
		return key.CodePageDown
	case 0x7A:
		return key.CodeF1
	case 0x7B:
		return key.CodeLeftArrow
	case 0x7C:
		return key.CodeRightArrow
	case 0x7D:
		return key.CodeDownArrow
	case 0x7E:
		return key.CodeUpArrow
	default:
		return key.CodeUnknown
	}
}
