// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements dimension values for placing and sizing
windows.

A Value is a magnitude with a Unit attached.

Device independent pixel, or dp, is the unit for dimensions
independent of the underlying display density. Pixels, or px, are
physical device pixels. Percent is a fraction of a reference span,
typically a screen dimension.

The zero Value carries UnitDefault and resolves to a caller-supplied
fallback, so window options left unset pick up sensible defaults.
*/
package unit

import (
	"fmt"
	"math"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitDefault is the unit of the zero Value. It resolves to
	// the fallback given at resolution time.
	UnitDefault Unit = iota
	// UnitPx represents physical pixels in the resolution of the
	// underlying display.
	UnitPx
	// UnitDp represents device independent pixels. 1 dp has the
	// same apparent size regardless of display density.
	UnitDp
	// UnitPercent represents a percentage of a reference span,
	// such as a screen width or height.
	UnitPercent
)

// Metric converts Values to pixels against a display density and a
// reference span.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
}

// Px returns the Value for v physical pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Percent returns the Value for v percent of the reference span.
func Percent(v float32) Value {
	return Value{V: v, U: UnitPercent}
}

// Default returns the Value that resolves to the fallback supplied
// at resolution time. It is the zero Value.
func Default() Value {
	return Value{}
}

// IsDefault reports whether v resolves to the fallback.
func (v Value) IsDefault() bool {
	return v.U == UnitDefault
}

// Px resolves v to physical pixels. The span is the reference
// length in pixels for percentages, and fallback is the result for
// the zero Value.
func (m Metric) Px(v Value, span, fallback int) int {
	switch v.U {
	case UnitDefault:
		return fallback
	case UnitPx:
		return round(v.V)
	case UnitDp:
		return round(v.V * m.PxPerDp)
	case UnitPercent:
		return round(float32(span) * v.V / 100)
	default:
		panic("unknown unit")
	}
}

// Dp resolves v to device independent pixels, the inverse scaling
// of Px. The span and fallback are in dp.
func (m Metric) Dp(v Value, span, fallback float32) float32 {
	switch v.U {
	case UnitDefault:
		return fallback
	case UnitPx:
		return v.V / m.PxPerDp
	case UnitDp:
		return v.V
	case UnitPercent:
		return span * v.V / 100
	default:
		panic("unknown unit")
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitDefault:
		return "default"
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitPercent:
		return "%"
	default:
		panic("unknown unit")
	}
}
