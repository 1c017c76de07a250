// SPDX-License-Identifier: Unlicense OR MIT

// Package transfer implements drag and drop affordances.
package transfer

// Op is the operation a drop target offers for the dragged content.
type Op uint8

const (
	// None rejects the drag; dropping has no effect.
	None Op = iota
	// Copy accepts the drag with a copy affordance.
	Copy
)

func (o Op) String() string {
	switch o {
	case None:
		return "None"
	case Copy:
		return "Copy"
	default:
		return "Unknown"
	}
}
