// SPDX-License-Identifier: Unlicense OR MIT

// Package diag writes window, surface and event lifecycle traces to
// standard error. Tracing is off unless the SASH_DEBUG environment
// variable is set to something other than "" or "0", so library
// users pay nothing by default.
package diag

import (
	"fmt"
	"os"
)

var enabled bool

func init() {
	v := os.Getenv("SASH_DEBUG")
	enabled = v != "" && v != "0"
}

// Enabled reports whether tracing is on. Callers with expensive
// arguments should check it before calling Logf.
func Enabled() bool {
	return enabled
}

// Logf writes one trace line tagged with the originating subsystem,
// e.g. "window" or "surface".
func Logf(tag, format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "[sash][%s] %s\n", tag, fmt.Sprintf(format, args...))
}
