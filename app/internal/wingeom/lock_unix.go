// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package wingeom

import (
	"os"

	"golang.org/x/sys/unix"
)

// lock takes an exclusive advisory lock on path, creating it if
// needed, and returns the release function. The lock file is
// separate from the store file because the store is replaced by
// rename.
func lock(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
