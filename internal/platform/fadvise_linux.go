//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gosec // G115: fd values are small non-negative integers
func adviseSequential(f *os.File) {
	//nolint:errcheck // fadvise is advisory; not supported on all filesystems
	unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
