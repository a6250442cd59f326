//go:build !linux

package platform

import "os"

// adviseSequential is a no-op on non-Linux platforms (posix_fadvise is not portable).
func adviseSequential(_ *os.File) {}
