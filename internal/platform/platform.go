// Package platform holds OS-specific file access hints.
package platform

import "os"

// AdviseSequential tells the kernel that f will be read front to back.
// The hint is best effort; unsupported platforms and filesystems ignore it.
func AdviseSequential(f *os.File) {
	adviseSequential(f)
}
