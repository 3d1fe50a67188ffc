//go:build linux || darwin

package filesystem

import (
	"golang.org/x/sys/unix"
)

// mknod invokes mknod with the device ID narrowed to the platform's argument
// type.
func mknod(path string, mode uint32, device uint64) error {
	return unix.Mknod(path, mode, int(device))
}
