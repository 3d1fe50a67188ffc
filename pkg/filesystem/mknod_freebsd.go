package filesystem

import (
	"golang.org/x/sys/unix"
)

// mknod invokes mknod. FreeBSD accepts a full 64-bit device ID.
func mknod(path string, mode uint32, device uint64) error {
	return unix.Mknod(path, mode, device)
}
