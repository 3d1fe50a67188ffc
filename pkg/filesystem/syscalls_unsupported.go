//go:build !linux && !darwin && !freebsd

package filesystem

import (
	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/hostmode"
)

// errUnsupported is returned by every system call on unsupported hosts.
var errUnsupported = errors.Wrap(hostmode.ErrUnsupportedHost, "POSIX mode system calls unavailable")

// unsupportedSyscalls implements syscalls on hosts without POSIX mode support.
type unsupportedSyscalls struct{}

// newSyscalls creates the system call implementation for the current host.
func newSyscalls() syscalls {
	return unsupportedSyscalls{}
}

// Mkdir implements syscalls.Mkdir.
func (unsupportedSyscalls) Mkdir(_ string, _ uint32) error {
	return errUnsupported
}

// Mknod implements syscalls.Mknod.
func (unsupportedSyscalls) Mknod(_ string, _ uint32, _ uint64) error {
	return errUnsupported
}

// Stat implements syscalls.Stat.
func (unsupportedSyscalls) Stat(_ string, _ *Metadata) error {
	return errUnsupported
}

// Lstat implements syscalls.Lstat.
func (unsupportedSyscalls) Lstat(_ string, _ *Metadata) error {
	return errUnsupported
}

// Fstat implements syscalls.Fstat.
func (unsupportedSyscalls) Fstat(_ int, _ *Metadata) error {
	return errUnsupported
}

// Chmod implements syscalls.Chmod.
func (unsupportedSyscalls) Chmod(_ string, _ uint32) error {
	return errUnsupported
}
