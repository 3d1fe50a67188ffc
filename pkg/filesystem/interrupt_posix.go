//go:build linux || darwin || freebsd

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// RetryingOnEINTR invokes operation until it returns something other than an
// EINTR failure. The System wrappers never retry on their own, so callers that
// want EINTR resilience opt in explicitly, e.g.:
//
//	err := RetryingOnEINTR(func() error { return system.Chmod(path, mode) })
func RetryingOnEINTR(operation func() error) error {
	for {
		if err := operation(); !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}
