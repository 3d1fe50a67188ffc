package filesystem

import (
	"syscall"
)

// OSError records a failed system call. It carries enough context to build a
// meaningful message without the wrappers formatting one themselves.
type OSError struct {
	// Call is the name of the failed system call (e.g. "stat").
	Call string
	// Label is an optional human-readable label for the call, typically the
	// path involved. It is empty if no label applies (e.g. for fstat).
	Label string
	// Errno is the raw error number reported by the system.
	Errno syscall.Errno
}

// Error implements error.Error.
func (e *OSError) Error() string {
	if e.Label == "" {
		return e.Call + ": " + e.Errno.Error()
	}
	return e.Call + " " + e.Label + ": " + e.Errno.Error()
}

// Unwrap returns the underlying error number, allowing errors.Is comparisons
// against both specific errno values (e.g. unix.ENOENT) and the portable error
// values of the io/fs package (e.g. fs.ErrNotExist).
func (e *OSError) Unwrap() error {
	return e.Errno
}

// Timeout reports whether the error represents a timeout. It allows os.IsTimeout
// to classify failed calls on network filesystems.
func (e *OSError) Timeout() bool {
	return e.Errno.Timeout()
}
