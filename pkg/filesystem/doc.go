// Package filesystem provides thin wrappers around the POSIX stat, lstat,
// fstat, mkdir, mknod, and chmod system calls that accept and return portable
// modes (see the hostmode package) rather than host-specific mode bits.
//
// The wrappers are one-shot: each performs exactly one system call, blocks for
// its duration, and reports failure as an *OSError. Nothing is retried
// automatically, not even on EINTR (see RetryingOnEINTR).
package filesystem
