package filesystem

// syscalls is the set of raw system calls used by System. Modes are in the
// host's encoding. Failures are reported as the raw error returned by the
// system (normally a syscall.Errno).
type syscalls interface {
	// Mkdir wraps mkdir.
	Mkdir(path string, mode uint32) error
	// Mknod wraps mknod.
	Mknod(path string, mode uint32, device uint64) error
	// Stat wraps stat, storing the result in metadata.
	Stat(path string, metadata *Metadata) error
	// Lstat wraps lstat, storing the result in metadata.
	Lstat(path string, metadata *Metadata) error
	// Fstat wraps fstat, storing the result in metadata.
	Fstat(descriptor int, metadata *Metadata) error
	// Chmod wraps chmod.
	Chmod(path string, mode uint32) error
}
