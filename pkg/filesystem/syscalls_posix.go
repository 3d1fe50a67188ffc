//go:build linux || darwin || freebsd

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// unixSyscalls implements syscalls using the unix package.
type unixSyscalls struct{}

// newSyscalls creates the system call implementation for the current host.
func newSyscalls() syscalls {
	return unixSyscalls{}
}

// Mkdir wraps around unix.Mkdir.
func (unixSyscalls) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

// Mknod wraps around unix.Mknod.
func (unixSyscalls) Mknod(path string, mode uint32, device uint64) error {
	return mknod(path, mode, device)
}

// Stat wraps around unix.Stat.
func (unixSyscalls) Stat(path string, metadata *Metadata) error {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return err
	}
	fillMetadata(&stat, metadata)
	return nil
}

// Lstat wraps around unix.Lstat.
func (unixSyscalls) Lstat(path string, metadata *Metadata) error {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return err
	}
	fillMetadata(&stat, metadata)
	return nil
}

// Fstat wraps around unix.Fstat.
func (unixSyscalls) Fstat(descriptor int, metadata *Metadata) error {
	var stat unix.Stat_t
	if err := unix.Fstat(descriptor, &stat); err != nil {
		return err
	}
	fillMetadata(&stat, metadata)
	return nil
}

// Chmod wraps around unix.Chmod.
func (unixSyscalls) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// fillMetadata copies the fields of a native stat structure into metadata. The
// field widths and signedness of Stat_t vary between platforms, so every field
// is converted explicitly.
func fillMetadata(stat *unix.Stat_t, metadata *Metadata) {
	fillDevices(stat, metadata)
	metadata.Inode = uint64(stat.Ino)
	metadata.LinkCount = uint64(stat.Nlink)
	metadata.RawMode = uint32(stat.Mode)
	metadata.UserID = stat.Uid
	metadata.GroupID = stat.Gid
	metadata.Size = stat.Size
	metadata.BlockCount = int64(stat.Blocks)
	metadata.AccessTime = time.Unix(stat.Atim.Unix())
	metadata.ModificationTime = time.Unix(stat.Mtim.Unix())
	metadata.ChangeTime = time.Unix(stat.Ctim.Unix())
}
