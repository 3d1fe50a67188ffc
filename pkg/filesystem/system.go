package filesystem

import (
	"sync"
	"syscall"

	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/hostmode"
	"github.com/modestat/modestat/pkg/logging"
)

// System performs mode-related system calls, converting portable modes to and
// from the host encoding described by its codec. It holds no per-call state
// and is safe for concurrent use. Paths and descriptors are not retained
// beyond the duration of a call.
type System struct {
	// codec converts modes.
	codec *hostmode.ModeCodec
	// logger is the underlying logger.
	logger *logging.Logger
	// calls performs the raw system calls.
	calls syscalls
}

// NewSystem creates a new system call wrapper using the specified codec, which
// must describe the current host. The logger may be nil.
func NewSystem(codec *hostmode.ModeCodec, logger *logging.Logger) *System {
	return &System{
		codec:  codec,
		logger: logger,
		calls:  newSyscalls(),
	}
}

var (
	// hostOnce guards initialization of hostSystem.
	hostOnce sync.Once
	// hostSystem is the shared system for the current host.
	hostSystem *System
	// hostError is any error encountered initializing hostSystem.
	hostError error
)

// Host returns a shared System for the current host, creating it on first use
// from the host codec and a sublogger of the root logger. It fails (with an
// error matching hostmode.ErrUnsupportedHost) if the host isn't supported.
func Host() (*System, error) {
	hostOnce.Do(func() {
		codec, err := hostmode.HostCodec()
		if err != nil {
			hostError = errors.Wrap(err, "unable to load host mode definitions")
			return
		}
		hostSystem = NewSystem(codec, logging.RootLogger.Sublogger("filesystem"))
	})
	return hostSystem, hostError
}

// Codec returns the codec used by the system.
func (s *System) Codec() *hostmode.ModeCodec {
	return s.codec
}

// failure converts a raw system call failure into the error reported to the
// caller. Error numbers become *OSError values.
func (s *System) failure(call, label string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		s.logger.Debugf("%s %s failed: %v", call, label, errno)
		return &OSError{Call: call, Label: label, Errno: errno}
	}
	return errors.Wrapf(err, "unable to perform %s", call)
}

// Mkdir creates a directory with the specified mode. The mode's kind must be
// FileKindDirectory. POSIX leaves the meaning of non-permission bits passed to
// mkdir implementation-defined, so only the permissions are transmitted. As
// with mkdir, they are subject to the process' umask.
func (s *System) Mkdir(path string, mode hostmode.Mode) error {
	if mode.Kind != hostmode.FileKindDirectory {
		return errors.Errorf("invalid kind for directory creation: %s", mode.Kind)
	}
	raw := s.codec.FilePermission().Encode(mode.Permissions)
	s.logger.Tracef("mkdir %s %#o", path, raw)
	if err := s.calls.Mkdir(path, raw); err != nil {
		return s.failure("mkdir", path, err)
	}
	return nil
}

// Mknod creates a filesystem node with the specified mode. The device ID is
// only meaningful for device special files and is passed through uninterpreted.
// Which kinds may be created (and by whom) is up to the host.
func (s *System) Mknod(path string, mode hostmode.Mode, device uint64) error {
	raw := s.codec.Encode(mode)
	s.logger.Tracef("mknod %s %#o %d", path, raw, device)
	if err := s.calls.Mknod(path, raw, device); err != nil {
		return s.failure("mknod", path, err)
	}
	return nil
}

// Chmod sets the permissions of the entry at the specified path, following
// symbolic links. The kind of an entry can't be changed, so only the mode's
// permissions are transmitted and its kind is ignored.
func (s *System) Chmod(path string, mode hostmode.Mode) error {
	raw := s.codec.FilePermission().Encode(mode.Permissions)
	s.logger.Tracef("chmod %s %#o", path, raw)
	if err := s.calls.Chmod(path, raw); err != nil {
		return s.failure("chmod", path, err)
	}
	return nil
}

// Stat returns metadata for the entry at the specified path, following
// symbolic links.
func (s *System) Stat(path string) (*Metadata, error) {
	s.logger.Tracef("stat %s", path)
	metadata := &Metadata{codec: s.codec}
	if err := s.calls.Stat(path, metadata); err != nil {
		return nil, s.failure("stat", path, err)
	}
	return metadata, nil
}

// Lstat returns metadata for the entry at the specified path without following
// a symbolic link at the leaf.
func (s *System) Lstat(path string) (*Metadata, error) {
	s.logger.Tracef("lstat %s", path)
	metadata := &Metadata{codec: s.codec}
	if err := s.calls.Lstat(path, metadata); err != nil {
		return nil, s.failure("lstat", path, err)
	}
	return metadata, nil
}

// Fstat returns metadata for the entry referenced by an open file descriptor.
// Failures carry no label.
func (s *System) Fstat(descriptor int) (*Metadata, error) {
	s.logger.Tracef("fstat %d", descriptor)
	metadata := &Metadata{codec: s.codec}
	if err := s.calls.Fstat(descriptor, metadata); err != nil {
		return nil, s.failure("fstat", "", err)
	}
	return metadata, nil
}

// Mkdir invokes Mkdir on the host System.
func Mkdir(path string, mode hostmode.Mode) error {
	system, err := Host()
	if err != nil {
		return err
	}
	return system.Mkdir(path, mode)
}

// Mknod invokes Mknod on the host System.
func Mknod(path string, mode hostmode.Mode, device uint64) error {
	system, err := Host()
	if err != nil {
		return err
	}
	return system.Mknod(path, mode, device)
}

// Chmod invokes Chmod on the host System.
func Chmod(path string, mode hostmode.Mode) error {
	system, err := Host()
	if err != nil {
		return err
	}
	return system.Chmod(path, mode)
}

// Stat invokes Stat on the host System.
func Stat(path string) (*Metadata, error) {
	system, err := Host()
	if err != nil {
		return nil, err
	}
	return system.Stat(path)
}

// Lstat invokes Lstat on the host System.
func Lstat(path string) (*Metadata, error) {
	system, err := Host()
	if err != nil {
		return nil, err
	}
	return system.Lstat(path)
}

// Fstat invokes Fstat on the host System.
func Fstat(descriptor int) (*Metadata, error) {
	system, err := Host()
	if err != nil {
		return nil, err
	}
	return system.Fstat(descriptor)
}
