package filesystem

import (
	"time"

	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/hostmode"
)

// Metadata is an immutable snapshot of the metadata for a filesystem entry, as
// returned by the stat family of system calls. The raw mode is stored in the
// host's encoding and only decoded on request.
type Metadata struct {
	// Device is the ID of the device containing the entry (st_dev).
	Device uint64
	// Inode is the entry's inode number (st_ino).
	Inode uint64
	// LinkCount is the number of hard links to the entry (st_nlink).
	LinkCount uint64
	// RawMode is the entry's mode in the host's encoding (st_mode).
	RawMode uint32
	// UserID is the ID of the entry's owner (st_uid).
	UserID uint32
	// GroupID is the ID of the entry's group (st_gid).
	GroupID uint32
	// SpecialDevice is the device ID for device special files (st_rdev). It is
	// opaque and not interpreted.
	SpecialDevice uint64
	// Size is the size of the entry in bytes (st_size).
	Size int64
	// BlockCount is the number of blocks allocated to the entry (st_blocks).
	BlockCount int64
	// AccessTime is the last access time (st_atim).
	AccessTime time.Time
	// ModificationTime is the last modification time (st_mtim).
	ModificationTime time.Time
	// ChangeTime is the last status change time (st_ctim).
	ChangeTime time.Time

	// codec is the codec used to decode RawMode.
	codec *hostmode.ModeCodec
}

// errNoCodec indicates that metadata wasn't produced by a System.
var errNoCodec = errors.New("metadata not associated with a mode codec")

// Mode decodes the raw mode into a portable mode. It fails if the type bits
// don't correspond to a known file kind.
func (m *Metadata) Mode() (hostmode.Mode, error) {
	if m.codec == nil {
		return hostmode.Mode{}, errNoCodec
	}
	return m.codec.Decode(m.RawMode)
}

// Kind decodes only the file kind from the raw mode.
func (m *Metadata) Kind() (hostmode.FileKind, error) {
	if m.codec == nil {
		return hostmode.FileKindInvalid, errNoCodec
	}
	return m.codec.FileKind().Decode(m.RawMode)
}

// Permissions decodes only the permission bits from the raw mode. It panics
// if the metadata wasn't produced by a System.
func (m *Metadata) Permissions() hostmode.FilePermission {
	if m.codec == nil {
		panic(errNoCodec)
	}
	return m.codec.FilePermission().Decode(m.RawMode)
}
