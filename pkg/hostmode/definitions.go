package hostmode

import (
	"github.com/pkg/errors"
)

// FileKindDefinitions describe a host's encoding of file type bits.
type FileKindDefinitions struct {
	// Mask isolates type bits (S_IFMT).
	Mask uint32
	// Directory is the host value for directories (S_IFDIR).
	Directory uint32
	// CharacterDevice is the host value for character devices (S_IFCHR).
	CharacterDevice uint32
	// BlockDevice is the host value for block devices (S_IFBLK).
	BlockDevice uint32
	// Regular is the host value for regular files (S_IFREG).
	Regular uint32
	// FIFO is the host value for named pipes (S_IFIFO).
	FIFO uint32
	// SymbolicLink is the host value for symbolic links (S_IFLNK).
	SymbolicLink uint32
	// Socket is the host value for sockets (S_IFSOCK).
	Socket uint32
}

// value returns the host value for a valid kind.
func (d FileKindDefinitions) value(kind FileKind) uint32 {
	switch kind {
	case FileKindDirectory:
		return d.Directory
	case FileKindCharacterDevice:
		return d.CharacterDevice
	case FileKindBlockDevice:
		return d.BlockDevice
	case FileKindRegular:
		return d.Regular
	case FileKindFIFO:
		return d.FIFO
	case FileKindSymbolicLink:
		return d.SymbolicLink
	case FileKindSocket:
		return d.Socket
	default:
		panic("unhandled file kind")
	}
}

// Validate ensures that the type mask is non-zero, that every kind value lies
// within the mask, and that the masked kind values are pairwise distinct.
func (d FileKindDefinitions) Validate() error {
	if d.Mask == 0 {
		return errors.Wrap(ErrUnsupportedHost, "file kind mask is empty")
	}
	seen := make(map[uint32]FileKind, len(FileKinds))
	for _, kind := range FileKinds {
		value := d.value(kind)
		if value&^d.Mask != 0 {
			return errors.Wrapf(ErrUnsupportedHost, "%s value %#o exceeds file kind mask %#o", kind, value, d.Mask)
		}
		if other, ok := seen[value]; ok {
			return errors.Wrapf(ErrUnsupportedHost, "%s and %s share value %#o", other, kind, value)
		}
		seen[value] = kind
	}
	return nil
}

// FilePermissionDefinitions describe a host's encoding of permission bits.
type FilePermissionDefinitions struct {
	// AccessMask is the union of the nine read-write-execute bits.
	AccessMask uint32
	// FullMask is AccessMask plus the set-user-ID, set-group-ID, and sticky
	// bits.
	FullMask uint32
	// UserRead is S_IRUSR.
	UserRead uint32
	// UserWrite is S_IWUSR.
	UserWrite uint32
	// UserExecute is S_IXUSR.
	UserExecute uint32
	// GroupRead is S_IRGRP.
	GroupRead uint32
	// GroupWrite is S_IWGRP.
	GroupWrite uint32
	// GroupExecute is S_IXGRP.
	GroupExecute uint32
	// OthersRead is S_IROTH.
	OthersRead uint32
	// OthersWrite is S_IWOTH.
	OthersWrite uint32
	// OthersExecute is S_IXOTH.
	OthersExecute uint32
	// SetUserID is S_ISUID.
	SetUserID uint32
	// SetGroupID is S_ISGID.
	SetGroupID uint32
	// Sticky is S_ISVTX.
	Sticky uint32
}

// accessBits returns the nine read-write-execute values.
func (d FilePermissionDefinitions) accessBits() []uint32 {
	return []uint32{
		d.UserRead, d.UserWrite, d.UserExecute,
		d.GroupRead, d.GroupWrite, d.GroupExecute,
		d.OthersRead, d.OthersWrite, d.OthersExecute,
	}
}

// Validate ensures that every permission value is a distinct single bit and
// that both masks are the unions they claim to be.
func (d FilePermissionDefinitions) Validate() error {
	// Verify that each bit is a distinct single bit.
	var union uint32
	all := append(d.accessBits(), d.SetUserID, d.SetGroupID, d.Sticky)
	for _, bit := range all {
		if bit == 0 || bit&(bit-1) != 0 {
			return errors.Wrapf(ErrUnsupportedHost, "permission value %#o is not a single bit", bit)
		} else if union&bit != 0 {
			return errors.Wrapf(ErrUnsupportedHost, "permission bit %#o defined more than once", bit)
		}
		union |= bit
	}

	// Verify the masks.
	var access uint32
	for _, bit := range d.accessBits() {
		access |= bit
	}
	if d.AccessMask != access {
		return errors.Wrapf(ErrUnsupportedHost, "access mask %#o does not match permission bits %#o", d.AccessMask, access)
	} else if d.FullMask != union {
		return errors.Wrapf(ErrUnsupportedHost, "full mask %#o does not match permission bits %#o", d.FullMask, union)
	}

	// Success.
	return nil
}

// Definitions combine a host's file kind and file permission definitions,
// providing everything needed to convert a raw host mode value.
type Definitions struct {
	// FileKind describes type bits.
	FileKind FileKindDefinitions
	// FilePermission describes permission bits.
	FilePermission FilePermissionDefinitions
}

// Validate validates both halves of the definitions and ensures that the type
// and permission bit ranges are disjoint.
func (d *Definitions) Validate() error {
	if err := d.FileKind.Validate(); err != nil {
		return err
	} else if err = d.FilePermission.Validate(); err != nil {
		return err
	} else if overlap := d.FileKind.Mask & d.FilePermission.FullMask; overlap != 0 {
		return errors.Wrapf(ErrUnsupportedHost, "file kind and permission masks overlap in bits %#o", overlap)
	}
	return nil
}

// NewDefinitions builds and validates definitions from a table of host
// constants. A missing required constant or inconsistent values result in an
// error matching ErrUnsupportedHost.
func NewDefinitions(constants Constants) (*Definitions, error) {
	// Ensure that all required constants are present.
	for _, name := range RequiredConstants {
		if _, ok := constants[name]; !ok {
			return nil, errors.Wrapf(ErrUnsupportedHost, "missing constant %s", name)
		}
	}

	// Build the definitions.
	result := &Definitions{
		FileKind: FileKindDefinitions{
			Mask:            constants["S_IFMT"],
			Directory:       constants["S_IFDIR"],
			CharacterDevice: constants["S_IFCHR"],
			BlockDevice:     constants["S_IFBLK"],
			Regular:         constants["S_IFREG"],
			FIFO:            constants["S_IFIFO"],
			SymbolicLink:    constants["S_IFLNK"],
			Socket:          constants["S_IFSOCK"],
		},
		FilePermission: FilePermissionDefinitions{
			UserRead:      constants["S_IRUSR"],
			UserWrite:     constants["S_IWUSR"],
			UserExecute:   constants["S_IXUSR"],
			GroupRead:     constants["S_IRGRP"],
			GroupWrite:    constants["S_IWGRP"],
			GroupExecute:  constants["S_IXGRP"],
			OthersRead:    constants["S_IROTH"],
			OthersWrite:   constants["S_IWOTH"],
			OthersExecute: constants["S_IXOTH"],
			SetUserID:     constants["S_ISUID"],
			SetGroupID:    constants["S_ISGID"],
			Sticky:        constants["S_ISVTX"],
		},
	}

	// Compute the masks.
	for _, bit := range result.FilePermission.accessBits() {
		result.FilePermission.AccessMask |= bit
	}
	result.FilePermission.FullMask = result.FilePermission.AccessMask |
		result.FilePermission.SetUserID |
		result.FilePermission.SetGroupID |
		result.FilePermission.Sticky

	// If the host provides the per-class convenience masks, then make sure
	// they agree with the individual bits.
	classes := [3]struct {
		name string
		bits uint32
	}{
		{"S_IRWXU", result.FilePermission.UserRead | result.FilePermission.UserWrite | result.FilePermission.UserExecute},
		{"S_IRWXG", result.FilePermission.GroupRead | result.FilePermission.GroupWrite | result.FilePermission.GroupExecute},
		{"S_IRWXO", result.FilePermission.OthersRead | result.FilePermission.OthersWrite | result.FilePermission.OthersExecute},
	}
	for _, class := range classes {
		if value, ok := constants[class.name]; ok && value != class.bits {
			return nil, errors.Wrapf(ErrUnsupportedHost, "%s value %#o does not match its bits %#o", class.name, value, class.bits)
		}
	}

	// Validate the result.
	if err := result.Validate(); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}
