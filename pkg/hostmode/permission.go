package hostmode

import (
	"strconv"

	"github.com/pkg/errors"
)

// FilePermission is a portable set of permission bits. Its layout is fixed and
// host-independent: it follows the traditional octal convention, with the
// user/group/others read-write-execute bits in the low nine bits (0777) and the
// set-user-ID, set-group-ID, and sticky bits at 04000, 02000, and 01000. It
// never contains bits above 07777 when produced by decoding.
type FilePermission uint16

const (
	// PermissionOthersExecute is the others executable bit.
	PermissionOthersExecute = FilePermission(0001)
	// PermissionOthersWrite is the others writable bit.
	PermissionOthersWrite = FilePermission(0002)
	// PermissionOthersRead is the others readable bit.
	PermissionOthersRead = FilePermission(0004)
	// PermissionGroupExecute is the group executable bit.
	PermissionGroupExecute = FilePermission(0010)
	// PermissionGroupWrite is the group writable bit.
	PermissionGroupWrite = FilePermission(0020)
	// PermissionGroupRead is the group readable bit.
	PermissionGroupRead = FilePermission(0040)
	// PermissionUserExecute is the user executable bit.
	PermissionUserExecute = FilePermission(0100)
	// PermissionUserWrite is the user writable bit.
	PermissionUserWrite = FilePermission(0200)
	// PermissionUserRead is the user readable bit.
	PermissionUserRead = FilePermission(0400)
	// PermissionSticky is the sticky bit.
	PermissionSticky = FilePermission(01000)
	// PermissionSetGroupID is the set-group-ID bit.
	PermissionSetGroupID = FilePermission(02000)
	// PermissionSetUserID is the set-user-ID bit.
	PermissionSetUserID = FilePermission(04000)

	// PermissionAccessMask isolates the nine read-write-execute bits.
	PermissionAccessMask = FilePermission(0777)
	// PermissionMask isolates all portable permission bits.
	PermissionMask = FilePermission(07777)
)

// ParsePermission parses a user-specified octal string and verifies that it is
// limited to the bits specified in mask. It allows, but does not require, the
// string to begin with a 0 (or several 0s). The provided string must not be
// empty.
func ParsePermission(value string, mask FilePermission) (FilePermission, error) {
	if p, err := strconv.ParseUint(value, 8, 16); err != nil {
		return 0, errors.Wrap(err, "unable to parse numeric value")
	} else if permission := FilePermission(p); permission&mask != permission {
		return 0, errors.New("permissions contain disallowed bits")
	} else {
		return permission, nil
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText. It accepts
// octal values limited to PermissionMask.
func (p *FilePermission) UnmarshalText(textBytes []byte) error {
	if result, err := ParsePermission(string(textBytes), PermissionMask); err != nil {
		return err
	} else {
		*p = result
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.MarshalText, producing a
// four-digit octal value.
func (p FilePermission) MarshalText() ([]byte, error) {
	return []byte(p.Octal()), nil
}

// Octal returns the four-digit octal representation of the permission bits.
func (p FilePermission) Octal() string {
	result := strconv.FormatUint(uint64(p&PermissionMask), 8)
	for len(result) < 4 {
		result = "0" + result
	}
	return result
}

// String renders the permission bits in the nine-character style used by
// ls -l, including set-user-ID, set-group-ID, and sticky substitutions.
func (p FilePermission) String() string {
	buffer := []byte("---------")
	triplets := [3]struct {
		read, write, execute, special FilePermission
		specialSet, specialUnset      byte
	}{
		{PermissionUserRead, PermissionUserWrite, PermissionUserExecute, PermissionSetUserID, 's', 'S'},
		{PermissionGroupRead, PermissionGroupWrite, PermissionGroupExecute, PermissionSetGroupID, 's', 'S'},
		{PermissionOthersRead, PermissionOthersWrite, PermissionOthersExecute, PermissionSticky, 't', 'T'},
	}
	for t, triplet := range triplets {
		offset := 3 * t
		if p&triplet.read != 0 {
			buffer[offset] = 'r'
		}
		if p&triplet.write != 0 {
			buffer[offset+1] = 'w'
		}
		switch executable, special := p&triplet.execute != 0, p&triplet.special != 0; {
		case executable && special:
			buffer[offset+2] = triplet.specialSet
		case special:
			buffer[offset+2] = triplet.specialUnset
		case executable:
			buffer[offset+2] = 'x'
		}
	}
	return string(buffer)
}

// permissionBit associates a portable permission bit with its host value.
type permissionBit struct {
	// portable is the portable bit.
	portable FilePermission
	// host is the host bit.
	host uint32
}

// FilePermissionCodec converts between FilePermission values and a host's
// encoding of permission bits. The conversion is a per-bit remapping, so the
// host may place each bit at any position. It is immutable and safe for
// concurrent use.
type FilePermissionCodec struct {
	// mask is the union of all host permission bits.
	mask uint32
	// bits is the remapping table.
	bits [12]permissionBit
}

// NewFilePermissionCodec creates a new file permission codec. The definitions
// should have been validated.
func NewFilePermissionCodec(definitions FilePermissionDefinitions) *FilePermissionCodec {
	return &FilePermissionCodec{
		mask: definitions.FullMask,
		bits: [12]permissionBit{
			{PermissionUserRead, definitions.UserRead},
			{PermissionUserWrite, definitions.UserWrite},
			{PermissionUserExecute, definitions.UserExecute},
			{PermissionGroupRead, definitions.GroupRead},
			{PermissionGroupWrite, definitions.GroupWrite},
			{PermissionGroupExecute, definitions.GroupExecute},
			{PermissionOthersRead, definitions.OthersRead},
			{PermissionOthersWrite, definitions.OthersWrite},
			{PermissionOthersExecute, definitions.OthersExecute},
			{PermissionSetUserID, definitions.SetUserID},
			{PermissionSetGroupID, definitions.SetGroupID},
			{PermissionSticky, definitions.Sticky},
		},
	}
}

// Mask returns the union of all host permission bits.
func (c *FilePermissionCodec) Mask() uint32 {
	return c.mask
}

// Decode extracts the permission bits from a raw host mode value. Bits that
// don't correspond to a known permission are dropped.
func (c *FilePermissionCodec) Decode(raw uint32) FilePermission {
	var result FilePermission
	for _, bit := range c.bits {
		if raw&bit.host != 0 {
			result |= bit.portable
		}
	}
	return result
}

// Encode converts portable permission bits to the host's encoding. Bits above
// PermissionMask are ignored.
func (c *FilePermissionCodec) Encode(permission FilePermission) uint32 {
	var result uint32
	for _, bit := range c.bits {
		if permission&bit.portable != 0 {
			result |= bit.host
		}
	}
	return result
}
