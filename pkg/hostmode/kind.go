package hostmode

import (
	"github.com/pkg/errors"
)

// FileKind is a portable representation of a file type. Exactly one kind
// applies to any filesystem entry, so it is a discriminant rather than a set
// of flags.
type FileKind uint8

const (
	// FileKindInvalid is the zero value of FileKind. It is never produced by
	// decoding and can't be encoded.
	FileKindInvalid FileKind = iota
	// FileKindDirectory represents a directory.
	FileKindDirectory
	// FileKindCharacterDevice represents a character device.
	FileKindCharacterDevice
	// FileKindBlockDevice represents a block device.
	FileKindBlockDevice
	// FileKindRegular represents a regular file.
	FileKindRegular
	// FileKindFIFO represents a named pipe.
	FileKindFIFO
	// FileKindSymbolicLink represents a symbolic link.
	FileKindSymbolicLink
	// FileKindSocket represents a Unix domain socket.
	FileKindSocket
)

// FileKinds lists every valid file kind.
var FileKinds = [...]FileKind{
	FileKindDirectory,
	FileKindCharacterDevice,
	FileKindBlockDevice,
	FileKindRegular,
	FileKindFIFO,
	FileKindSymbolicLink,
	FileKindSocket,
}

// Valid indicates whether or not the kind is one of the defined kinds (other
// than FileKindInvalid).
func (k FileKind) Valid() bool {
	return k >= FileKindDirectory && k <= FileKindSocket
}

// String provides a human-readable representation of a file kind.
func (k FileKind) String() string {
	switch k {
	case FileKindDirectory:
		return "Directory"
	case FileKindCharacterDevice:
		return "Character device"
	case FileKindBlockDevice:
		return "Block device"
	case FileKindRegular:
		return "Regular file"
	case FileKindFIFO:
		return "FIFO"
	case FileKindSymbolicLink:
		return "Symbolic link"
	case FileKindSocket:
		return "Socket"
	default:
		return "Invalid"
	}
}

// Symbol returns the single-character type indicator used by ls -l.
func (k FileKind) Symbol() byte {
	switch k {
	case FileKindDirectory:
		return 'd'
	case FileKindCharacterDevice:
		return 'c'
	case FileKindBlockDevice:
		return 'b'
	case FileKindRegular:
		return '-'
	case FileKindFIFO:
		return 'p'
	case FileKindSymbolicLink:
		return 'l'
	case FileKindSocket:
		return 's'
	default:
		return '?'
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (k FileKind) MarshalText() ([]byte, error) {
	var result string
	switch k {
	case FileKindDirectory:
		result = "directory"
	case FileKindCharacterDevice:
		result = "character-device"
	case FileKindBlockDevice:
		result = "block-device"
	case FileKindRegular:
		result = "regular"
	case FileKindFIFO:
		result = "fifo"
	case FileKindSymbolicLink:
		result = "symbolic-link"
	case FileKindSocket:
		result = "socket"
	default:
		return nil, errors.New("invalid file kind")
	}
	return []byte(result), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (k *FileKind) UnmarshalText(textBytes []byte) error {
	// Convert the bytes to a string.
	text := string(textBytes)

	// Convert to a file kind.
	switch text {
	case "directory", "dir":
		*k = FileKindDirectory
	case "character-device", "char":
		*k = FileKindCharacterDevice
	case "block-device", "block":
		*k = FileKindBlockDevice
	case "regular", "file":
		*k = FileKindRegular
	case "fifo", "pipe":
		*k = FileKindFIFO
	case "symbolic-link", "symlink":
		*k = FileKindSymbolicLink
	case "socket":
		*k = FileKindSocket
	default:
		return errors.Errorf("unknown file kind specification: %s", text)
	}

	// Success.
	return nil
}

// FileKindCodec converts between FileKind values and a host's encoding of file
// type bits. It is immutable and safe for concurrent use.
type FileKindCodec struct {
	// mask isolates the type bits of a raw mode value.
	mask uint32
	// values maps each kind (by index) to its masked host value.
	values [FileKindSocket + 1]uint32
}

// NewFileKindCodec creates a new file kind codec. The definitions should have
// been validated.
func NewFileKindCodec(definitions FileKindDefinitions) *FileKindCodec {
	codec := &FileKindCodec{mask: definitions.Mask}
	for _, kind := range FileKinds {
		codec.values[kind] = definitions.value(kind) & definitions.Mask
	}
	return codec
}

// Mask returns the host bit mask that isolates type bits.
func (c *FileKindCodec) Mask() uint32 {
	return c.mask
}

// Decode extracts the file kind from a raw host mode value. Bits outside the
// type mask are ignored. If the type bits match no known kind, then an
// *UnknownFileKindError is returned.
func (c *FileKindCodec) Decode(raw uint32) (FileKind, error) {
	bits := raw & c.mask
	for _, kind := range FileKinds {
		if c.values[kind] == bits {
			return kind, nil
		}
	}
	return FileKindInvalid, &UnknownFileKindError{Raw: raw, Bits: bits}
}

// Encode returns the host type bits for a file kind. It panics if the kind is
// not valid.
func (c *FileKindCodec) Encode(kind FileKind) uint32 {
	if !kind.Valid() {
		panic("unhandled file kind")
	}
	return c.values[kind]
}
