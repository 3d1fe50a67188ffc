package hostmode

import (
	"github.com/pkg/errors"
)

// Mode is a portable file mode, pairing a file kind with permission bits.
type Mode struct {
	// Kind is the file kind.
	Kind FileKind
	// Permissions are the permission bits.
	Permissions FilePermission
}

// String renders the mode in the ten-character style used by ls -l (e.g.
// "drwxr-x---").
func (m Mode) String() string {
	return string(m.Kind.Symbol()) + m.Permissions.String()
}

// ModeCodec converts between Mode values and a host's combined mode encoding
// (as used by chmod, mkdir, mknod, and the st_mode field of stat). It is
// immutable and safe for concurrent use.
type ModeCodec struct {
	// definitions are the definitions from which the codec was built.
	definitions *Definitions
	// kind is the file kind codec.
	kind *FileKindCodec
	// permission is the file permission codec.
	permission *FilePermissionCodec
}

// NewModeCodec validates the provided definitions and creates a codec from
// them. The definitions must not be modified after this call.
func NewModeCodec(definitions *Definitions) (*ModeCodec, error) {
	if definitions == nil {
		return nil, errors.New("nil definitions")
	} else if err := definitions.Validate(); err != nil {
		return nil, err
	}
	return &ModeCodec{
		definitions: definitions,
		kind:        NewFileKindCodec(definitions.FileKind),
		permission:  NewFilePermissionCodec(definitions.FilePermission),
	}, nil
}

// NewModeCodecFromConstants builds definitions from a constants table and
// creates a codec from them.
func NewModeCodecFromConstants(constants Constants) (*ModeCodec, error) {
	definitions, err := NewDefinitions(constants)
	if err != nil {
		return nil, err
	}
	return NewModeCodec(definitions)
}

// Definitions returns the definitions underlying the codec. They must not be
// modified.
func (c *ModeCodec) Definitions() *Definitions {
	return c.definitions
}

// FileKind returns the file kind codec.
func (c *ModeCodec) FileKind() *FileKindCodec {
	return c.kind
}

// FilePermission returns the file permission codec.
func (c *ModeCodec) FilePermission() *FilePermissionCodec {
	return c.permission
}

// Decode converts a raw host mode value to a portable mode. It fails only if
// the type bits don't correspond to a known file kind. Bits belonging to
// neither the type mask nor the permission mask are dropped.
func (c *ModeCodec) Decode(raw uint32) (Mode, error) {
	kind, err := c.kind.Decode(raw)
	if err != nil {
		return Mode{}, err
	}
	return Mode{Kind: kind, Permissions: c.permission.Decode(raw)}, nil
}

// Encode converts a portable mode to the host's encoding. It panics if the
// mode's kind is invalid.
func (c *ModeCodec) Encode(mode Mode) uint32 {
	return c.kind.Encode(mode.Kind) | c.permission.Encode(mode.Permissions)
}

// Translate converts a raw mode value from this codec's host encoding to the
// target codec's host encoding.
func (c *ModeCodec) Translate(raw uint32, target *ModeCodec) (uint32, error) {
	mode, err := c.Decode(raw)
	if err != nil {
		return 0, err
	}
	return target.Encode(mode), nil
}
