package hostmode

import (
	"sync"
)

var (
	// hostOnce guards the initialization of the host definitions.
	hostOnce sync.Once
	// hostCodec is the host codec.
	hostCodec *ModeCodec
	// hostError is any error encountered while building the host codec.
	hostError error
)

// initializeHost builds the host codec.
func initializeHost() {
	constants, err := HostConstants()
	if err != nil {
		hostError = err
		return
	}
	hostCodec, hostError = NewModeCodecFromConstants(constants)
}

// HostCodec returns the codec for the current host. It is computed on first
// use and then shared for the lifetime of the process. If the host is not
// supported, then every call returns the same error (matching
// ErrUnsupportedHost).
func HostCodec() (*ModeCodec, error) {
	hostOnce.Do(initializeHost)
	return hostCodec, hostError
}

// Host returns the definitions for the current host. They must not be
// modified.
func Host() (*Definitions, error) {
	codec, err := HostCodec()
	if err != nil {
		return nil, err
	}
	return codec.Definitions(), nil
}
