//go:build !linux && !darwin && !freebsd

package hostmode

import (
	"runtime"

	"github.com/pkg/errors"
)

// HostConstants returns the constants exposed by the current host's headers,
// as captured at build time. The current host doesn't expose them.
func HostConstants() (Constants, error) {
	return nil, errors.Wrapf(ErrUnsupportedHost, "no mode constants available on %s", runtime.GOOS)
}
