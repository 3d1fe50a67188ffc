//go:build linux || freebsd

package filesystem

import (
	"golang.org/x/sys/unix"
)

// fillDevices sets device identifiers from a stat structure.
func fillDevices(stat *unix.Stat_t, metadata *Metadata) {
	metadata.Device = uint64(stat.Dev)
	metadata.SpecialDevice = uint64(stat.Rdev)
}
