package filesystem

import (
	"golang.org/x/sys/unix"
)

// fillDevices sets device identifiers from a stat structure. Darwin stores
// device IDs as int32, so they're widened through uint32 to avoid sign
// extension of IDs with the high bit set.
func fillDevices(stat *unix.Stat_t, metadata *Metadata) {
	metadata.Device = uint64(uint32(stat.Dev))
	metadata.SpecialDevice = uint64(uint32(stat.Rdev))
}
