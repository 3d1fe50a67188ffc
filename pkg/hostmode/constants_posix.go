//go:build linux || darwin || freebsd

package hostmode

import (
	"golang.org/x/sys/unix"
)

// HostConstants returns the constants exposed by the current host's headers,
// as captured at build time.
func HostConstants() (Constants, error) {
	return Constants{
		"S_IFMT":   unix.S_IFMT,
		"S_IFDIR":  unix.S_IFDIR,
		"S_IFCHR":  unix.S_IFCHR,
		"S_IFBLK":  unix.S_IFBLK,
		"S_IFREG":  unix.S_IFREG,
		"S_IFIFO":  unix.S_IFIFO,
		"S_IFLNK":  unix.S_IFLNK,
		"S_IFSOCK": unix.S_IFSOCK,
		"S_IRWXU":  unix.S_IRWXU,
		"S_IRUSR":  unix.S_IRUSR,
		"S_IWUSR":  unix.S_IWUSR,
		"S_IXUSR":  unix.S_IXUSR,
		"S_IRWXG":  unix.S_IRWXG,
		"S_IRGRP":  unix.S_IRGRP,
		"S_IWGRP":  unix.S_IWGRP,
		"S_IXGRP":  unix.S_IXGRP,
		"S_IRWXO":  unix.S_IRWXO,
		"S_IROTH":  unix.S_IROTH,
		"S_IWOTH":  unix.S_IWOTH,
		"S_IXOTH":  unix.S_IXOTH,
		"S_ISUID":  unix.S_ISUID,
		"S_ISGID":  unix.S_ISGID,
		"S_ISVTX":  unix.S_ISVTX,
	}, nil
}
