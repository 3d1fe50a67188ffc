// Package modestat provides build and version information for modestat.
package modestat

import (
	"fmt"
	"runtime"
)

const (
	// VersionMajor represents the current major version of modestat.
	VersionMajor = 0
	// VersionMinor represents the current minor version of modestat.
	VersionMinor = 1
	// VersionPatch represents the current patch version of modestat.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the modestat version
	// string. It must not contain spaces. If empty, no tag is appended to the
	// version string.
	VersionTag = "dev"
)

// Version provides a stringified version of the current modestat version.
var Version string

// init performs global initialization.
func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}

// Platform returns the operating system and architecture for which modestat
// was built, in GOOS/GOARCH format.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
