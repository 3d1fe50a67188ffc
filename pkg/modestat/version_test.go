package modestat

import (
	"strings"
	"testing"
)

// TestVersionFormat tests that the version string contains its components.
func TestVersionFormat(t *testing.T) {
	if !strings.HasPrefix(Version, "0.1.0") {
		t.Error("version does not have expected prefix:", Version)
	}
	if VersionTag != "" && !strings.HasSuffix(Version, "-"+VersionTag) {
		t.Error("version does not include tag:", Version)
	}
	if strings.Contains(Version, " ") {
		t.Error("version contains spaces")
	}
}

// TestPlatform tests that the platform is in GOOS/GOARCH format.
func TestPlatform(t *testing.T) {
	if components := strings.Split(Platform(), "/"); len(components) != 2 {
		t.Error("platform has invalid format:", Platform())
	}
}
