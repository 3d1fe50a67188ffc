//go:build linux || darwin || freebsd

package behavior

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/logging"
)

// TestProbeModeRoundTrip tests the mode probe on the temporary directory.
func TestProbeModeRoundTrip(t *testing.T) {
	system, err := filesystem.Host()
	if err != nil {
		t.Fatal("unable to create host system:", err)
	}
	directory := t.TempDir()

	// Run the probe.
	report, err := ProbeModeRoundTrip(system, directory)
	if err != nil {
		t.Fatal("probe failed:", err)
	}

	// Verify the results.
	if !report.DirectoryKindPreserved {
		t.Error("directory kind not preserved")
	}
	if !report.FIFOSupported {
		t.Error("FIFO creation not supported")
	}
	for _, permissions := range report.Unpreserved {
		if permissions&^0777 == 0 {
			t.Error("access permissions not preserved:", permissions.Octal())
		}
	}

	// Verify that probe entries were removed.
	contents, err := os.ReadDir(directory)
	if err != nil {
		t.Fatal("unable to read directory contents:", err)
	}
	for _, entry := range contents {
		if strings.HasPrefix(entry.Name(), filesystem.TemporaryNamePrefix) {
			t.Error("probe entry not removed:", entry.Name())
		}
	}
}

// TestProbeModeRoundTripCleanupLogging tests that cleanup (restoring the probe
// directory's permissions and removing probe entries) completes without
// logging any warnings.
func TestProbeModeRoundTripCleanupLogging(t *testing.T) {
	system, err := filesystem.Host()
	if err != nil {
		t.Fatal("unable to create host system:", err)
	}

	// Capture warnings from the root logger.
	buffer := &bytes.Buffer{}
	previous := logging.RootLogger
	logging.SetRootLogger(logging.NewLogger(logging.LevelWarn, buffer))
	defer logging.SetRootLogger(previous)

	// Run the probe and verify that nothing was logged.
	if _, err := ProbeModeRoundTrip(system, t.TempDir()); err != nil {
		t.Fatal("probe failed:", err)
	}
	if buffer.Len() != 0 {
		t.Error("cleanup logged warnings:", buffer.String())
	}
}

// TestProbeModeRoundTripMissingDirectory tests that the probe fails if the
// target directory doesn't exist.
func TestProbeModeRoundTripMissingDirectory(t *testing.T) {
	system, err := filesystem.Host()
	if err != nil {
		t.Fatal("unable to create host system:", err)
	}
	if _, err := ProbeModeRoundTrip(system, "/nonexistent/modestat/probe"); err == nil {
		t.Error("probe succeeded on nonexistent directory")
	}
}

// TestProbeName tests that probe names are unique and prefixed.
func TestProbeName(t *testing.T) {
	first, second := probeName("test"), probeName("test")
	if first == second {
		t.Error("probe names not unique")
	}
	if !strings.HasPrefix(first, probeNamePrefix+"test-") {
		t.Error("probe name has incorrect prefix:", first)
	}
}
