//go:build linux || darwin || freebsd

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/modestat/modestat/pkg/filesystem"
)

func init() {
	color.NoColor = true
}

// withBirthRecorded runs a test with birth time reporting forced to the
// specified state.
func withBirthRecorded(t *testing.T, recorded bool) {
	t.Helper()
	previous := birthRecorded
	birthRecorded = recorded
	t.Cleanup(func() {
		birthRecorded = previous
	})
}

// TestBirthTime tests birth time queries for existing, missing, and
// unrecorded entries.
func TestBirthTime(t *testing.T) {
	// Create a file and a symbolic link to it.
	directory := t.TempDir()
	target := filepath.Join(directory, "target")
	if err := os.WriteFile(target, []byte("data"), 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	link := filepath.Join(directory, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Verify that hosts without creation time never report one.
	withBirthRecorded(t, false)
	if _, ok := birthTime(target, true); ok {
		t.Error("birth time reported on host without creation time")
	}

	// Force reporting and verify that existing entries (followed or not) yield
	// a non-zero time while missing entries are skipped.
	birthRecorded = true
	for _, follow := range []bool{true, false} {
		if birth, ok := birthTime(link, follow); !ok {
			t.Error("birth time unavailable for existing entry, follow:", follow)
		} else if birth.IsZero() {
			t.Error("zero birth time reported, follow:", follow)
		}
	}
	if _, ok := birthTime(filepath.Join(directory, "missing"), true); ok {
		t.Error("birth time reported for missing entry")
	}

	// A dangling link can still be queried without following it.
	if err := os.Remove(target); err != nil {
		t.Fatal("unable to remove link target:", err)
	}
	if _, ok := birthTime(link, true); ok {
		t.Error("birth time reported through dangling link")
	}
	if _, ok := birthTime(link, false); !ok {
		t.Error("birth time unavailable for dangling link itself")
	}
}

// TestPrintMetadataBirth tests that the birth line is printed only when a
// birth time is provided.
func TestPrintMetadataBirth(t *testing.T) {
	// Create a file and query its metadata.
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	metadata, err := filesystem.Lstat(path)
	if err != nil {
		t.Fatal("unable to query metadata:", err)
	}

	// Set up test cases.
	testCases := []struct {
		birth         time.Time
		expectBirth   bool
		expectedBirth string
	}{
		{time.Time{}, false, ""},
		{time.Unix(1600000000, 5), true, time.Unix(1600000000, 5).Format(timeFormat)},
	}

	// Process test cases.
	for _, testCase := range testCases {
		output := &bytes.Buffer{}
		printMetadata(output, path, metadata, testCase.birth)
		printed := output.String()
		if !strings.Contains(printed, "File: "+path+"\n") {
			t.Error("label missing from output:", printed)
		}
		if !strings.Contains(printed, "Change: ") {
			t.Error("change time missing from output:", printed)
		}
		if hasBirth := strings.Contains(printed, "Birth: "); hasBirth != testCase.expectBirth {
			t.Errorf("birth line presence (%t) does not match expected (%t)", hasBirth, testCase.expectBirth)
		} else if hasBirth && !strings.Contains(printed, "Birth: "+testCase.expectedBirth) {
			t.Error("birth line has incorrect time:", printed)
		}
	}
}
