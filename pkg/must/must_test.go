package must

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/logging"
)

func init() {
	// Disable colorization so that log output can be inspected.
	color.NoColor = true
}

// TestOSRemove tests that removal failures are logged rather than returned.
func TestOSRemove(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)

	// Remove an existing file.
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	OSRemove(path, logger)
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Error("file not removed")
	}
	if buffer.Len() != 0 {
		t.Error("successful removal logged")
	}

	// Attempt to remove it again.
	OSRemove(path, logger)
	if !strings.Contains(buffer.String(), "Unable to remove") {
		t.Error("removal failure not logged:", buffer.String())
	}
}

// TestSucceed tests that task failures are logged with the task name and that
// successes aren't logged.
func TestSucceed(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)

	Succeed(nil, "restoring permissions", logger)
	if buffer.Len() != 0 {
		t.Error("success logged:", buffer.String())
	}

	Succeed(errors.New("operation not permitted"), "restoring permissions", logger)
	if output := buffer.String(); !strings.Contains(output, "Unable to succeed at restoring permissions; operation not permitted") {
		t.Error("failure not logged correctly:", output)
	}
}

// TestSucceedNilLogger tests that failures can be discarded with a nil logger.
func TestSucceedNilLogger(t *testing.T) {
	Succeed(errors.New("failure"), "testing", nil)
}
