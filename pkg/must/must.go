// Package must provides helpers for cleanup operations whose failures can't
// be propagated to the caller and should instead be logged.
package must

import (
	"io"
	"os"

	"github.com/modestat/modestat/pkg/logging"
)

// Close closes c, logging any failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// OSRemove removes the named file or empty directory, logging any failure.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// Succeed logs err, if non-nil, as a failure of the named task.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("Unable to succeed at %s; %s", task, err.Error())
	}
}
