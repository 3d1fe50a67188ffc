package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// warningPrefix is the prefix used for warnings.
	warningPrefix = color.New(color.FgYellow).SprintFunc()
	// errorPrefix is the prefix used for errors.
	errorPrefix = color.New(color.FgRed).SprintFunc()
)

// Warning prints a warning message to standard error.
func Warning(message string) {
	fmt.Fprintln(color.Error, warningPrefix("Warning:"), message)
}

// Error prints an error message to standard error.
func Error(err error) {
	fmt.Fprintln(color.Error, errorPrefix("Error:"), err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
