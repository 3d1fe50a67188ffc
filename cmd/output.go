package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether or not the specified file is a terminal.
func IsTerminal(file *os.File) bool {
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

// ConfigureColor enables or disables colorized output. Color is disabled if
// requested or if standard output isn't a terminal.
func ConfigureColor(disable bool) {
	color.NoColor = disable || !IsTerminal(os.Stdout)
}
