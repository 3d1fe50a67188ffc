package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modestat/modestat/cmd"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/filesystem/behavior"
)

// formatResult formats a boolean probe result.
func formatResult(result bool) string {
	if result {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// probeMain is the entry point for the probe command.
func probeMain(_ *cobra.Command, arguments []string) error {
	// Run the probe.
	system, err := filesystem.Host()
	if err != nil {
		return err
	}
	report, err := behavior.ProbeModeRoundTrip(system, arguments[0])
	if err != nil {
		return err
	}

	// Print the report.
	fmt.Fprintf(color.Output, "Directory kind preserved: %s\n", formatResult(report.DirectoryKindPreserved))
	fmt.Fprintf(color.Output, "FIFO creation supported: %s\n", formatResult(report.FIFOSupported))
	unpreserved := make(map[string]bool, len(report.Unpreserved))
	for _, permissions := range report.Unpreserved {
		unpreserved[permissions.Octal()] = true
	}
	fmt.Fprintln(color.Output, "Permissions preserved:")
	for _, permissions := range behavior.ProbePermissions {
		fmt.Fprintf(color.Output, "\t%s %s: %s\n",
			permissions.Octal(), permissions, formatResult(!unpreserved[permissions.Octal()]),
		)
	}

	// Success.
	return nil
}

// probeCommand is the probe command.
var probeCommand = &cobra.Command{
	Use:          "probe <directory>",
	Short:        "Check how a filesystem preserves modes",
	Args:         cmd.RequireExactArguments(1),
	RunE:         probeMain,
	SilenceUsage: true,
}

// probeConfiguration stores configuration for the probe command.
var probeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := probeCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&probeConfiguration.help, "help", "h", false, "Show help information")
}
