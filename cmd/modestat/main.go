package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/modestat/modestat/cmd"

	"github.com/modestat/modestat/pkg/configuration"
	"github.com/modestat/modestat/pkg/logging"
	"github.com/modestat/modestat/pkg/modestat"
)

// loadedConfiguration is the configuration loaded before any command runs.
var loadedConfiguration *configuration.Configuration

// rootPersistentPreRun loads configuration and configures logging and output.
func rootPersistentPreRun(_ *cobra.Command, _ []string) error {
	// Load the configuration.
	var err error
	loadedConfiguration, err = configuration.Load(rootConfiguration.environment)
	if err != nil {
		return err
	}

	// Configure output.
	cmd.ConfigureColor(loadedConfiguration.NoColor)

	// Configure logging.
	logging.SetRootLogger(logging.NewLogger(loadedConfiguration.LogLevel, os.Stderr))

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were invoked, then print help information and bail. We
	// don't have to worry about warning about arguments being present here
	// (which would be incorrect usage) because arguments can't even reach this
	// point (they will be mistaken for subcommands and an error will be
	// displayed).
	return command.Help()
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "modestat",
	Version:           modestat.Version,
	Short:             "Query and set POSIX file modes portably",
	PersistentPreRunE: rootPersistentPreRun,
	RunE:              rootMain,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// environment is the path to the environment file.
	environment string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("modestat version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Add the environment file flag, which applies to all commands.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&rootConfiguration.environment, "environment", configuration.DefaultPath, "Specify the environment file")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		statCommand,
		lstatCommand,
		fstatCommand,
		mkdirCommand,
		mknodCommand,
		chmodCommand,
		definitionsCommand,
		decodeCommand,
		encodeCommand,
		translateCommand,
		probeCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
