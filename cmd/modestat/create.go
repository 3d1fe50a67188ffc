package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/modestat/modestat/cmd"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/hostmode"
)

// mkdirMain is the entry point for the mkdir command.
func mkdirMain(_ *cobra.Command, arguments []string) error {
	permissions := hostmode.FilePermission(0777)
	if mkdirConfiguration.mode.IsSet() {
		permissions = mkdirConfiguration.mode.Permissions
	}
	mode := hostmode.Mode{Kind: hostmode.FileKindDirectory, Permissions: permissions}
	return filesystem.Mkdir(arguments[0], mode)
}

// mkdirCommand is the mkdir command.
var mkdirCommand = &cobra.Command{
	Use:          "mkdir <path>",
	Short:        "Create a directory (subject to the umask)",
	Args:         cmd.RequireExactArguments(1),
	RunE:         mkdirMain,
	SilenceUsage: true,
}

// mkdirConfiguration stores configuration for the mkdir command.
var mkdirConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// mode is the directory permissions.
	mode cmd.PermissionValue
}

// mknodMain is the entry point for the mknod command.
func mknodMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	kind := mknodConfiguration.kind.Kind
	if !kind.Valid() {
		return errors.New("file kind must be specified")
	} else if !mknodConfiguration.mode.IsSet() {
		return errors.New("permissions must be specified")
	}
	if mknodConfiguration.device != 0 &&
		kind != hostmode.FileKindCharacterDevice && kind != hostmode.FileKindBlockDevice {
		cmd.Warning("device ID is ignored for non-device kinds")
	}

	// Create the node.
	mode := hostmode.Mode{Kind: kind, Permissions: mknodConfiguration.mode.Permissions}
	return filesystem.Mknod(arguments[0], mode, mknodConfiguration.device)
}

// mknodCommand is the mknod command.
var mknodCommand = &cobra.Command{
	Use:          "mknod <path>",
	Short:        "Create a filesystem node (subject to the umask)",
	Args:         cmd.RequireExactArguments(1),
	RunE:         mknodMain,
	SilenceUsage: true,
}

// mknodConfiguration stores configuration for the mknod command.
var mknodConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// kind is the node kind.
	kind cmd.KindValue
	// mode is the node permissions.
	mode cmd.PermissionValue
	// device is the device ID for device nodes.
	device uint64
}

// chmodMain is the entry point for the chmod command.
func chmodMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if !chmodConfiguration.mode.IsSet() {
		return errors.New("permissions must be specified")
	}
	path := arguments[0]

	// Determine the existing kind of the entry. Chmod follows symbolic links,
	// so we do the same.
	metadata, err := filesystem.Stat(path)
	if err != nil {
		return err
	}
	kind, err := metadata.Kind()
	if err != nil {
		return errors.Wrap(err, "unable to determine existing file kind")
	}

	// Set the permissions.
	mode := hostmode.Mode{Kind: kind, Permissions: chmodConfiguration.mode.Permissions}
	return filesystem.Chmod(path, mode)
}

// chmodCommand is the chmod command.
var chmodCommand = &cobra.Command{
	Use:          "chmod <path>",
	Short:        "Set the permissions of a filesystem entry",
	Args:         cmd.RequireExactArguments(1),
	RunE:         chmodMain,
	SilenceUsage: true,
}

// chmodConfiguration stores configuration for the chmod command.
var chmodConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// mode is the new permissions.
	mode cmd.PermissionValue
}

func init() {
	// Configure mkdir flags.
	flags := mkdirCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&mkdirConfiguration.help, "help", "h", false, "Show help information")
	flags.VarP(&mkdirConfiguration.mode, "mode", "m", "Specify octal permissions (default 0777)")

	// Configure mknod flags.
	flags = mknodCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&mknodConfiguration.help, "help", "h", false, "Show help information")
	flags.VarP(&mknodConfiguration.kind, "kind", "k", "Specify the node kind (regular|fifo|socket|character-device|block-device)")
	flags.VarP(&mknodConfiguration.mode, "mode", "m", "Specify octal permissions")
	flags.Uint64VarP(&mknodConfiguration.device, "device", "d", 0, "Specify the device ID for device nodes")

	// Configure chmod flags.
	flags = chmodCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&chmodConfiguration.help, "help", "h", false, "Show help information")
	flags.VarP(&chmodConfiguration.mode, "mode", "m", "Specify octal permissions")
}
