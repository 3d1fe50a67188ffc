package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mutagen-io/extstat"
	"github.com/spf13/cobra"

	"github.com/modestat/modestat/cmd"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/hostmode"
)

// timeFormat is the format used for timestamps.
const timeFormat = "2006-01-02 15:04:05.000000000 -0700"

// kindColors maps file kinds to the colors used when printing them.
var kindColors = map[hostmode.FileKind]*color.Color{
	hostmode.FileKindDirectory:       color.New(color.FgBlue, color.Bold),
	hostmode.FileKindCharacterDevice: color.New(color.FgYellow, color.Bold),
	hostmode.FileKindBlockDevice:     color.New(color.FgYellow, color.Bold),
	hostmode.FileKindRegular:         color.New(color.Reset),
	hostmode.FileKindFIFO:            color.New(color.FgYellow),
	hostmode.FileKindSymbolicLink:    color.New(color.FgCyan, color.Bold),
	hostmode.FileKindSocket:          color.New(color.FgMagenta, color.Bold),
}

// owners resolves user and group names for printing.
var owners = filesystem.NewOwnershipResolver(filesystem.DefaultOwnershipCacheSize)

// birthRecorded indicates whether or not the host's stat structure records
// creation time. Elsewhere extstat reports the modification time in its place.
var birthRecorded = runtime.GOOS == "darwin" || runtime.GOOS == "freebsd"

// birthTime returns the creation time of the entry at the specified path,
// following symbolic links if follow is true. It returns false if the host
// doesn't record creation time, if the entry can't be queried, or if the
// filesystem left the value unset.
func birthTime(path string, follow bool) (time.Time, bool) {
	if !birthRecorded {
		return time.Time{}, false
	}
	var info os.FileInfo
	var err error
	if follow {
		info, err = os.Stat(path)
	} else {
		info, err = os.Lstat(path)
	}
	if err != nil {
		return time.Time{}, false
	}
	birth := extstat.New(info).BirthTime
	if birth.IsZero() || birth.Unix() <= 0 {
		return time.Time{}, false
	}
	return birth, true
}

// printMetadata prints metadata in human-readable form. A birth line is only
// printed if birth is non-zero.
func printMetadata(output io.Writer, label string, metadata *filesystem.Metadata, birth time.Time) {
	// Print the label.
	if label != "" {
		fmt.Fprintf(output, "File: %s\n", label)
	}

	// Print kind and permission information. Metadata with unknown type bits
	// is still printed, but with a warning.
	if mode, err := metadata.Mode(); err != nil {
		cmd.Warning(err.Error())
		fmt.Fprintf(output, "Kind: unknown\n")
		fmt.Fprintf(output, "Permissions: %s\n", metadata.Permissions().Octal())
	} else {
		kind := kindColors[mode.Kind].Sprint(mode.Kind.String())
		fmt.Fprintf(output, "Kind: %s\n", kind)
		fmt.Fprintf(output, "Mode: %s (%s)\n", mode, mode.Permissions.Octal())
	}
	fmt.Fprintf(output, "Raw mode: %#o\n", metadata.RawMode)

	// Print size information.
	fmt.Fprintf(output, "Size: %s (%d bytes, %d blocks)\n",
		humanize.IBytes(uint64(metadata.Size)), metadata.Size, metadata.BlockCount,
	)

	// Print ownership.
	fmt.Fprintf(output, "Owner: %s (%d)\n", owners.UserName(metadata.UserID), metadata.UserID)
	fmt.Fprintf(output, "Group: %s (%d)\n", owners.GroupName(metadata.GroupID), metadata.GroupID)

	// Print device and link information.
	fmt.Fprintf(output, "Device: %d\n", metadata.Device)
	fmt.Fprintf(output, "Inode: %d\n", metadata.Inode)
	fmt.Fprintf(output, "Links: %d\n", metadata.LinkCount)
	if metadata.SpecialDevice != 0 {
		fmt.Fprintf(output, "Special device: %#x\n", metadata.SpecialDevice)
	}

	// Print timestamps.
	printTime(output, "Access", metadata.AccessTime)
	printTime(output, "Modify", metadata.ModificationTime)
	printTime(output, "Change", metadata.ChangeTime)
	if !birth.IsZero() {
		printTime(output, "Birth", birth)
	}
}

// printTime prints a timestamp along with its relative age.
func printTime(output io.Writer, name string, timestamp time.Time) {
	fmt.Fprintf(output, "%s: %s (%s)\n", name, timestamp.Format(timeFormat), humanize.Time(timestamp))
}

// statPaths runs the specified stat operation against each path. The follow
// parameter must indicate whether or not the operation follows symbolic links.
func statPaths(paths []string, stat func(string) (*filesystem.Metadata, error), follow bool) error {
	for i, path := range paths {
		metadata, err := stat(path)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(color.Output)
		}
		birth, _ := birthTime(path, follow)
		printMetadata(color.Output, path, metadata, birth)
	}
	return nil
}

// statMain is the entry point for the stat command.
func statMain(_ *cobra.Command, arguments []string) error {
	return statPaths(arguments, filesystem.Stat, true)
}

// statCommand is the stat command.
var statCommand = &cobra.Command{
	Use:          "stat <path>...",
	Short:        "Show metadata for paths, following symbolic links",
	Args:         cmd.RequireArguments(1),
	RunE:         statMain,
	SilenceUsage: true,
}

// lstatMain is the entry point for the lstat command.
func lstatMain(_ *cobra.Command, arguments []string) error {
	return statPaths(arguments, filesystem.Lstat, false)
}

// lstatCommand is the lstat command.
var lstatCommand = &cobra.Command{
	Use:          "lstat <path>...",
	Short:        "Show metadata for paths without following symbolic links",
	Args:         cmd.RequireArguments(1),
	RunE:         lstatMain,
	SilenceUsage: true,
}

// fstatMain is the entry point for the fstat command.
func fstatMain(_ *cobra.Command, _ []string) error {
	metadata, err := filesystem.Fstat(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	printMetadata(color.Output, "(standard input)", metadata, time.Time{})
	return nil
}

// fstatCommand is the fstat command.
var fstatCommand = &cobra.Command{
	Use:          "fstat",
	Short:        "Show metadata for standard input",
	Args:         cmd.DisallowArguments,
	RunE:         fstatMain,
	SilenceUsage: true,
}

// statConfiguration stores configuration for the stat family of commands.
var statConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Add help flags to each command.
	for _, command := range []*cobra.Command{statCommand, lstatCommand, fstatCommand} {
		flags := command.Flags()
		flags.SortFlags = false
		flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")
	}
}
