package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/modestat/modestat/cmd"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/hostmode"
)

// loadCodec loads a codec from the constants file at the specified path. If
// the path is empty, the configured default constants file is used, and if
// that's also empty, the host codec is returned.
func loadCodec(path string) (*hostmode.ModeCodec, error) {
	if path == "" && loadedConfiguration != nil {
		path = loadedConfiguration.ConstantsPath
	}
	if path == "" {
		return hostmode.HostCodec()
	}
	constants, err := hostmode.LoadConstants(path)
	if err != nil {
		return nil, err
	}
	codec, err := hostmode.NewModeCodecFromConstants(constants)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid constants in %s", path)
	}
	return codec, nil
}

// parseRawMode parses a raw mode value. Octal values require a leading 0 (or
// 0o) and hexadecimal values a leading 0x, while other values are decimal.
func parseRawMode(value string) (uint32, error) {
	raw, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return 0, errors.Wrap(err, "unable to parse raw mode")
	}
	return uint32(raw), nil
}

// definitionsMain is the entry point for the definitions command.
func definitionsMain(_ *cobra.Command, _ []string) error {
	constants, err := hostmode.HostConstants()
	if err != nil {
		return err
	}
	data, err := constants.Marshal()
	if err != nil {
		return errors.Wrap(err, "unable to marshal constants")
	}

	// If no output path was specified, then print to standard output.
	if definitionsConfiguration.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	// Otherwise write the output file atomically.
	system, err := filesystem.Host()
	if err != nil {
		return err
	}
	if err := system.WriteFileAtomic(definitionsConfiguration.output, data, 0644); err != nil {
		return errors.Wrap(err, "unable to write constants file")
	}
	return nil
}

// definitionsCommand is the definitions command.
var definitionsCommand = &cobra.Command{
	Use:          "definitions",
	Short:        "Print the host's mode constants as YAML",
	Args:         cmd.DisallowArguments,
	RunE:         definitionsMain,
	SilenceUsage: true,
}

// definitionsConfiguration stores configuration for the definitions command.
var definitionsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// output is the path to which constants should be written.
	output string
}

// decodeMain is the entry point for the decode command.
func decodeMain(_ *cobra.Command, arguments []string) error {
	codec, err := loadCodec(decodeConfiguration.constants)
	if err != nil {
		return err
	}
	raw, err := parseRawMode(arguments[0])
	if err != nil {
		return err
	}
	mode, err := codec.Decode(raw)
	if err != nil {
		return err
	}
	kind, _ := mode.Kind.MarshalText()
	fmt.Printf("%s %s %s\n", kind, mode.Permissions.Octal(), mode)
	return nil
}

// decodeCommand is the decode command.
var decodeCommand = &cobra.Command{
	Use:          "decode <raw-mode>",
	Short:        "Decode a raw mode value into its kind and permissions",
	Args:         cmd.RequireExactArguments(1),
	RunE:         decodeMain,
	SilenceUsage: true,
}

// decodeConfiguration stores configuration for the decode command.
var decodeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// constants is the path to a constants file.
	constants string
}

// encodeMain is the entry point for the encode command.
func encodeMain(_ *cobra.Command, _ []string) error {
	// Validate arguments.
	if !encodeConfiguration.kind.Kind.Valid() {
		return errors.New("file kind must be specified")
	} else if !encodeConfiguration.mode.IsSet() {
		return errors.New("permissions must be specified")
	}

	// Encode the mode.
	codec, err := loadCodec(encodeConfiguration.constants)
	if err != nil {
		return err
	}
	mode := hostmode.Mode{
		Kind:        encodeConfiguration.kind.Kind,
		Permissions: encodeConfiguration.mode.Permissions,
	}
	fmt.Printf("%#o\n", codec.Encode(mode))
	return nil
}

// encodeCommand is the encode command.
var encodeCommand = &cobra.Command{
	Use:          "encode",
	Short:        "Encode a kind and permissions into a raw mode value",
	Args:         cmd.DisallowArguments,
	RunE:         encodeMain,
	SilenceUsage: true,
}

// encodeConfiguration stores configuration for the encode command.
var encodeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// constants is the path to a constants file.
	constants string
	// kind is the file kind.
	kind cmd.KindValue
	// mode is the permissions.
	mode cmd.PermissionValue
}

// translateMain is the entry point for the translate command.
func translateMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if translateConfiguration.from == "" && translateConfiguration.to == "" {
		return errors.New("at least one of source and target constants must be specified")
	}

	// Load codecs. Unlike decode and encode, translate doesn't fall back to the
	// configured constants file, since doing so would make an omitted side
	// ambiguous.
	source, err := loadTranslationCodec(translateConfiguration.from)
	if err != nil {
		return errors.Wrap(err, "unable to load source constants")
	}
	target, err := loadTranslationCodec(translateConfiguration.to)
	if err != nil {
		return errors.Wrap(err, "unable to load target constants")
	}

	// Translate.
	raw, err := parseRawMode(arguments[0])
	if err != nil {
		return err
	}
	translated, err := source.Translate(raw, target)
	if err != nil {
		return err
	}
	fmt.Printf("%#o\n", translated)
	return nil
}

// loadTranslationCodec loads a codec from the specified constants file, or the
// host codec if the path is empty.
func loadTranslationCodec(path string) (*hostmode.ModeCodec, error) {
	if path == "" {
		return hostmode.HostCodec()
	}
	return loadCodec(path)
}

// translateCommand is the translate command.
var translateCommand = &cobra.Command{
	Use:          "translate <raw-mode>",
	Short:        "Translate a raw mode value between two layouts",
	Args:         cmd.RequireExactArguments(1),
	RunE:         translateMain,
	SilenceUsage: true,
}

// translateConfiguration stores configuration for the translate command.
var translateConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// from is the path to the source constants file.
	from string
	// to is the path to the target constants file.
	to string
}

func init() {
	// Configure definitions flags.
	flags := definitionsCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&definitionsConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVarP(&definitionsConfiguration.output, "output", "o", "", "Write constants to the specified file")

	// Configure decode flags.
	flags = decodeCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&decodeConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVarP(&decodeConfiguration.constants, "constants", "c", "", "Specify a constants file (defaults to the host)")

	// Configure encode flags.
	flags = encodeCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&encodeConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVarP(&encodeConfiguration.constants, "constants", "c", "", "Specify a constants file (defaults to the host)")
	flags.VarP(&encodeConfiguration.kind, "kind", "k", "Specify the file kind")
	flags.VarP(&encodeConfiguration.mode, "mode", "m", "Specify octal permissions")

	// Configure translate flags.
	flags = translateCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&translateConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&translateConfiguration.from, "from", "", "Specify the source constants file (defaults to the host)")
	flags.StringVar(&translateConfiguration.to, "to", "", "Specify the target constants file (defaults to the host)")
}
