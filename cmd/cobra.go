package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DisallowArguments is a Cobra arguments validator that disallows positional
// arguments.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("command does not accept arguments")
	}
	return nil
}

// RequireArguments returns a Cobra arguments validator that requires at least
// the specified number of positional arguments.
func RequireArguments(minimum int) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) < minimum {
			return errors.Errorf("command requires at least %d argument(s)", minimum)
		}
		return nil
	}
}

// RequireExactArguments returns a Cobra arguments validator that requires
// exactly the specified number of positional arguments.
func RequireExactArguments(count int) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) != count {
			return errors.Errorf("command requires exactly %d argument(s)", count)
		}
		return nil
	}
}
