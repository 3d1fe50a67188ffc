// Package configuration provides loading facilities for modestat's
// environment-based configuration, which may be supplied by the process
// environment or by a "dotenv" file.
package configuration

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/logging"
)

const (
	// DefaultPath is the default path of the environment file, relative to the
	// working directory.
	DefaultPath = ".modestat.env"

	// LogLevelVariable controls the log level.
	LogLevelVariable = "MODESTAT_LOG_LEVEL"
	// NoColorVariable disables colorized output when set to a true value.
	NoColorVariable = "MODESTAT_NO_COLOR"
	// ConstantsVariable specifies the default constants file used by
	// commands that operate on foreign layouts.
	ConstantsVariable = "MODESTAT_CONSTANTS"
)

// Configuration is the resolved configuration.
type Configuration struct {
	// LogLevel is the log level.
	LogLevel logging.Level
	// NoColor indicates that colorized output should be disabled.
	NoColor bool
	// ConstantsPath is the path to a default constants file. It is empty if
	// none was specified.
	ConstantsPath string
}

// LoadEnvironment loads a "dotenv" environment variable file from disk and
// updates it to include variables from the current process' environment (with
// the current process' environment taking precedence). If the target file
// doesn't exist, then it is treated as empty and the resulting environment will
// be the current process' environment.
func LoadEnvironment(path string) (map[string]string, error) {
	// Load the environment file (if it exists).
	environment, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "unable to load environment file (%s)", path)
	}

	// Grab the environment from the OS.
	osEnvironment := os.Environ()

	// If the environment wasn't allocated, then do so now.
	if environment == nil {
		environment = make(map[string]string, len(osEnvironment))
	}

	// Add environment variables from the OS.
	for _, specification := range osEnvironment {
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			return nil, errors.Errorf("invalid OS environment variable specification: %s", specification)
		}
		environment[keyValue[0]] = keyValue[1]
	}

	// Success.
	return environment, nil
}

// fromEnvironment extracts a configuration from an environment.
func fromEnvironment(environment map[string]string) (*Configuration, error) {
	// Set defaults.
	result := &Configuration{LogLevel: logging.LevelWarn}

	// Extract the log level.
	if value, ok := environment[LogLevelVariable]; ok && value != "" {
		if err := result.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return nil, errors.Wrapf(err, "invalid %s value", LogLevelVariable)
		}
	}

	// Extract the color setting.
	if value, ok := environment[NoColorVariable]; ok && value != "" {
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s value", NoColorVariable)
		}
		result.NoColor = noColor
	}

	// Extract the constants path.
	result.ConstantsPath = environment[ConstantsVariable]

	// Success.
	return result, nil
}

// Load loads the configuration from the environment file at the specified path
// (which may be empty to use DefaultPath) and the process environment. A
// missing environment file is not an error.
func Load(path string) (*Configuration, error) {
	if path == "" {
		path = DefaultPath
	}
	environment, err := LoadEnvironment(path)
	if err != nil {
		return nil, err
	}
	return fromEnvironment(environment)
}
