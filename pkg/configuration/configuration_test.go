package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modestat/modestat/pkg/logging"
)

// configurationTestCase represents a single configuration loading test case.
type configurationTestCase struct {
	// file is the content of the environment file. If empty, no file is
	// created.
	file string
	// environment is the set of process environment variables to set.
	environment map[string]string
	// expectFailure indicates whether or not loading should fail.
	expectFailure bool
	// expected is the expected configuration.
	expected Configuration
}

// run executes the test case.
func (c *configurationTestCase) run(t *testing.T) {
	t.Helper()

	// Clear any ambient configuration.
	for _, variable := range []string{LogLevelVariable, NoColorVariable, ConstantsVariable} {
		t.Setenv(variable, "")
		os.Unsetenv(variable)
	}

	// Set up the environment.
	for key, value := range c.environment {
		t.Setenv(key, value)
	}

	// Create the environment file, if any.
	path := filepath.Join(t.TempDir(), DefaultPath)
	if c.file != "" {
		if err := os.WriteFile(path, []byte(c.file), 0600); err != nil {
			t.Fatal("unable to write environment file:", err)
		}
	}

	// Load the configuration.
	configuration, err := Load(path)
	if err != nil {
		if !c.expectFailure {
			t.Fatal("unable to load configuration:", err)
		}
		return
	} else if c.expectFailure {
		t.Fatal("configuration loaded successfully when failure was expected")
	}

	// Verify the result.
	if *configuration != c.expected {
		t.Errorf("configuration (%+v) does not match expected (%+v)", *configuration, c.expected)
	}
}

// TestLoadDefaults tests loading without a file or environment.
func TestLoadDefaults(t *testing.T) {
	testCase := &configurationTestCase{
		expected: Configuration{LogLevel: logging.LevelWarn},
	}
	testCase.run(t)
}

// TestLoadFromFile tests loading from an environment file.
func TestLoadFromFile(t *testing.T) {
	testCase := &configurationTestCase{
		file: "MODESTAT_LOG_LEVEL=debug\nMODESTAT_NO_COLOR=true\nMODESTAT_CONSTANTS=layout.yaml\n",
		expected: Configuration{
			LogLevel:      logging.LevelDebug,
			NoColor:       true,
			ConstantsPath: "layout.yaml",
		},
	}
	testCase.run(t)
}

// TestLoadEnvironmentPrecedence tests that the process environment takes
// precedence over the environment file.
func TestLoadEnvironmentPrecedence(t *testing.T) {
	testCase := &configurationTestCase{
		file: "MODESTAT_LOG_LEVEL=debug\nMODESTAT_CONSTANTS=file.yaml\n",
		environment: map[string]string{
			LogLevelVariable: "trace",
		},
		expected: Configuration{
			LogLevel:      logging.LevelTrace,
			ConstantsPath: "file.yaml",
		},
	}
	testCase.run(t)
}

// TestLoadInvalidLogLevel tests that an invalid log level fails loading.
func TestLoadInvalidLogLevel(t *testing.T) {
	testCase := &configurationTestCase{
		environment: map[string]string{
			LogLevelVariable: "verbose",
		},
		expectFailure: true,
	}
	testCase.run(t)
}

// TestLoadInvalidNoColor tests that an invalid color setting fails loading.
func TestLoadInvalidNoColor(t *testing.T) {
	testCase := &configurationTestCase{
		file:          "MODESTAT_NO_COLOR=sometimes\n",
		expectFailure: true,
	}
	testCase.run(t)
}
