package logging

import (
	"github.com/pkg/errors"
)

// Level is a modestat log level. Levels are ordered: a logger emits messages
// at its own level and at every lower, non-disabled level.
type Level uint

const (
	// LevelDisabled suppresses all output. It is the root logger's level until
	// the command line configures one.
	LevelDisabled Level = iota
	// LevelError logs only errors. Command failures are reported by the CLI
	// itself rather than through loggers.
	LevelError
	// LevelWarn adds cleanup failures, such as probe entries that couldn't be
	// removed or restored. It is the configured default.
	LevelWarn
	// LevelInfo adds informational messages.
	LevelInfo
	// LevelDebug adds failed system calls with their error numbers, along with
	// kinds and permission sets that a filesystem didn't report back.
	LevelDebug
	// LevelTrace adds every system call and its arguments, with modes shown
	// in their encoded host form.
	LevelTrace
)

// levelNames are the textual names of each level, indexed by level. They are
// the values accepted in MODESTAT_LOG_LEVEL.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a level name to the corresponding Level. It returns
// false (and LevelDisabled) if the name is not recognized.
func NameToLevel(name string) (Level, bool) {
	for level, levelName := range levelNames {
		if levelName == name {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String returns the level's name, or "unknown" for out-of-range values.
func (l Level) String() string {
	if l < Level(len(levelNames)) {
		return levelNames[l]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText. It leaves
// the level unmodified on failure.
func (l *Level) UnmarshalText(textBytes []byte) error {
	level, ok := NameToLevel(string(textBytes))
	if !ok {
		return errors.Errorf("unknown log level: %s", string(textBytes))
	}
	*l = level
	return nil
}
