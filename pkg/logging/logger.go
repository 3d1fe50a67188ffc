package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Subloggers share the writer
// (and its lock) of the logger from which they derive. It is safe for
// concurrent usage.
type Logger struct {
	// level is the log level at or below which messages are emitted.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// writer is the shared output destination.
	writer *lockedWriter
}

// lockedWriter serializes line writes to an underlying writer.
type lockedWriter struct {
	// lock serializes access to writer.
	lock sync.Mutex
	// writer is the underlying writer.
	writer io.Writer
}

// RootLogger is the root logger from which all other loggers derive. It is
// disabled until the level is raised with SetRootLogger.
var RootLogger = NewLogger(LevelDisabled, os.Stderr)

// SetRootLogger replaces the root logger. It should only be called during
// process initialization, before any subloggers are derived.
func SetRootLogger(logger *Logger) {
	RootLogger = logger
}

// NewLogger creates a new logger that emits messages at or below the specified
// level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		writer: &lockedWriter{writer: writer},
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		writer: l.writer,
	}
}

// Level returns the logger's level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	// Bail if the logger is nil or the message is above our level.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Add a timestamp.
	line = time.Now().Format("2006-01-02 15:04:05.000000") + " " + line + "\n"

	// Write the line. There's nothing sensible to do with a failed log write.
	l.writer.lock.Lock()
	io.WriteString(l.writer.writer, line)
	l.writer.lock.Unlock()
}

// Error logs errors with semantics equivalent to fmt.Sprint, with an error
// prefix and red color.
func (l *Logger) Error(v ...interface{}) {
	if l.Level() >= LevelError {
		l.output(LevelError, color.RedString("Error: %s", fmt.Sprint(v...)))
	}
}

// Errorf logs errors with semantics equivalent to fmt.Sprintf, with an error
// prefix and red color.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.Level() >= LevelError {
		l.output(LevelError, color.RedString("Error: "+format, v...))
	}
}

// Warn logs warnings with semantics equivalent to fmt.Sprint, with a warning
// prefix and yellow color.
func (l *Logger) Warn(v ...interface{}) {
	if l.Level() >= LevelWarn {
		l.output(LevelWarn, color.YellowString("Warning: %s", fmt.Sprint(v...)))
	}
}

// Warnf logs warnings with semantics equivalent to fmt.Sprintf, with a warning
// prefix and yellow color.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.Level() >= LevelWarn {
		l.output(LevelWarn, color.YellowString("Warning: "+format, v...))
	}
}

// Info logs information with semantics equivalent to fmt.Sprint.
func (l *Logger) Info(v ...interface{}) {
	l.output(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs information with semantics equivalent to fmt.Sprint.
func (l *Logger) Debug(v ...interface{}) {
	l.output(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LevelDebug, fmt.Sprintf(format, v...))
}

// Trace logs information with semantics equivalent to fmt.Sprint.
func (l *Logger) Trace(v ...interface{}) {
	l.output(LevelTrace, fmt.Sprint(v...))
}

// Tracef logs information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.output(LevelTrace, fmt.Sprintf(format, v...))
}
