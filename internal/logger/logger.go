// Package logger is the zerolog wrapper shared by the CLI, the shell and the
// SSH server. Every method is safe on a nil *Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// NoColor disables ANSI colours in human-readable output.
	NoColor bool
	Writer  io.Writer
}

// Logger carries a zerolog logger and the fields attached to it.
type Logger struct {
	base zerolog.Logger
}

// New builds a logger. JSON is the default; HumanReadable switches to the
// zerolog console format.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    opts.NoColor,
			TimeFormat: time.RFC3339,
		}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Discard returns a logger that drops every entry. The interactive gallery
// owns the terminal, so it logs nowhere unless a log file is configured.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// ParseLevel maps a level name to zerolog. An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// WithFields returns a child logger that writes fields on every entry.
// Fields are attached in key order so output is stable.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx := l.base.With()
	for _, k := range keys {
		ctx = appendField(ctx, k, fields[k])
	}
	return &Logger{base: ctx.Logger()}
}

func appendField(ctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return ctx.Str(key, v)
	case bool:
		return ctx.Bool(key, v)
	case int:
		return ctx.Int(key, v)
	case time.Duration:
		return ctx.Str(key, v.String())
	case error:
		return ctx.AnErr(key, v)
	case fmt.Stringer:
		return ctx.Stringer(key, v)
	default:
		return ctx.Interface(key, v)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// Printf logs a formatted info entry. The SSH access log middleware writes
// through it.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.base.Info().Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
