// Package logging builds the zerolog logger shared by the binaries.
//
// Logging is off unless debug is set: the terminal frontend owns stdout and
// stderr, so enabled logs go to a file that is rotated when it grows large.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FileName = "hillside.log"

	// MaxSize triggers rotation of an existing log at startup
	MaxSize = 10 * 1024 * 1024
)

// Options selects the log destination
type Options struct {
	Debug bool
	Dir   string
	Level string

	// Console writes human-readable lines to stderr instead of the file
	// Only for frontends that do not draw to the terminal
	Console bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns the logger and the closer of its output
// With Debug unset the logger discards everything and the closer is a no-op
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	if !opts.Debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}

	if opts.Console {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nopCloser{}, nil
	}

	f, err := openLogFile(opts.Dir)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
}

// openLogFile creates the log directory, rotates an oversized log and opens it for append
func openLogFile(dir string) (*os.File, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(dir, strings.TrimSuffix(FileName, ".log")+"-"+stamp+".log")
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
