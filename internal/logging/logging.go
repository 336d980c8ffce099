// Package logging builds the charmbracelet loggers used by the CLI and the
// SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFile is where interactive sessions log, since stderr belongs to the
// alternate screen while a game is running.
const DefaultFile = "~/.tetris/tetris.log"

// Options configures a logger.
type Options struct {
	Prefix string
	Level  string
	Writer io.Writer
}

// ParseLevel accepts debug, info, warn or error. An empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a timestamped logger. Writer defaults to stderr.
func New(opts Options) (*log.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating parent directories and
// expanding a leading ~. The caller closes the file.
func OpenFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
