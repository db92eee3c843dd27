// Package logging configures the process-wide charmbracelet logger. The TUI
// owns the terminal, so interactive runs log to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is the log file used by interactive commands.
const DefaultPath = "~/.arcade/arcade.log"

// ToFile points the default logger at path, appending. The returned closer
// must be called on exit. Level is one of debug, info, warn, error.
func ToFile(path, level string) (io.Closer, error) {
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
		return nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}

	log.SetDefault(New(f, level, "arcade"))
	return f, nil
}

// New creates a timestamped logger writing to w.
func New(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard silences the default logger.
func Discard() {
	log.SetDefault(log.New(io.Discard))
}
