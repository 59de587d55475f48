// Package logging configures the process-wide zerolog logger. Messages go
// to the console and to a log file under the user data directory; the
// fatal-error dialog points users at that file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup wires the global logger to the console and to <dir>/<filename>.
// It returns the log file path. When the file cannot be opened, logging
// continues on the console alone and the error is returned alongside the
// empty path.
func Setup(dir, filename, level string) (string, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Logger = zerolog.New(console).Level(lvl).With().Timestamp().Logger()
		return "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.New(console).Level(lvl).With().Timestamp().Logger()
		return "", fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, file)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return path, nil
}
