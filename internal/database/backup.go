package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// backupTimestampLayout is the suffix on backup filenames: YYYYMMDD_HHMMSS.
const backupTimestampLayout = "20060102_150405"

// Backup copies the database file into dir under a timestamped name and
// returns the path of the copy. The copy is a plain file copy; SQLite's
// single-writer locking and the one-process model make that safe here.
func (d *Database) Backup(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Open(d.path)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	base := strings.TrimSuffix(filepath.Base(d.path), filepath.Ext(d.path))
	name := fmt.Sprintf("%s_%s.db", base, time.Now().Format(backupTimestampLayout))
	backupPath := filepath.Join(dir, name)

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to copy database: %w", err)
	}
	if err := dst.Sync(); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to flush backup file: %w", err)
	}

	log.Info().Str("path", backupPath).Msg("database backup created")

	return backupPath, nil
}
