package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDirProvider resolves the per-user application data directory. The
// platform implementation touches process-wide state (env vars, home dir),
// so tests inject a StaticDataDir pointing at a temp location instead.
type DataDirProvider interface {
	DataDir() (string, error)
}

// DefaultDataDirProvider returns the platform-dependent provider:
// roaming AppData on Windows, Application Support on macOS, and the XDG
// data home elsewhere.
func DefaultDataDirProvider() DataDirProvider {
	return platformDataDir{}
}

type platformDataDir struct{}

func (platformDataDir) DataDir() (string, error) {
	base, err := baseDataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}

func baseDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return os.UserHomeDir()
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// StaticDataDir is a DataDirProvider pinned to a fixed directory.
type StaticDataDir string

func (s StaticDataDir) DataDir() (string, error) {
	if err := os.MkdirAll(string(s), 0o755); err != nil {
		return "", err
	}
	return string(s), nil
}
