package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Backup
		Hymnals
		Logging
	}

	Database struct {
		Path string
	}
	Backup struct {
		Dir string
	}
	Hymnals struct {
		URL      string // Remote hymnal JSON document
		Language string
	}
	Logging struct {
		Dir   string
		Level string
	}
)

// NewConfig builds the configuration from environment variables, resolving
// relative defaults against the platform data directory.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(DefaultDataDirProvider())
}

// NewConfigWithProvider is NewConfig with an explicit data-dir provider so
// tests can substitute a temporary location.
func NewConfigWithProvider(provider DataDirProvider) (*Config, error) {
	dataDir, err := provider.DataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", filepath.Join(dataDir, DatabaseFilename))
	v.SetDefault("backup_dir", filepath.Join(dataDir, BackupDirName))
	v.SetDefault("hymnal_url", DefaultHymnalURL)
	v.SetDefault("hymnal_language", "English")
	v.SetDefault("log_dir", filepath.Join(dataDir, LogDirName))
	v.SetDefault("log_level", "info")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Backup: Backup{
			Dir: v.GetString("BACKUP_DIR"),
		},
		Hymnals: Hymnals{
			URL:      v.GetString("HYMNAL_URL"),
			Language: v.GetString("HYMNAL_LANGUAGE"),
		},
		Logging: Logging{
			Dir:   v.GetString("LOG_DIR"),
			Level: v.GetString("LOG_LEVEL"),
		},
	}, nil
}
