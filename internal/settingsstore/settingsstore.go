// Package settingsstore layers typed accessors for the conventional setting
// keys over the settings repository. Values a user has corrupted by hand
// fall back to the seeded defaults rather than erroring.
package settingsstore

import (
	"strconv"
	"time"

	"github.com/christinsong/hymnal/internal/database/settings"
	"github.com/christinsong/hymnal/internal/entities"
)

// Defaults mirror the seeded settings rows.
const (
	DefaultTheme                = "light"
	DefaultFontSize             = 12
	DefaultShowHymnNumbers      = true
	DefaultAutoBackup           = true
	DefaultBackupFrequencyDays  = 7
	DefaultPresentationFontSize = 24
	DefaultRecentHymnsLimit     = 50
)

type Store struct {
	repo *settings.Repository
}

func New(repo *settings.Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) stringValue(key, fallback string) string {
	setting, err := s.repo.Get(key)
	if err != nil || setting == nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

func (s *Store) intValue(key string, fallback int) int {
	setting, err := s.repo.Get(key)
	if err != nil || setting == nil {
		return fallback
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *Store) boolValue(key string, fallback bool) bool {
	setting, err := s.repo.Get(key)
	if err != nil || setting == nil {
		return fallback
	}
	b, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return fallback
	}
	return b
}

func (s *Store) Theme() string {
	return s.stringValue(entities.SettingKeyTheme, DefaultTheme)
}

func (s *Store) SetTheme(theme string) error {
	return s.repo.Set(entities.SettingKeyTheme, theme)
}

func (s *Store) FontSize() int {
	return s.intValue(entities.SettingKeyFontSize, DefaultFontSize)
}

func (s *Store) ShowHymnNumbers() bool {
	return s.boolValue(entities.SettingKeyShowHymnNumbers, DefaultShowHymnNumbers)
}

func (s *Store) AutoBackup() bool {
	return s.boolValue(entities.SettingKeyAutoBackup, DefaultAutoBackup)
}

func (s *Store) BackupFrequencyDays() int {
	return s.intValue(entities.SettingKeyBackupFrequency, DefaultBackupFrequencyDays)
}

func (s *Store) PresentationFontSize() int {
	return s.intValue(entities.SettingKeyPresentationFontSize, DefaultPresentationFontSize)
}

func (s *Store) RecentHymnsLimit() int {
	return s.intValue(entities.SettingKeyRecentHymnsLimit, DefaultRecentHymnsLimit)
}

// LastBackupAt returns when the last automatic backup ran, or nil when none
// has been recorded.
func (s *Store) LastBackupAt() *time.Time {
	setting, err := s.repo.Get(entities.SettingKeyLastBackupAt)
	if err != nil || setting == nil || setting.Value == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, setting.Value)
	if err != nil {
		return nil
	}
	return &ts
}

func (s *Store) SetLastBackupAt(ts time.Time) error {
	return s.repo.Set(entities.SettingKeyLastBackupAt, ts.UTC().Format(time.RFC3339))
}
