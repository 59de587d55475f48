package entities

import (
	"time"
)

type Setting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `gorm:"size:512" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys. Recognized by convention, not enforced by schema.
const (
	SettingKeyTheme                = "theme"
	SettingKeyFontSize             = "font_size"
	SettingKeyShowHymnNumbers      = "show_hymn_numbers"
	SettingKeyAutoBackup           = "auto_backup"
	SettingKeyBackupFrequency      = "backup_frequency"
	SettingKeyPresentationFontSize = "presentation_font_size"
	SettingKeyRecentHymnsLimit     = "recent_hymns_limit"
	SettingKeyLastBackupAt         = "last_backup_at"
)

// Metadata stores schema-level key/value rows (version, created_at).
type Metadata struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Metadata) TableName() string {
	return "db_metadata"
}

const (
	MetadataKeyVersion   = "version"
	MetadataKeyCreatedAt = "created_at"
)
