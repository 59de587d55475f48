// Package settings provides database operations for application settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	setting, err := repo.Get("theme")
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves a setting by key, or (nil, nil) when the key is unset.
func (r *Repository) Get(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Value returns just the stored value for key, or "" when the key is unset.
func (r *Repository) Value(key string) (string, error) {
	setting, err := r.Get(key)
	if err != nil || setting == nil {
		return "", err
	}
	return setting.Value, nil
}

// Set creates or updates a setting, bumping its update timestamp. The
// description of an existing setting is preserved.
func (r *Repository) Set(key, value string) error {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return r.db.Save(&setting).Error
}

// Delete removes a setting by key.
func (r *Repository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
