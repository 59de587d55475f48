// Package favourites provides database operations for favorite hymn
// management. A hymn can be favorited at most once; re-adding is a no-op.
package favourites

import (
	"errors"

	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/entities"
)

// Repository handles all favorites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add favorites a hymn. It reports whether a new favorite was created:
// (false, nil) means the hymn was already a favorite, while a non-nil error
// means the insert itself failed.
func (r *Repository) Add(hymnID uint) (bool, error) {
	var existing entities.Favorite
	result := r.db.Where("hymn_id = ?", hymnID).First(&existing)
	if result.Error == nil {
		return false, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, result.Error
	}

	favorite := entities.Favorite{HymnID: hymnID}
	if err := r.db.Create(&favorite).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Remove unfavorites a hymn, reporting whether a row was actually removed.
func (r *Repository) Remove(hymnID uint) (bool, error) {
	result := r.db.Where("hymn_id = ?", hymnID).Delete(&entities.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsFavorite reports whether the hymn is currently favorited.
func (r *Repository) IsFavorite(hymnID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("hymn_id = ?", hymnID).
		Count(&count).Error
	return count > 0, err
}

// GetFavorites returns favorited hymns, most recently added first.
func (r *Repository) GetFavorites() ([]entities.Hymn, error) {
	var results []entities.Hymn
	err := r.db.Model(&entities.Hymn{}).
		Joins("JOIN favorites ON favorites.hymn_id = hymns.id").
		Order("favorites.created_at DESC, favorites.id DESC").
		Find(&results).Error
	return results, err
}
