// Package categories provides database operations for hymn categories.
package categories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns categories ordered by name, each with its hymn count
// computed by aggregation.
func (r *Repository) GetAll() ([]entities.Category, error) {
	var results []entities.Category
	err := r.db.Model(&entities.Category{}).
		Select("categories.*, COUNT(hymns.id) AS hymn_count").
		Joins("LEFT JOIN hymns ON hymns.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&results).Error
	return results, err
}

// GetByName returns the category with the given name, hymn count included,
// or (nil, nil) when it does not exist.
func (r *Repository) GetByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Model(&entities.Category{}).
		Select("categories.*, COUNT(hymns.id) AS hymn_count").
		Joins("LEFT JOIN hymns ON hymns.category_id = categories.id").
		Where("categories.name = ?", name).
		Group("categories.id").
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
