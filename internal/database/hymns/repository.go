// Package hymns provides database operations for hymn lookup and search.
//
// # Usage
//
//	repo := hymns.NewRepository(db)
//	hymn, err := repo.GetByNumber(1)
package hymns

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/entities"
)

// Repository handles all hymn read operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new hymns repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByNumber returns the hymn with the given hymnal number, or (nil, nil)
// when no such hymn exists.
func (r *Repository) GetByNumber(number int) (*entities.Hymn, error) {
	var hymn entities.Hymn
	err := r.db.Where("number = ?", number).First(&hymn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hymn, nil
}

// Search runs a full-text match over title, verses, author, and composer.
// Results come back ordered by hymn number. A malformed FTS query is logged
// and treated as no match rather than surfaced to the caller.
func (r *Repository) Search(query string) ([]entities.Hymn, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entities.Hymn{}, nil
	}

	var results []entities.Hymn
	err := r.db.Raw(`
		SELECT hymns.* FROM hymns
		JOIN hymns_fts ON hymns_fts.rowid = hymns.id
		WHERE hymns_fts MATCH ?
		ORDER BY hymns.number ASC`, query).
		Scan(&results).Error
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("hymn search failed")
		return []entities.Hymn{}, nil
	}
	if results == nil {
		results = []entities.Hymn{}
	}
	return results, nil
}

// GetAll returns hymns ordered by number. A limit of zero or less means all.
func (r *Repository) GetAll(limit int) ([]entities.Hymn, error) {
	var results []entities.Hymn
	query := r.db.Order("number ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, err
}

// GetByCategory returns the hymns in a category ordered by number.
func (r *Repository) GetByCategory(categoryID uint) ([]entities.Hymn, error) {
	var results []entities.Hymn
	err := r.db.Where("category_id = ?", categoryID).
		Order("number ASC").
		Find(&results).Error
	return results, err
}
