// Package recent provides database operations for the recently-viewed log
// and the per-hymn usage counters derived from it.
package recent

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/christinsong/hymnal/internal/entities"
)

// Repository handles recently-viewed and usage-stat database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new recent repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddView appends a view-log row and bumps the hymn's usage counter
// (creating it at 1 on first view) inside one transaction. Either both
// effects land or neither does.
func (r *Repository) AddView(hymnID uint) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		view := entities.RecentlyViewed{HymnID: hymnID, ViewedAt: now}
		if err := tx.Create(&view).Error; err != nil {
			return fmt.Errorf("failed to log view: %w", err)
		}

		stat := entities.UsageStat{HymnID: hymnID, ViewCount: 1, LastViewed: now}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hymn_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"view_count":  gorm.Expr("view_count + 1"),
				"last_viewed": now,
			}),
		}).Create(&stat).Error
		if err != nil {
			return fmt.Errorf("failed to update usage stats: %w", err)
		}
		return nil
	})
}

// GetRecent returns distinct recently viewed hymns, most recent first,
// capped at limit. The log is append-only, so the highest row id per hymn
// is its latest view.
func (r *Repository) GetRecent(limit int) ([]entities.Hymn, error) {
	var results []entities.Hymn
	err := r.db.Model(&entities.Hymn{}).
		Joins(`JOIN (
			SELECT hymn_id, MAX(id) AS last_view_id
			FROM recently_viewed
			GROUP BY hymn_id
		) latest ON latest.hymn_id = hymns.id`).
		Order("latest.last_view_id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// GetUsageStat returns the usage counter for a hymn, or (nil, nil) when the
// hymn has never been viewed.
func (r *Repository) GetUsageStat(hymnID uint) (*entities.UsageStat, error) {
	var stat entities.UsageStat
	err := r.db.Where("hymn_id = ?", hymnID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}
