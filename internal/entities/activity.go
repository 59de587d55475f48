package entities

import (
	"time"
)

// Favorite marks a hymn as favorited. At most one row per hymn.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HymnID    uint      `gorm:"uniqueIndex;not null" json:"hymn_id"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"added_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// RecentlyViewed is an append-only log of hymn views. Repeated views of the
// same hymn create new rows.
type RecentlyViewed struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	HymnID   uint      `gorm:"index;not null" json:"hymn_id"`
	ViewedAt time.Time `gorm:"index;autoCreateTime" json:"viewed_at"`
}

func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}

// UsageStat keeps one counter row per hymn, upserted on every view.
type UsageStat struct {
	HymnID     uint      `gorm:"primaryKey;autoIncrement:false" json:"hymn_id"`
	ViewCount  int64     `json:"view_count"`
	LastViewed time.Time `json:"last_viewed"`
}

func (UsageStat) TableName() string {
	return "usage_stats"
}
