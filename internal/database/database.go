// Package database owns the SQLite schema, connection lifecycle, and the
// full-text search index for hymns. Query operations live in the per-concern
// repository subpackages (hymns, favourites, recent, categories, settings).
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/christinsong/hymnal/internal/entities"
)

type Database struct {
	DB   *gorm.DB
	path string
}

// New opens (creating if necessary) the SQLite database at dbPath, applies
// the schema and search index idempotently, and seeds default rows that are
// missing. Safe to call against an existing database; seed data is never
// duplicated.
func New(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Category{},
		&entities.Hymn{},
		&entities.Favorite{},
		&entities.RecentlyViewed{},
		&entities.UsageStat{},
		&entities.Setting{},
		&entities.Metadata{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db, path: dbPath}

	if err := database.applySearchSchema(); err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	if err := database.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("database initialized")

	return database, nil
}

// Initialize opens and seeds the database, converting any failure into a
// boolean so the application boundary can show a dialog instead of crashing.
// The handle is closed again; callers wanting one use New.
func Initialize(dbPath string) bool {
	db, err := New(dbPath)
	if err != nil {
		log.Error().Err(err).Str("path", dbPath).Msg("database initialization failed")
		return false
	}
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database after initialization")
	}
	return true
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Path returns the location of the database file.
func (d *Database) Path() string {
	return d.path
}

// searchSchema defines the FTS5 index over hymns and the triggers that keep
// it in sync on every insert, update, and delete. External-content deletes
// go through the special 'delete' command.
var searchSchema = []string{
	`CREATE VIRTUAL TABLE IF NOT EXISTS hymns_fts USING fts5(
		title,
		verses,
		author,
		composer,
		content=hymns,
		content_rowid=id
	)`,
	`CREATE TRIGGER IF NOT EXISTS hymns_fts_ai AFTER INSERT ON hymns BEGIN
		INSERT INTO hymns_fts(rowid, title, verses, author, composer)
		VALUES (new.id, new.title, new.verses, new.author, new.composer);
	END`,
	`CREATE TRIGGER IF NOT EXISTS hymns_fts_ad AFTER DELETE ON hymns BEGIN
		INSERT INTO hymns_fts(hymns_fts, rowid, title, verses, author, composer)
		VALUES ('delete', old.id, old.title, old.verses, old.author, old.composer);
	END`,
	`CREATE TRIGGER IF NOT EXISTS hymns_fts_au AFTER UPDATE ON hymns BEGIN
		INSERT INTO hymns_fts(hymns_fts, rowid, title, verses, author, composer)
		VALUES ('delete', old.id, old.title, old.verses, old.author, old.composer);
		INSERT INTO hymns_fts(rowid, title, verses, author, composer)
		VALUES (new.id, new.title, new.verses, new.author, new.composer);
	END`,
}

func (d *Database) applySearchSchema() error {
	for _, stmt := range searchSchema {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes the database for the about/stats views.
type Stats struct {
	TotalHymns        int64  `json:"total_hymns"`
	TotalCategories   int64  `json:"total_categories"`
	TotalFavorites    int64  `json:"total_favorites"`
	DatabaseSizeBytes int64  `json:"database_size_bytes"`
	DatabaseVersion   string `json:"database_version"`
}

func (d *Database) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := d.DB.Model(&entities.Hymn{}).Count(&stats.TotalHymns).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Model(&entities.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Model(&entities.Favorite{}).Count(&stats.TotalFavorites).Error; err != nil {
		return nil, err
	}

	if info, err := os.Stat(d.path); err == nil {
		stats.DatabaseSizeBytes = info.Size()
	}

	var meta entities.Metadata
	if err := d.DB.Where("key = ?", entities.MetadataKeyVersion).First(&meta).Error; err == nil {
		stats.DatabaseVersion = meta.Value
	}

	return stats, nil
}
