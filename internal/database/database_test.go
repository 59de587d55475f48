package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christinsong/hymnal/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return db, cleanup
}

func TestNew_SeedsDefaults(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := db.Stats()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.TotalHymns, int64(3))
	assert.GreaterOrEqual(t, stats.TotalCategories, int64(10))
	assert.Equal(t, "1.0.0", stats.DatabaseVersion)
	assert.Positive(t, stats.DatabaseSizeBytes)
}

func TestNew_IdempotentOnExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := New(dbPath)
	require.NoError(t, err)
	first, err := db.Stats()
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must re-apply the schema without duplicating seed rows.
	db, err = New(dbPath)
	require.NoError(t, err)
	defer db.Close()

	second, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, first.TotalHymns, second.TotalHymns)
	assert.Equal(t, first.TotalCategories, second.TotalCategories)
}

func TestNew_SearchModuleCompiledIn(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// The sqlite_fts5 build tag compiles the FTS5 module into the driver;
	// fts5.go rejects builds without it.
	var count int64
	err := db.DB.Raw(`SELECT COUNT(*) FROM pragma_compile_options WHERE compile_options = 'ENABLE_FTS5'`).
		Scan(&count).Error
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestNew_SearchIndexCoversSeedHymns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	var count int64
	err := db.DB.Raw(`SELECT COUNT(*) FROM hymns_fts WHERE hymns_fts MATCH ?`, "grace").Scan(&count).Error
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestInitialize(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	assert.True(t, Initialize(dbPath))
	assert.FileExists(t, dbPath)
}

func TestInitialize_BadPath(t *testing.T) {
	// A directory cannot be opened as a database file.
	assert.False(t, Initialize(t.TempDir()))
}

func TestBackup(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	backupDir := filepath.Join(t.TempDir(), "backups")
	backupPath, err := db.Backup(backupDir)
	require.NoError(t, err)
	require.FileExists(t, backupPath)

	original, err := os.ReadFile(db.Path())
	require.NoError(t, err)
	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	// The copy must itself be a valid, seeded database.
	restored, err := New(backupPath)
	require.NoError(t, err)
	defer restored.Close()

	var count int64
	require.NoError(t, restored.DB.Model(&entities.Hymn{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(3))
}

func TestStats_CountsFavorites(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	var hymn entities.Hymn
	require.NoError(t, db.DB.Where("number = ?", 1).First(&hymn).Error)
	require.NoError(t, db.DB.Create(&entities.Favorite{HymnID: hymn.ID}).Error)

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalFavorites)
}
