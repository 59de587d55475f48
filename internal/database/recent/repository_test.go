package recent

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return NewRepository(db.DB), db, cleanup
}

func hymnIDByNumber(t *testing.T, db *database.Database, number int) uint {
	t.Helper()
	var hymn entities.Hymn
	require.NoError(t, db.DB.Where("number = ?", number).First(&hymn).Error)
	return hymn.ID
}

func TestRepository_AddView_MostRecentFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first := hymnIDByNumber(t, db, 1)
	second := hymnIDByNumber(t, db, 2)

	require.NoError(t, repo.AddView(first))
	require.NoError(t, repo.AddView(second))

	recent, err := repo.GetRecent(10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(recent), 2)
	assert.Equal(t, 2, recent[0].Number)

	stat1, err := repo.GetUsageStat(first)
	require.NoError(t, err)
	require.NotNil(t, stat1)
	assert.Equal(t, int64(1), stat1.ViewCount)

	stat2, err := repo.GetUsageStat(second)
	require.NoError(t, err)
	require.NotNil(t, stat2)
	assert.Equal(t, int64(1), stat2.ViewCount)
}

func TestRepository_AddView_IncrementsSingleStatRow(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	id := hymnIDByNumber(t, db, 1)

	require.NoError(t, repo.AddView(id))
	require.NoError(t, repo.AddView(id))

	stat, err := repo.GetUsageStat(id)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.Equal(t, int64(2), stat.ViewCount)

	var statRows int64
	require.NoError(t, db.DB.Model(&entities.UsageStat{}).Where("hymn_id = ?", id).Count(&statRows).Error)
	assert.Equal(t, int64(1), statRows)

	// The view log keeps every view.
	var logRows int64
	require.NoError(t, db.DB.Model(&entities.RecentlyViewed{}).Where("hymn_id = ?", id).Count(&logRows).Error)
	assert.Equal(t, int64(2), logRows)
}

func TestRepository_GetRecent_DistinctAndCapped(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first := hymnIDByNumber(t, db, 1)
	second := hymnIDByNumber(t, db, 2)
	third := hymnIDByNumber(t, db, 3)

	require.NoError(t, repo.AddView(first))
	require.NoError(t, repo.AddView(second))
	require.NoError(t, repo.AddView(third))
	require.NoError(t, repo.AddView(first)) // re-view moves hymn 1 to the front

	recent, err := repo.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 1, recent[0].Number)
	assert.Equal(t, 3, recent[1].Number)
	assert.Equal(t, 2, recent[2].Number)

	capped, err := repo.GetRecent(2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestRepository_GetUsageStat_NeverViewed(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	id := hymnIDByNumber(t, db, 3)

	stat, err := repo.GetUsageStat(id)
	require.NoError(t, err)
	assert.Nil(t, stat)
}
