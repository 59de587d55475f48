package favourites

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

func TestRepository_FavoriteRoundTrip(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	id := hymnIDByNumber(t, db, 1)

	added, err := repo.Add(id)
	require.NoError(t, err)
	assert.True(t, added)

	isFav, err := repo.IsFavorite(id)
	require.NoError(t, err)
	assert.True(t, isFav)

	favorites, err := repo.GetFavorites()
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, 1, favorites[0].Number)

	removed, err := repo.Remove(id)
	require.NoError(t, err)
	assert.True(t, removed)

	isFav, err = repo.IsFavorite(id)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestRepository_Add_Idempotent(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	id := hymnIDByNumber(t, db, 1)

	added, err := repo.Add(id)
	require.NoError(t, err)
	assert.True(t, added)

	// Re-adding must not create a duplicate row.
	added, err = repo.Add(id)
	require.NoError(t, err)
	assert.False(t, added)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Favorite{}).Where("hymn_id = ?", id).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Remove_Absent(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	id := hymnIDByNumber(t, db, 1)

	removed, err := repo.Remove(id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRepository_GetFavorites_MostRecentFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first := hymnIDByNumber(t, db, 1)
	second := hymnIDByNumber(t, db, 2)

	_, err := repo.Add(first)
	require.NoError(t, err)
	_, err = repo.Add(second)
	require.NoError(t, err)

	favorites, err := repo.GetFavorites()
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, 2, favorites[0].Number)
	assert.Equal(t, 1, favorites[1].Number)
}
