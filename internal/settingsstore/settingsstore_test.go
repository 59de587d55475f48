package settingsstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/database/settings"
	"github.com/christinsong/hymnal/internal/entities"
)

func setupStore(t *testing.T) (*Store, *settings.Repository, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(dbPath)
	require.NoError(t, err)

	repo := settings.NewRepository(db.DB)
	cleanup := func() {
		db.Close()
	}
	return New(repo), repo, cleanup
}

func TestStore_SeededDefaults(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	assert.Equal(t, "light", store.Theme())
	assert.Equal(t, 12, store.FontSize())
	assert.True(t, store.ShowHymnNumbers())
	assert.True(t, store.AutoBackup())
	assert.Equal(t, 7, store.BackupFrequencyDays())
	assert.Equal(t, 24, store.PresentationFontSize())
	assert.Equal(t, 50, store.RecentHymnsLimit())
}

func TestStore_SetTheme(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, store.SetTheme("dark"))
	assert.Equal(t, "dark", store.Theme())
}

func TestStore_CorruptValuesFallBack(t *testing.T) {
	store, repo, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, repo.Set(entities.SettingKeyFontSize, "banana"))
	require.NoError(t, repo.Set(entities.SettingKeyBackupFrequency, "-3"))
	require.NoError(t, repo.Set(entities.SettingKeyAutoBackup, "perhaps"))

	assert.Equal(t, DefaultFontSize, store.FontSize())
	assert.Equal(t, DefaultBackupFrequencyDays, store.BackupFrequencyDays())
	assert.Equal(t, DefaultAutoBackup, store.AutoBackup())
}

func TestStore_LastBackupAt(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	assert.Nil(t, store.LastBackupAt())

	now := time.Now().Truncate(time.Second)
	require.NoError(t, store.SetLastBackupAt(now))

	got := store.LastBackupAt()
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))
}
