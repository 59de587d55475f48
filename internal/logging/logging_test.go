package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := Setup(dir, "test.log", "info")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test.log"), path)

	log.Info().Str("component", "test").Msg("hello from the test")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello from the test"))
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	_, err := Setup(t.TempDir(), "test.log", "not-a-level")
	assert.NoError(t, err)
}

func TestSetup_UnwritableDir(t *testing.T) {
	// A file where the directory should be forces MkdirAll to fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	path, err := Setup(blocker, "test.log", "info")
	assert.Error(t, err)
	assert.Empty(t, path)
}
