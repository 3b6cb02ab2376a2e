package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ResetPaths()
	t.Cleanup(ResetPaths)

	dataDir := filepath.Join(home, ".stocksuggest")
	assert.Equal(t, filepath.Join(dataDir, "config.yaml"), ConfigFile())
	assert.Equal(t, filepath.Join(dataDir, "stocksuggest.log"), LogFile())
	assert.Equal(t, filepath.Join(dataDir, "catalog.db"), CatalogFile())

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
