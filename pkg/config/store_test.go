package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	err = store.SetSection("site", map[string]interface{}{
		"base_url": "https://staging.kainos.com",
	})
	require.NoError(t, err)

	require.NoError(t, store.Save())

	// A fresh store reads the same data back
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := reloaded.GetSection("site")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.kainos.com", data["base_url"])
}

func TestFileStore_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := store.GetSection("browser")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileStore_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid"), 0600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_GetSectionReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetSection("report", map[string]interface{}{
		"output_dir": "reports",
	}))

	data, err := store.GetSection("report")
	require.NoError(t, err)
	data["output_dir"] = "mutated"

	fresh, err := store.GetSection("report")
	require.NoError(t, err)
	assert.Equal(t, "reports", fresh["output_dir"])
}

func TestFileStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetSection("site", map[string]interface{}{"base_url": "https://www.kainos.com"}))
	require.NoError(t, store.Save())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
