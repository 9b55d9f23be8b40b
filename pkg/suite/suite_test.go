package suite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeScenarioName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Logo is visible", "logo-is-visible"},
		{"punctuation collapses", "Header: logo & nav items!", "header-logo-nav-items"},
		{"quoted literals", `Clicking "Workday" navigates`, "clicking-workday-navigates"},
		{"already clean", "dropdown", "dropdown"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeScenarioName(tt.title))
		})
	}
}

func TestScreenshotName(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	name := screenshotName("Logo is visible", now)
	assert.Equal(t, "logo-is-visible-20260314-150926.png", name)

	// Untitled scenarios still get a usable file name
	name = screenshotName("", now)
	assert.Equal(t, "scenario-20260314-150926.png", name)
}

func TestFailureAttachment(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	att := failureAttachment("logo-is-visible-20260314-150926.png", data)

	assert.Equal(t, "logo-is-visible-20260314-150926.png", att.FileName)
	assert.Equal(t, "image/png", att.MediaType)
	assert.Equal(t, data, att.Body)
}

func TestClearScreenshots(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old-failure-20250101-090000.png")
	require.NoError(t, os.WriteFile(stale, []byte("png"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "another-20250102-090000.png"), []byte("png"), 0600))
	keep := filepath.Join(dir, "cucumber.json")
	require.NoError(t, os.WriteFile(keep, []byte("[]"), 0600))

	require.NoError(t, clearScreenshots(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cucumber.json", entries[0].Name())

	// A second pass over the now-clean directory is a no-op
	require.NoError(t, clearScreenshots(dir))
}

func writeFeature(t *testing.T, dir, name string) {
	t.Helper()
	content := "Feature: " + name + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".feature"), []byte(content), 0600))
}

func TestFeaturePaths(t *testing.T) {
	dir := t.TempDir()
	writeFeature(t, dir, "header")
	writeFeature(t, dir, "navigation")
	writeFeature(t, dir, "accessibility")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))

	t.Run("empty pattern selects the directory", func(t *testing.T) {
		paths, err := FeaturePaths(dir, "")
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, paths)
	})

	t.Run("glob selects matching files", func(t *testing.T) {
		paths, err := FeaturePaths(dir, "nav*")
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, filepath.Join(dir, "navigation.feature"), paths[0])
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		paths, err := FeaturePaths(dir, "HEADER")
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, filepath.Join(dir, "header.feature"), paths[0])
	})

	t.Run("non-feature files are ignored", func(t *testing.T) {
		paths, err := FeaturePaths(dir, "*")
		require.NoError(t, err)
		assert.Len(t, paths, 3)
	})

	t.Run("no match is an error", func(t *testing.T) {
		_, err := FeaturePaths(dir, "checkout*")
		assert.Error(t, err)
	})

	t.Run("invalid pattern is an error", func(t *testing.T) {
		_, err := FeaturePaths(dir, "[")
		assert.Error(t, err)
	})
}
