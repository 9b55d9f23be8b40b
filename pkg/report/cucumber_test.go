package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResults = `[
  {
    "uri": "features/header.feature",
    "keyword": "Feature",
    "name": "Website header",
    "elements": [
      {
        "keyword": "Scenario",
        "name": "Logo is visible",
        "type": "scenario",
        "tags": [{"name": "@smoke", "line": 4}],
        "steps": [
          {
            "keyword": "Given ",
            "name": "I open the Kainos homepage",
            "result": {"status": "passed", "duration": 1200000000}
          },
          {
            "keyword": "Then ",
            "name": "the header should display the logo",
            "result": {"status": "passed", "duration": 300000000}
          }
        ]
      },
      {
        "keyword": "Scenario",
        "name": "Workday navigation",
        "type": "scenario",
        "steps": [
          {
            "keyword": "When ",
            "name": "I click the \"Workday\" navigation item",
            "result": {"status": "failed", "duration": 30000000000, "error_message": "current URL \"https://www.kainos.com/\" does not contain \"/workday\""},
            "embeddings": [{"mime_type": "image/png", "data": "aGVsbG8=", "name": "workday-navigation.png"}]
          },
          {
            "keyword": "Then ",
            "name": "the current URL should contain \"/workday\"",
            "result": {"status": "skipped"}
          }
        ]
      }
    ]
  }
]`

func writeResults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cucumber.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses results", func(t *testing.T) {
		features, err := Load(writeResults(t, sampleResults))
		require.NoError(t, err)
		require.Len(t, features, 1)
		assert.Equal(t, "Website header", features[0].Name)
		assert.Len(t, features[0].Elements, 2)
	})

	t.Run("tolerates empty runs", func(t *testing.T) {
		features, err := Load(writeResults(t, "[]"))
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		_, err := Load(writeResults(t, "{not json"))
		assert.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	features, err := Load(writeResults(t, sampleResults))
	require.NoError(t, err)

	summary := Summarize(features)

	assert.Equal(t, 1, summary.Features)
	assert.Equal(t, 2, summary.Scenarios)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 2)

	passed := summary.Results[0]
	assert.True(t, passed.Passed)
	assert.Equal(t, []string{"@smoke"}, passed.Tags)
	assert.Equal(t, 1500*time.Millisecond, passed.Duration)
	// Passed scenarios carry no screenshot artifact
	assert.Zero(t, passed.Screenshots)

	failed := summary.Results[1]
	assert.False(t, failed.Passed)
	assert.Equal(t, `When I click the "Workday" navigation item`, failed.FailedStep)
	assert.Contains(t, failed.Error, "/workday")
	// Failed scenarios carry exactly one screenshot artifact
	assert.Equal(t, 1, failed.Screenshots)
}

func TestSummarize_EmptyRun(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Scenarios)
	assert.Zero(t, summary.Failed)
	assert.Empty(t, summary.Results)
}

func TestFailedResults(t *testing.T) {
	features, err := Load(writeResults(t, sampleResults))
	require.NoError(t, err)

	failed := Summarize(features).FailedResults()
	require.Len(t, failed, 1)
	assert.Equal(t, "Workday navigation", failed[0].Name)
}

func TestRender(t *testing.T) {
	features, err := Load(writeResults(t, sampleResults))
	require.NoError(t, err)
	summary := Summarize(features)

	out := Render(summary, map[string]string{"environment": "production"})

	assert.Contains(t, out, "sitecheck run summary")
	assert.Contains(t, out, "environment: production")
	assert.Contains(t, out, "Logo is visible")
	assert.Contains(t, out, "Workday navigation")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "1 screenshot attached")
}

func TestBundleScreenshots_NoScreenshots(t *testing.T) {
	dir := t.TempDir()
	_, err := BundleScreenshots(dir, filepath.Join(dir, "out.pdf"))
	assert.Error(t, err)
}
