package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// FeaturePaths returns the feature files under dir whose base name (without
// the .feature extension) matches the glob pattern, case-insensitively.
// An empty pattern selects the whole directory.
func FeaturePaths(dir, pattern string) ([]string, error) {
	if pattern == "" {
		return []string{dir}, nil
	}

	matcher, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read features directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".feature") {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), ".feature"))
		if matcher.Match(name) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no feature files under %s match %q", dir, pattern)
	}
	return paths, nil
}
