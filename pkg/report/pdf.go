package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// BundleScreenshots collects every failure screenshot under screenshotDir
// into a single PDF at outPath, one page per image, in file-name order.
// Returns the number of screenshots bundled.
func BundleScreenshots(screenshotDir, outPath string) (int, error) {
	entries, err := os.ReadDir(screenshotDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read screenshot directory: %w", err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		images = append(images, filepath.Join(screenshotDir, entry.Name()))
	}
	sort.Strings(images)

	if len(images) == 0 {
		return 0, fmt.Errorf("no screenshots found under %s", screenshotDir)
	}

	if err := api.ImportImagesFile(images, outPath, nil, nil); err != nil {
		return 0, fmt.Errorf("failed to build screenshot PDF: %w", err)
	}
	return len(images), nil
}
