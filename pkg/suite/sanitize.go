package suite

import (
	"strings"
	"time"
	"unicode"
)

// SanitizeScenarioName converts a scenario title into a filesystem-safe
// slug: lowercase alphanumerics with single dashes.
func SanitizeScenarioName(title string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// screenshotName builds the artifact file name for a failed scenario.
func screenshotName(title string, now time.Time) string {
	slug := SanitizeScenarioName(title)
	if slug == "" {
		slug = "scenario"
	}
	return slug + "-" + now.Format("20060102-150405") + ".png"
}
