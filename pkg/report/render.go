package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8E6CF")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB3BA")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFB3BA")).
			Padding(0, 1)
)

// Render produces the styled terminal summary for a run. Failing scenarios
// include their Gherkin source snippet and the step error.
func Render(summary Summary, metadata map[string]string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sitecheck run summary"))
	b.WriteString("\n")

	for _, line := range metadataLines(metadata) {
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}

	counts := fmt.Sprintf("%d features, %d scenarios: ", summary.Features, summary.Scenarios)
	b.WriteString(dimStyle.Render(counts))
	b.WriteString(passStyle.Render(fmt.Sprintf("%d passed", summary.Passed)))
	b.WriteString(dimStyle.Render(", "))
	if summary.Failed > 0 {
		b.WriteString(failStyle.Render(fmt.Sprintf("%d failed", summary.Failed)))
	} else {
		b.WriteString(dimStyle.Render("0 failed"))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf(" in %s", summary.Duration.Round(time.Millisecond))))
	b.WriteString("\n\n")

	for _, result := range summary.Results {
		badge := passStyle.Render("PASS")
		if !result.Passed {
			badge = failStyle.Render("FAIL")
		}
		b.WriteString(fmt.Sprintf("%s  %s › %s\n", badge, result.Feature, result.Name))

		if !result.Passed {
			b.WriteString(renderFailure(result))
		}
	}

	return b.String()
}

// renderFailure renders the scenario's Gherkin snippet and error detail.
func renderFailure(result ScenarioResult) string {
	var detail strings.Builder

	snippet := gherkinSnippet(result)
	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, snippet, "gherkin", "terminal256", "monokai"); err != nil {
		// Highlighting is cosmetic; fall back to plain text
		highlighted.Reset()
		highlighted.WriteString(snippet)
	}
	detail.WriteString(highlighted.String())

	if result.Error != "" {
		detail.WriteString("\n")
		detail.WriteString(errorBoxStyle.Render(strings.TrimSpace(result.Error)))
		detail.WriteString("\n")
	}
	if result.Screenshots > 0 {
		detail.WriteString(dimStyle.Render(fmt.Sprintf("%d screenshot attached\n", result.Screenshots)))
	}
	detail.WriteString("\n")
	return detail.String()
}

// gherkinSnippet rebuilds the scenario source from its executed steps.
func gherkinSnippet(result ScenarioResult) string {
	var b strings.Builder
	b.WriteString("  Scenario: " + result.Name + "\n")
	for _, step := range result.Steps {
		marker := "  "
		if step.Result.Status == StatusFailed {
			marker = "✗ "
		}
		b.WriteString("    " + marker + step.Keyword + step.Name + "\n")
	}
	return b.String()
}

// metadataLines flattens metadata into stable display lines.
func metadataLines(metadata map[string]string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, metadata[k]))
	}
	return lines
}
