package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/entrhq/sitecheck/pkg/config"
	"github.com/entrhq/sitecheck/pkg/report"
)

// NewReportCommand creates the command that renders the latest run results.
func NewReportCommand(root *RootOptions) *cobra.Command {
	var (
		resultsPath string
		useTUI      bool
		pdfPath     string
		copyOut     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the most recent suite run",
		RunE: func(cmd *cobra.Command, args []string) error {
			section := config.GetReport()
			if section == nil {
				return fmt.Errorf("configuration not initialized")
			}
			if resultsPath == "" {
				resultsPath = section.ResultsPath()
			}

			features, err := report.Load(resultsPath)
			if err != nil {
				return fmt.Errorf("failed to load results: %w", err)
			}
			summary := report.Summarize(features)

			if pdfPath != "" {
				count, err := report.BundleScreenshots(section.ScreenshotDir(), pdfPath)
				if err != nil {
					return fmt.Errorf("failed to bundle screenshots: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Bundled %d screenshots into %s\n", count, pdfPath)
			}

			if useTUI {
				return report.RunViewer(summary)
			}

			rendered := report.Render(summary, section.Metadata())
			fmt.Fprintln(cmd.OutOrStdout(), rendered)

			if copyOut {
				text := plainSummary(summary)
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("failed to copy summary to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Summary copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "cucumber JSON results file (default from config)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "browse scenario results interactively")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "bundle failure screenshots into a PDF at the given path")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy a plain-text summary to the clipboard")

	return cmd
}

// plainSummary produces a clipboard-friendly summary without styling.
func plainSummary(s report.Summary) string {
	text := fmt.Sprintf("sitecheck: %d/%d scenarios passed across %d features in %s",
		s.Passed, s.Scenarios, s.Features, s.Duration)
	for _, r := range s.FailedResults() {
		text += fmt.Sprintf("\n  FAILED %s: %s", r.Name, r.FailedStep)
	}
	return text
}
