// Package cli defines the sitecheck command-line surface: running the
// verification suite, rendering reports, and inspecting header selectors.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/entrhq/sitecheck/pkg/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command for the sitecheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sitecheck",
		Short: "End-to-end verification suite for the Kainos website header",
		Long: "sitecheck runs browser-driven scenarios against the marketing site's " +
			"header component: logo, navigation items, dropdowns, and accessibility " +
			"landmarks. Results are written as cucumber JSON with failure screenshots.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Initialize(opts.ConfigPath)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.sitecheck/config.yaml)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}
