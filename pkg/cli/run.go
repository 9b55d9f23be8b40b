package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/sitecheck/pkg/suite"
)

// NewRunCommand creates the command that executes the feature suite.
func NewRunCommand(root *RootOptions) *cobra.Command {
	opts := suite.RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the header verification scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Output = cmd.OutOrStdout()
			status, err := suite.Run(opts)
			if err != nil {
				return err
			}
			if status != 0 {
				return fmt.Errorf("suite finished with failures (status %d)", status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.FeaturesDir, "features", "features", "directory containing .feature files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "glob matched against feature file names, e.g. 'header*'")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "godog tag expression, e.g. '@smoke && ~@a11y'")
	cmd.Flags().BoolVar(&opts.Headed, "headed", false, "run with a visible browser window")

	return cmd
}
