package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/sitecheck/pkg/browser"
	"github.com/entrhq/sitecheck/pkg/config"
	"github.com/entrhq/sitecheck/pkg/inspect"
)

// NewInspectCommand creates the command that compares header selector
// strategies against a live page.
func NewInspectCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [url]",
		Short: "Report drift between landmark and class-based header selectors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			browserCfg := config.GetBrowser()
			siteCfg := config.GetSite()
			if browserCfg == nil || siteCfg == nil {
				return fmt.Errorf("configuration not initialized")
			}

			url := siteCfg.BaseURL()
			if len(args) == 1 {
				url = args[0]
			}

			width, height := browserCfg.Viewport()
			driver := browser.NewDriver(browser.Options{
				Headless: browserCfg.Headless(),
				Viewport: browser.Viewport{Width: width, Height: height},
				Timeout:  browserCfg.TimeoutMs(),
			})
			if err := driver.Initialize(); err != nil {
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer func() { _ = driver.Shutdown() }()

			session, err := driver.NewSession()
			if err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
			defer driver.ReleaseSession(session)

			if err := session.Navigate(url, browser.NavigateOptions{}); err != nil {
				return fmt.Errorf("failed to load %s: %w", url, err)
			}
			if selector := siteCfg.CookieConsentSelector(); selector != "" {
				_, _ = session.ClickIfPresent(session.Page.Locator(selector))
			}

			rep, err := inspect.FromSession(session)
			if err != nil {
				return fmt.Errorf("failed to inspect header: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rep.String())
			if !rep.InAgreement() {
				return fmt.Errorf("selector strategies disagree for %s", url)
			}
			return nil
		},
	}

	return cmd
}
