package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Navigate navigates the session's page to the specified URL and waits for
// the load state given in opts.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	gotoOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		gotoOpts.WaitUntil = &waitUntil
	}
	if opts.Timeout > 0 {
		gotoOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.Goto(url, gotoOpts); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return nil
}

// URL returns the page's current location.
func (s *Session) URL() string {
	return s.Page.URL()
}

// Title returns the rendered page title.
func (s *Session) Title() (string, error) {
	title, err := s.Page.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// Header returns a locator for the page's banner landmark. All header
// assertions scope through this.
func (s *Session) Header() playwright.Locator {
	return s.Page.GetByRole(*playwright.AriaRoleBanner)
}

// HeaderLink returns a locator for the header link with the given
// accessible name.
func (s *Session) HeaderLink(name string) playwright.Locator {
	return s.Header().GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{
		Name:  name,
		Exact: playwright.Bool(true),
	})
}

// WaitVisible waits until the locator's first match is visible, within the
// page's default timeout.
func (s *Session) WaitVisible(loc playwright.Locator) error {
	err := loc.First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		return fmt.Errorf("element not visible: %w", err)
	}
	return nil
}

// ClickIfPresent clicks the locator if at least one match exists right now,
// and reports whether it did. Used only for the cookie consent banner, which
// may or may not appear.
func (s *Session) ClickIfPresent(loc playwright.Locator) (bool, error) {
	count, err := loc.Count()
	if err != nil {
		return false, fmt.Errorf("presence check failed: %w", err)
	}
	if count == 0 {
		return false, nil
	}
	if err := loc.First().Click(); err != nil {
		return false, fmt.Errorf("click failed: %w", err)
	}
	return true, nil
}

// IsFocused reports whether the locator's element is the document's active
// element.
func (s *Session) IsFocused(loc playwright.Locator) (bool, error) {
	result, err := loc.Evaluate("el => el === document.activeElement", nil)
	if err != nil {
		return false, fmt.Errorf("focus check failed: %w", err)
	}
	focused, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected focus check result %T", result)
	}
	return focused, nil
}

// Screenshot captures a full-page PNG and writes it to path.
func (s *Session) Screenshot(path string) ([]byte, error) {
	data, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Path:     playwright.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return data, nil
}
