package steps

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/sitecheck/pkg/browser"
)

// clickNavigationItem clicks a header item and waits for the resulting page
// to load.
func (w *World) clickNavigationItem(label string) error {
	link := w.Session.HeaderLink(label)
	if err := link.Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", label, err)
	}
	err := w.Session.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	})
	if err != nil {
		return fmt.Errorf("page did not finish loading after clicking %q: %w", label, err)
	}
	return nil
}

// navigateTo goes directly to a site-relative path.
func (w *World) navigateTo(path string) error {
	return w.Session.Navigate(w.Resolve(path), browser.NavigateOptions{
		WaitUntil: "load",
	})
}

// currentURLContains asserts the page location contains the literal path.
func (w *World) currentURLContains(path string) error {
	current := w.Session.URL()
	if !strings.Contains(current, path) {
		return fmt.Errorf("current URL %q does not contain %q", current, path)
	}
	return nil
}

// pageTitleContains asserts the rendered title contains the literal label.
func (w *World) pageTitleContains(label string) error {
	title, err := w.Session.Title()
	if err != nil {
		return err
	}
	if !strings.Contains(title, label) {
		return fmt.Errorf("page title %q does not contain %q", title, label)
	}
	return nil
}
