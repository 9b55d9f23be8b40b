package steps

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/sitecheck/pkg/browser"
)

// logoImagePath is the literal substring the logo image source must carry.
const logoImagePath = "/globalassets/images/5_logos/kainos_logo.png"

// openHomepage navigates to the site root and dismisses the cookie consent
// banner if it appears. This is the only conditional in the step layer.
func (w *World) openHomepage() error {
	err := w.Session.Navigate(w.Resolve("/"), browser.NavigateOptions{
		WaitUntil: "load",
	})
	if err != nil {
		return err
	}
	return w.acceptCookiesIfPrompted()
}

// acceptCookiesIfPrompted clicks the consent button when present. The banner
// only shows on a fresh browsing context, and not at all in some regions.
func (w *World) acceptCookiesIfPrompted() error {
	if w.CookieConsentSelector == "" {
		return nil
	}
	consent := w.Session.Page.Locator(w.CookieConsentSelector)
	if _, err := w.Session.ClickIfPresent(consent); err != nil {
		return fmt.Errorf("cookie consent: %w", err)
	}
	return nil
}

// headerIsVisible asserts the banner landmark is rendered.
func (w *World) headerIsVisible() error {
	return w.Session.WaitVisible(w.Session.Header())
}

// logoLink returns the header link that wraps the logo image.
func (w *World) logoLink() playwright.Locator {
	return w.Session.Header().Locator("a:has(img)").First()
}

// logoIsVisible asserts the logo image is rendered in the header.
func (w *World) logoIsVisible() error {
	return w.Session.WaitVisible(w.logoLink().Locator("img"))
}

// logoImageSourceIsCorrect asserts the logo image source contains the
// expected asset path.
func (w *World) logoImageSourceIsCorrect() error {
	src, err := w.logoLink().Locator("img").GetAttribute("src")
	if err != nil {
		return fmt.Errorf("failed to read logo src: %w", err)
	}
	if !strings.Contains(src, logoImagePath) {
		return fmt.Errorf("logo src %q does not contain %q", src, logoImagePath)
	}
	return nil
}

// logoLinksToHome asserts the logo's enclosing link points at the site root.
func (w *World) logoLinksToHome() error {
	href, err := w.logoLink().GetAttribute("href")
	if err != nil {
		return fmt.Errorf("failed to read logo link href: %w", err)
	}
	if href != "/" {
		return fmt.Errorf("logo link href is %q, want %q", href, "/")
	}
	return nil
}

// headerContainsNavigationItems asserts every (label, path) row renders as a
// visible header link with the exact destination.
func (w *World) headerContainsNavigationItems(table *godog.Table) error {
	items, err := navItemsFromTable(table)
	if err != nil {
		return err
	}

	for _, item := range items {
		link := w.Session.HeaderLink(item.Label)
		if err := w.Session.WaitVisible(link); err != nil {
			return fmt.Errorf("navigation item %q: %w", item.Label, err)
		}
		href, err := link.GetAttribute("href")
		if err != nil {
			return fmt.Errorf("navigation item %q: %w", item.Label, err)
		}
		if href != item.Path {
			return fmt.Errorf("navigation item %q links to %q, want %q", item.Label, href, item.Path)
		}
	}
	return nil
}

// navigationItemIsVisible asserts a single labelled header item is rendered.
func (w *World) navigationItemIsVisible(label string) error {
	return w.Session.WaitVisible(w.Session.HeaderLink(label))
}

// navigationItemLinksTo asserts a single labelled header item points at the
// given path.
func (w *World) navigationItemLinksTo(label, path string) error {
	href, err := w.Session.HeaderLink(label).GetAttribute("href")
	if err != nil {
		return fmt.Errorf("navigation item %q: %w", label, err)
	}
	if href != path {
		return fmt.Errorf("navigation item %q links to %q, want %q", label, href, path)
	}
	return nil
}

// hoverNavigationItem hovers a header item to reveal its dropdown.
func (w *World) hoverNavigationItem(label string) error {
	link := w.Session.HeaderLink(label)
	if err := link.Hover(); err != nil {
		return fmt.Errorf("failed to hover %q: %w", label, err)
	}
	return nil
}

// linksAreVisible asserts each labelled link is visible. Dropdown entries
// live outside the banner landmark in the rendered DOM, so lookup is
// page-wide here.
func (w *World) linksAreVisible(table *godog.Table) error {
	labels, err := labelsFromTable(table)
	if err != nil {
		return err
	}

	for _, label := range labels {
		link := w.Session.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{
			Name:  label,
			Exact: playwright.Bool(true),
		})
		if err := w.Session.WaitVisible(link); err != nil {
			return fmt.Errorf("link %q: %w", label, err)
		}
	}
	return nil
}
