package steps

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// headerElement resolves a named interactive element inside the banner
// landmark: first by link role, then by button role.
func (w *World) headerElement(name string) (playwright.Locator, error) {
	link := w.Session.HeaderLink(name)
	count, err := link.Count()
	if err != nil {
		return nil, fmt.Errorf("lookup of %q failed: %w", name, err)
	}
	if count > 0 {
		return link.First(), nil
	}

	button := w.Session.Header().GetByRole(*playwright.AriaRoleButton, playwright.LocatorGetByRoleOptions{
		Name:  name,
		Exact: playwright.Bool(true),
	})
	count, err = button.Count()
	if err != nil {
		return nil, fmt.Errorf("lookup of %q failed: %w", name, err)
	}
	if count > 0 {
		return button.First(), nil
	}

	return nil, fmt.Errorf("no header link or button named %q", name)
}

// focusHeaderElement gives keyboard focus to the named header element.
func (w *World) focusHeaderElement(name string) error {
	element, err := w.headerElement(name)
	if err != nil {
		return err
	}
	if err := element.Focus(); err != nil {
		return fmt.Errorf("failed to focus %q: %w", name, err)
	}
	return nil
}

// headerElementIsFocused asserts the named element is the document's active
// element.
func (w *World) headerElementIsFocused(name string) error {
	element, err := w.headerElement(name)
	if err != nil {
		return err
	}
	focused, err := w.Session.IsFocused(element)
	if err != nil {
		return err
	}
	if !focused {
		return fmt.Errorf("%q is not focused", name)
	}
	return nil
}

// focusLogoLink gives keyboard focus to the header's logo link. The logo
// link is resolved structurally rather than by accessible name, so it gets
// its own phrase instead of going through headerElement.
func (w *World) focusLogoLink() error {
	if err := w.logoLink().Focus(); err != nil {
		return fmt.Errorf("failed to focus logo link: %w", err)
	}
	return nil
}

// logoLinkIsFocused asserts the logo link is the document's active element.
func (w *World) logoLinkIsFocused() error {
	focused, err := w.Session.IsFocused(w.logoLink())
	if err != nil {
		return err
	}
	if !focused {
		return fmt.Errorf("logo link is not focused")
	}
	return nil
}

// navigationLandmarkIsPresent asserts the header exposes a navigation
// landmark for assistive technology.
func (w *World) navigationLandmarkIsPresent() error {
	nav := w.Session.Header().GetByRole(*playwright.AriaRoleNavigation)
	return w.Session.WaitVisible(nav)
}
