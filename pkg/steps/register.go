package steps

import (
	"github.com/cucumber/godog"
)

// Register wires every phrase onto the scenario context in declaration
// order. The suite supports two expression styles: a narrative one ("the
// header should display ...") and a direct one ("I click ..." / "the
// current URL should contain ..."). Both resolve elements through the
// banner landmark.
func Register(sc *godog.ScenarioContext, w *World) {
	// Preconditions
	sc.Step(`^I open the (?:Kainos )?homepage$`, w.openHomepage)
	sc.Step(`^I accept cookies if prompted$`, w.acceptCookiesIfPrompted)

	// Header presence
	sc.Step(`^the header should be visible$`, w.headerIsVisible)
	sc.Step(`^the header should display the logo$`, w.logoIsVisible)
	sc.Step(`^the logo should be visible$`, w.logoIsVisible)
	sc.Step(`^the logo image source should reference the Kainos logo asset$`, w.logoImageSourceIsCorrect)
	sc.Step(`^the logo should link to the homepage$`, w.logoLinksToHome)

	// Navigation items
	sc.Step(`^the header should contain the following navigation items:$`, w.headerContainsNavigationItems)
	sc.Step(`^the "([^"]*)" navigation item should be visible$`, w.navigationItemIsVisible)
	sc.Step(`^the "([^"]*)" navigation item should link to "([^"]*)"$`, w.navigationItemLinksTo)
	sc.Step(`^I hover over the "([^"]*)" navigation item$`, w.hoverNavigationItem)
	sc.Step(`^the following links should be visible:$`, w.linksAreVisible)

	// Click-through navigation
	sc.Step(`^I navigate to "([^"]*)"$`, w.navigateTo)
	sc.Step(`^I click the "([^"]*)" navigation item$`, w.clickNavigationItem)
	sc.Step(`^the current URL should contain "([^"]*)"$`, w.currentURLContains)
	sc.Step(`^the page title should contain "([^"]*)"$`, w.pageTitleContains)

	// Accessibility
	sc.Step(`^I give keyboard focus to the logo link$`, w.focusLogoLink)
	sc.Step(`^the logo link should be focused$`, w.logoLinkIsFocused)
	sc.Step(`^I give keyboard focus to the "([^"]*)" header element$`, w.focusHeaderElement)
	sc.Step(`^the "([^"]*)" header element should be focused$`, w.headerElementIsFocused)
	sc.Step(`^the header should expose a navigation landmark$`, w.navigationLandmarkIsPresent)
}
