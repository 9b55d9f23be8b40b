// Package browser provides the Playwright session lifecycle for the
// verification suite.
//
// The package is built around two concepts:
//
// 1. Driver: owns the Playwright instance and the single browser process
// for the whole run. It is created once, initialized before the first
// scenario, and shut down after the last.
//
// 2. Session: one isolated browsing context plus page, created before each
// scenario and released unconditionally afterwards, success or failure.
//
// # Lifecycle
//
//	driver := browser.NewDriver(browser.Options{Headless: true})
//	if err := driver.Initialize(); err != nil { ... } // fatal to the run
//	defer driver.Shutdown()
//
//	session, err := driver.NewSession() // fatal to the scenario
//	defer driver.ReleaseSession(session)
//
// Acquisition failures escalate; release failures are logged and swallowed.
// Exactly one session is active at a time because the scenario runner is
// pinned to sequential execution.
package browser
