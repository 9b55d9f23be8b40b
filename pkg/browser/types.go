package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session is one isolated browsing context plus its page, scoped to a
// single scenario. It is created by the Driver before a scenario runs and
// released unconditionally afterwards.
type Session struct {
	// Context is the isolated browser context (cookies, storage, cache)
	Context playwright.BrowserContext

	// Page is the scenario's page
	Page playwright.Page

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time
}

// Options configures the run-wide browser process.
type Options struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the page viewport for every session
	Viewport Viewport

	// Timeout is the default per-operation timeout (in milliseconds)
	Timeout float64

	// SlowMo delays each driver operation, useful in headed runs (milliseconds)
	SlowMo float64
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// Default values for browser operations.
const (
	DefaultTimeout        = 30000.0 // 30 seconds in milliseconds
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
)
