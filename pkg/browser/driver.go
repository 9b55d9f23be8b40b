package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/sitecheck/pkg/logging"
)

// Driver owns the Playwright instance and the single browser process for a
// run. Sessions are spawned from it, one per scenario; the process itself is
// read-only after launch.
type Driver struct {
	mu          sync.Mutex
	playwright  *playwright.Playwright
	browser     playwright.Browser
	opts        Options
	logger      *logging.Logger
	initialized bool
}

// NewDriver creates a driver with the given options. Zero-value viewport and
// timeout fall back to the package defaults.
func NewDriver(opts Options) *Driver {
	if opts.Viewport.Width == 0 || opts.Viewport.Height == 0 {
		opts.Viewport = Viewport{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		}
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	logger, _ := logging.NewLogger("browser")

	return &Driver{
		opts:   opts,
		logger: logger,
	}
}

// Initialize installs and starts Playwright and launches the browser
// process. It must be called once before any session is created; failure
// here is fatal to the run.
func (d *Driver) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	// Install and run Playwright quietly so driver output does not mix
	// with the scenario runner's own formatting.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.opts.Headless),
	}
	if d.opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(d.opts.SlowMo)
	}

	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	d.playwright = pw
	d.browser = browser
	d.initialized = true
	d.logger.Infof("browser launched (headless=%v)", d.opts.Headless)
	return nil
}

// NewSession creates an isolated browsing context and page for one scenario.
// The context ignores TLS validation errors and uses the fixed run viewport;
// the page carries the run's default timeout.
func (d *Driver) NewSession() (*Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return nil, fmt.Errorf("driver not initialized")
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  d.opts.Viewport.Width,
			Height: d.opts.Viewport.Height,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}
	context, err := d.browser.NewContext(contextOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(d.opts.Timeout)

	return &Session{
		Context:   context,
		Page:      page,
		CreatedAt: time.Now(),
	}, nil
}

// ReleaseSession closes a session's page and context. Release errors are
// logged and swallowed: teardown must never fail a scenario.
func (d *Driver) ReleaseSession(s *Session) {
	if s == nil {
		return
	}
	if err := s.Page.Close(); err != nil {
		d.logger.Warnf("page close failed: %v", err)
	}
	if err := s.Context.Close(); err != nil {
		d.logger.Warnf("context close failed: %v", err)
	}
}

// Shutdown closes the browser process, stops Playwright, and closes the
// driver's logger. Safe to call even if Initialize failed or was never
// called.
func (d *Driver) Shutdown() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer func() { _ = d.logger.Close() }()

	if !d.initialized {
		return nil
	}

	if err := d.browser.Close(); err != nil {
		d.logger.Warnf("browser close failed: %v", err)
	}
	if err := d.playwright.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	d.initialized = false
	d.logger.Infof("browser shut down")
	return nil
}
