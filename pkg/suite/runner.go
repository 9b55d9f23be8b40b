package suite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/entrhq/sitecheck/pkg/browser"
	"github.com/entrhq/sitecheck/pkg/config"
	"github.com/entrhq/sitecheck/pkg/logging"
	"github.com/entrhq/sitecheck/pkg/steps"
)

// RunOptions configures one suite execution.
type RunOptions struct {
	// FeaturesDir is the directory holding the Gherkin scenario source
	FeaturesDir string

	// Filter selects feature files by glob on their base name; empty runs all
	Filter string

	// Tags is godog's tag expression, e.g. "@smoke"
	Tags string

	// Headed forces a visible browser regardless of configuration
	Headed bool

	// Output receives the pretty formatter's output; defaults to stdout
	Output io.Writer
}

// Run executes the suite once and returns godog's exit status: zero when
// every scenario passed.
//
// Scenarios execute one at a time. Each gets a fresh browsing context and
// page; a failing scenario leaves behind exactly one full-page screenshot,
// attached to its report entry.
func Run(opts RunOptions) (int, error) {
	browserCfg := config.GetBrowser()
	siteCfg := config.GetSite()
	reportCfg := config.GetReport()
	if browserCfg == nil || siteCfg == nil || reportCfg == nil {
		return 1, fmt.Errorf("configuration not initialized")
	}

	logger, _ := logging.NewLogger("suite")
	defer logger.Close()

	if opts.FeaturesDir == "" {
		opts.FeaturesDir = "features"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	paths, err := FeaturePaths(opts.FeaturesDir, opts.Filter)
	if err != nil {
		return 1, err
	}

	headless := browserCfg.Headless()
	if opts.Headed {
		headless = false
	}

	width, height := browserCfg.Viewport()
	driver := browser.NewDriver(browser.Options{
		Headless: headless,
		Viewport: browser.Viewport{Width: width, Height: height},
		Timeout:  browserCfg.TimeoutMs(),
		SlowMo:   browserCfg.SlowMoMs(),
	})

	screenshotDir := reportCfg.ScreenshotDir()
	if err := os.MkdirAll(screenshotDir, 0750); err != nil {
		return 1, fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	if err := clearScreenshots(screenshotDir); err != nil {
		return 1, err
	}
	resultsPath := reportCfg.ResultsPath()
	if err := os.MkdirAll(filepath.Dir(resultsPath), 0750); err != nil {
		return 1, fmt.Errorf("failed to create report directory: %w", err)
	}

	godogOpts := godog.Options{
		Format:      fmt.Sprintf("pretty,cucumber:%s", resultsPath),
		Paths:       paths,
		Tags:        opts.Tags,
		Concurrency: 1,
		Output:      opts.Output,
		Strict:      true,
	}

	testSuite := godog.TestSuite{
		Name: "sitecheck",
		TestSuiteInitializer: func(ctx *godog.TestSuiteContext) {
			ctx.BeforeSuite(func() {
				// Browser acquisition failure is fatal to the run; there
				// is no hook error channel, so fail hard here.
				if err := driver.Initialize(); err != nil {
					logger.Errorf("browser initialization failed: %v", err)
					fmt.Fprintf(os.Stderr, "sitecheck: %v\n", err)
					os.Exit(1)
				}
			})
			ctx.AfterSuite(func() {
				if err := driver.Shutdown(); err != nil {
					logger.Warnf("browser shutdown: %v", err)
				}
			})
		},
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			world := steps.NewWorld(nil, siteCfg.BaseURL(), siteCfg.CookieConsentSelector())

			sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
				session, err := driver.NewSession()
				if err != nil {
					return ctx, fmt.Errorf("failed to acquire browser session: %w", err)
				}
				world.Session = session
				logger.Debugf("scenario %q: session acquired", scenario.Name)
				return ctx, nil
			})

			sc.After(func(ctx context.Context, scenario *godog.Scenario, scenarioErr error) (context.Context, error) {
				if world.Session == nil {
					return ctx, nil
				}

				if scenarioErr != nil {
					name := screenshotName(scenario.Name, time.Now())
					path := filepath.Join(screenshotDir, name)
					if data, err := world.Session.Screenshot(path); err != nil {
						logger.Warnf("scenario %q: screenshot failed: %v", scenario.Name, err)
					} else {
						ctx = godog.Attach(ctx, failureAttachment(name, data))
						logger.Infof("scenario %q failed, screenshot at %s", scenario.Name, path)
					}
				}

				driver.ReleaseSession(world.Session)
				world.Session = nil
				return ctx, nil
			})

			steps.Register(sc, world)
		},
		Options: &godogOpts,
	}

	return testSuite.Run(), nil
}

// failureAttachment wraps a captured screenshot for the scenario's report
// entry.
func failureAttachment(name string, data []byte) godog.Attachment {
	return godog.Attachment{
		Body:      data,
		FileName:  name,
		MediaType: "image/png",
	}
}

// clearScreenshots removes artifacts left by earlier runs, so the report
// directory only ever holds the current run's failures.
func clearScreenshots(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read screenshot directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove stale screenshot: %w", err)
		}
	}
	return nil
}
