package browser

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver(Options{})

	assert.Equal(t, DefaultViewportWidth, d.opts.Viewport.Width)
	assert.Equal(t, DefaultViewportHeight, d.opts.Viewport.Height)
	assert.Equal(t, DefaultTimeout, d.opts.Timeout)
}

func TestNewDriverKeepsExplicitOptions(t *testing.T) {
	d := NewDriver(Options{
		Headless: true,
		Viewport: Viewport{Width: 1280, Height: 720},
		Timeout:  5000,
	})

	assert.True(t, d.opts.Headless)
	assert.Equal(t, 1280, d.opts.Viewport.Width)
	assert.Equal(t, 720, d.opts.Viewport.Height)
	assert.Equal(t, 5000.0, d.opts.Timeout)
}

func TestShutdownWithoutInitialize(t *testing.T) {
	d := NewDriver(Options{})

	require.NoError(t, d.Shutdown())
	// Shutdown also releases the driver's logger; a second call must stay safe.
	require.NoError(t, d.Shutdown())
}

// The session layer scopes every lookup by ARIA role. The library exposes
// the role constants as pointers that must be dereferenced at the GetByRole
// call sites; pin the dereferenced values here so a signature change shows
// up as a test failure instead of a runtime surprise.
func TestAriaRolesResolve(t *testing.T) {
	assert.Equal(t, playwright.AriaRole("banner"), *playwright.AriaRoleBanner)
	assert.Equal(t, playwright.AriaRole("link"), *playwright.AriaRoleLink)
	assert.Equal(t, playwright.AriaRole("button"), *playwright.AriaRoleButton)
	assert.Equal(t, playwright.AriaRole("navigation"), *playwright.AriaRoleNavigation)
}
