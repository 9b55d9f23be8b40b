package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

const (
	// SectionIDBrowser is the identifier for the browser section
	SectionIDBrowser = "browser"

	// EnvHeadless overrides the headless setting when set ("true"/"false")
	EnvHeadless = "SITECHECK_HEADLESS"
)

// BrowserSection manages browser launch settings for a run.
type BrowserSection struct {
	headless       bool
	viewportWidth  int
	viewportHeight int
	timeoutMs      float64
	slowMoMs       float64
	mu             sync.RWMutex
}

// NewBrowserSection creates a browser section with default settings:
// headless, 1920x1080, 30 second operation timeout.
func NewBrowserSection() *BrowserSection {
	return &BrowserSection{
		headless:       true,
		viewportWidth:  1920,
		viewportHeight: 1080,
		timeoutMs:      30000,
	}
}

// ID returns the section identifier.
func (s *BrowserSection) ID() string {
	return SectionIDBrowser
}

// Title returns the section title.
func (s *BrowserSection) Title() string {
	return "Browser Settings"
}

// Description returns the section description.
func (s *BrowserSection) Description() string {
	return "Configure the browser process: headless mode, viewport size, and operation timeout."
}

// Data returns the current configuration data.
func (s *BrowserSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"headless":        s.headless,
		"viewport_width":  s.viewportWidth,
		"viewport_height": s.viewportHeight,
		"timeout_ms":      s.timeoutMs,
		"slow_mo_ms":      s.slowMoMs,
	}
}

// SetData updates the configuration from the provided data.
func (s *BrowserSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range data {
		switch key {
		case "headless":
			v, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value for 'headless': expected bool, got %T", value)
			}
			s.headless = v
		case "viewport_width":
			v, err := toInt(value)
			if err != nil {
				return fmt.Errorf("invalid value for 'viewport_width': %w", err)
			}
			s.viewportWidth = v
		case "viewport_height":
			v, err := toInt(value)
			if err != nil {
				return fmt.Errorf("invalid value for 'viewport_height': %w", err)
			}
			s.viewportHeight = v
		case "timeout_ms":
			v, err := toFloat(value)
			if err != nil {
				return fmt.Errorf("invalid value for 'timeout_ms': %w", err)
			}
			s.timeoutMs = v
		case "slow_mo_ms":
			v, err := toFloat(value)
			if err != nil {
				return fmt.Errorf("invalid value for 'slow_mo_ms': %w", err)
			}
			s.slowMoMs = v
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *BrowserSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.viewportWidth <= 0 || s.viewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", s.viewportWidth, s.viewportHeight)
	}
	if s.timeoutMs <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %v", s.timeoutMs)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *BrowserSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headless = true
	s.viewportWidth = 1920
	s.viewportHeight = 1080
	s.timeoutMs = 30000
	s.slowMoMs = 0
}

// Headless returns the effective headless setting. The SITECHECK_HEADLESS
// environment variable wins over the configured value.
func (s *BrowserSection) Headless() bool {
	if env := os.Getenv(EnvHeadless); env != "" {
		if v, err := strconv.ParseBool(env); err == nil {
			return v
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headless
}

// SetHeadless sets the configured headless value.
func (s *BrowserSection) SetHeadless(headless bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headless = headless
}

// Viewport returns the configured viewport dimensions.
func (s *BrowserSection) Viewport() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewportWidth, s.viewportHeight
}

// TimeoutMs returns the per-operation timeout in milliseconds.
func (s *BrowserSection) TimeoutMs() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeoutMs
}

// SlowMoMs returns the per-operation delay in milliseconds.
func (s *BrowserSection) SlowMoMs() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slowMoMs
}

// toInt converts YAML-decoded numeric values to int.
func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

// toFloat converts YAML-decoded numeric values to float64.
func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}
