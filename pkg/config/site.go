package config

import (
	"fmt"
	"net/url"
	"os"
	"sync"
)

const (
	// SectionIDSite is the identifier for the site section
	SectionIDSite = "site"

	// EnvBaseURL overrides the configured base URL when set
	EnvBaseURL = "SITECHECK_BASE_URL"

	// DefaultBaseURL is the live site the suite verifies
	DefaultBaseURL = "https://www.kainos.com"

	// DefaultCookieConsentSelector matches the OneTrust accept button the
	// site shows on first visit
	DefaultCookieConsentSelector = "#onetrust-accept-btn-handler"
)

// SiteSection holds the target site settings.
type SiteSection struct {
	baseURL               string
	cookieConsentSelector string
	mu                    sync.RWMutex
}

// NewSiteSection creates a site section with default settings.
func NewSiteSection() *SiteSection {
	return &SiteSection{
		baseURL:               DefaultBaseURL,
		cookieConsentSelector: DefaultCookieConsentSelector,
	}
}

// ID returns the section identifier.
func (s *SiteSection) ID() string {
	return SectionIDSite
}

// Title returns the section title.
func (s *SiteSection) Title() string {
	return "Target Site"
}

// Description returns the section description.
func (s *SiteSection) Description() string {
	return "Configure the site under verification: base URL and cookie consent handling."
}

// Data returns the current configuration data.
func (s *SiteSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]interface{}{
		"base_url":                s.baseURL,
		"cookie_consent_selector": s.cookieConsentSelector,
	}
}

// SetData updates the configuration from the provided data.
func (s *SiteSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range data {
		switch key {
		case "base_url":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value for 'base_url': expected string, got %T", value)
			}
			s.baseURL = v
		case "cookie_consent_selector":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value for 'cookie_consent_selector': expected string, got %T", value)
			}
			s.cookieConsentSelector = v
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *SiteSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	parsed, err := url.Parse(s.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must be http(s), got %q", s.baseURL)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *SiteSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = DefaultBaseURL
	s.cookieConsentSelector = DefaultCookieConsentSelector
}

// BaseURL returns the effective base URL. The SITECHECK_BASE_URL environment
// variable wins over the configured value.
func (s *SiteSection) BaseURL() string {
	if env := os.Getenv(EnvBaseURL); env != "" {
		return env
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// CookieConsentSelector returns the selector for the cookie consent button.
func (s *SiteSection) CookieConsentSelector() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cookieConsentSelector
}
