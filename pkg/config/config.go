package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and initializes the global configuration manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)

	// Register default sections
	if err := manager.RegisterSection(NewBrowserSection()); err != nil {
		return err
	}

	if err := manager.RegisterSection(NewSiteSection()); err != nil {
		return err
	}

	if err := manager.RegisterSection(NewReportSection()); err != nil {
		return err
	}

	// Load configuration
	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetBrowser returns the browser section from global config.
// Returns nil if config is not initialized.
func GetBrowser() *BrowserSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDBrowser)
	if !ok {
		return nil
	}

	browser, ok := section.(*BrowserSection)
	if !ok {
		return nil
	}

	return browser
}

// GetSite returns the site section from global config.
// Returns nil if config is not initialized.
func GetSite() *SiteSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDSite)
	if !ok {
		return nil
	}

	site, ok := section.(*SiteSection)
	if !ok {
		return nil
	}

	return site
}

// GetReport returns the report section from global config.
// Returns nil if config is not initialized.
func GetReport() *ReportSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDReport)
	if !ok {
		return nil
	}

	report, ok := section.(*ReportSection)
	if !ok {
		return nil
	}

	return report
}

// resetGlobal clears the global manager. Test helper.
func resetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = nil
}
