package config

import (
	"fmt"
	"path/filepath"
	"sync"
)

const (
	// SectionIDReport is the identifier for the report section
	SectionIDReport = "report"
)

// ReportSection holds output settings for run results and artifacts.
type ReportSection struct {
	outputDir   string
	resultsFile string
	metadata    map[string]string
	mu          sync.RWMutex
}

// NewReportSection creates a report section with default settings.
func NewReportSection() *ReportSection {
	return &ReportSection{
		outputDir:   "reports",
		resultsFile: "cucumber.json",
		metadata:    map[string]string{},
	}
}

// ID returns the section identifier.
func (s *ReportSection) ID() string {
	return SectionIDReport
}

// Title returns the section title.
func (s *ReportSection) Title() string {
	return "Report Output"
}

// Description returns the section description.
func (s *ReportSection) Description() string {
	return "Configure where run results, screenshots, and rendered reports are written."
}

// Data returns the current configuration data.
func (s *ReportSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta := make(map[string]interface{}, len(s.metadata))
	for k, v := range s.metadata {
		meta[k] = v
	}
	return map[string]interface{}{
		"output_dir":   s.outputDir,
		"results_file": s.resultsFile,
		"metadata":     meta,
	}
}

// SetData updates the configuration from the provided data.
func (s *ReportSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range data {
		switch key {
		case "output_dir":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value for 'output_dir': expected string, got %T", value)
			}
			s.outputDir = v
		case "results_file":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value for 'results_file': expected string, got %T", value)
			}
			s.resultsFile = v
		case "metadata":
			v, ok := value.(map[string]interface{})
			if !ok {
				return fmt.Errorf("invalid value for 'metadata': expected map, got %T", value)
			}
			for mk, mv := range v {
				str, ok := mv.(string)
				if !ok {
					return fmt.Errorf("invalid metadata value for %q: expected string, got %T", mk, mv)
				}
				s.metadata[mk] = str
			}
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *ReportSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.outputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if s.resultsFile == "" {
		return fmt.Errorf("results_file must not be empty")
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *ReportSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputDir = "reports"
	s.resultsFile = "cucumber.json"
	s.metadata = map[string]string{}
}

// OutputDir returns the report output directory.
func (s *ReportSection) OutputDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputDir
}

// ResultsPath returns the full path of the machine-readable results file.
func (s *ReportSection) ResultsPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filepath.Join(s.outputDir, s.resultsFile)
}

// ScreenshotDir returns the directory failure screenshots are written to.
func (s *ReportSection) ScreenshotDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filepath.Join(s.outputDir, "screenshots")
}

// Metadata returns a copy of the report metadata fields.
func (s *ReportSection) Metadata() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}
