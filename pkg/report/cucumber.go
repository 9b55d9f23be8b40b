// Package report consumes the cucumber JSON results the scenario runner
// writes and turns them into human-facing artifacts: a styled terminal
// summary, an interactive results viewer, and a PDF digest of failure
// screenshots. It renders nothing during a run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Feature mirrors one entry of the cucumber JSON results array.
type Feature struct {
	URI      string    `json:"uri"`
	Keyword  string    `json:"keyword"`
	Name     string    `json:"name"`
	Elements []Element `json:"elements"`
}

// Element is a scenario (or background) within a feature.
type Element struct {
	Keyword string `json:"keyword"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Line    int    `json:"line"`
	Tags    []Tag  `json:"tags"`
	Steps   []Step `json:"steps"`
}

// Tag is a scenario tag like @smoke.
type Tag struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Step is one executed step with its outcome.
type Step struct {
	Keyword    string      `json:"keyword"`
	Name       string      `json:"name"`
	Line       int         `json:"line"`
	Result     Result      `json:"result"`
	Embeddings []Embedding `json:"embeddings,omitempty"`
}

// Result carries the step outcome. Duration is in nanoseconds.
type Result struct {
	Status       string `json:"status"`
	Duration     int64  `json:"duration,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Embedding is an attachment recorded against a step, e.g. a failure
// screenshot.
type Embedding struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
	Name     string `json:"name,omitempty"`
}

// Step statuses produced by the runner.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Load reads and parses a cucumber JSON results file.
func Load(path string) ([]Feature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var features []Feature
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return features, nil
}

// ScenarioResult is the digested outcome of one scenario.
type ScenarioResult struct {
	Feature     string
	Name        string
	Tags        []string
	Passed      bool
	Duration    time.Duration
	FailedStep  string
	Error       string
	Screenshots int
	Steps       []Step
}

// Summary aggregates a whole run.
type Summary struct {
	Features  int
	Scenarios int
	Passed    int
	Failed    int
	Duration  time.Duration
	Results   []ScenarioResult
}

// Summarize digests parsed features into per-scenario results and totals.
// Background elements fold into nothing on their own; their steps already
// repeat inside each scenario in godog's output.
func Summarize(features []Feature) Summary {
	var summary Summary
	summary.Features = len(features)

	for _, feature := range features {
		for _, element := range feature.Elements {
			if element.Type != "scenario" {
				continue
			}

			result := ScenarioResult{
				Feature: feature.Name,
				Name:    element.Name,
				Passed:  true,
				Steps:   element.Steps,
			}
			for _, tag := range element.Tags {
				result.Tags = append(result.Tags, tag.Name)
			}

			for _, step := range element.Steps {
				result.Duration += time.Duration(step.Result.Duration)
				result.Screenshots += countScreenshots(step.Embeddings)

				if step.Result.Status == StatusFailed {
					result.Passed = false
					result.FailedStep = strings.TrimSpace(step.Keyword) + " " + step.Name
					result.Error = step.Result.ErrorMessage
				}
			}

			summary.Scenarios++
			summary.Duration += result.Duration
			if result.Passed {
				summary.Passed++
			} else {
				summary.Failed++
			}
			summary.Results = append(summary.Results, result)
		}
	}

	return summary
}

func countScreenshots(embeddings []Embedding) int {
	n := 0
	for _, e := range embeddings {
		if e.MimeType == "image/png" {
			n++
		}
	}
	return n
}

// FailedResults returns only the failing scenarios.
func (s Summary) FailedResults() []ScenarioResult {
	var failed []ScenarioResult
	for _, r := range s.Results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
