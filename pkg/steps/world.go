package steps

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/entrhq/sitecheck/pkg/browser"
)

// World carries the per-scenario state shared by all step routines: the
// browser session and the target-site settings. Step routines are stateless
// apart from it.
type World struct {
	// Session is the scenario's browsing context and page, owned by the
	// suite lifecycle hooks
	Session *browser.Session

	// BaseURL is the root of the site under verification
	BaseURL string

	// CookieConsentSelector matches the consent button that may appear on
	// first visit
	CookieConsentSelector string
}

// NewWorld creates a World for one scenario.
func NewWorld(session *browser.Session, baseURL, cookieConsentSelector string) *World {
	return &World{
		Session:               session,
		BaseURL:               strings.TrimRight(baseURL, "/"),
		CookieConsentSelector: cookieConsentSelector,
	}
}

// Resolve joins a site-relative path onto the base URL. Absolute URLs pass
// through untouched.
func (w *World) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return w.BaseURL + path
}

// NavItem is one expectation row from a scenario table: a rendered link
// label and its destination path.
type NavItem struct {
	Label string
	Path  string
}

// navItemsFromTable converts a two-column scenario table into expectation
// rows. The first row must be the "label | path" header.
func navItemsFromTable(table *godog.Table) ([]NavItem, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, fmt.Errorf("expected a table of navigation items")
	}

	header := table.Rows[0]
	if len(header.Cells) != 2 || header.Cells[0].Value != "label" || header.Cells[1].Value != "path" {
		return nil, fmt.Errorf("expected table header 'label | path', got %v", headerValues(table))
	}

	items := make([]NavItem, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return nil, fmt.Errorf("expected 2 cells per row, got %d", len(row.Cells))
		}
		items = append(items, NavItem{
			Label: row.Cells[0].Value,
			Path:  row.Cells[1].Value,
		})
	}
	return items, nil
}

// labelsFromTable converts a single-column scenario table into a list of
// link labels. The first row must be the "label" header.
func labelsFromTable(table *godog.Table) ([]string, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, fmt.Errorf("expected a table of labels")
	}

	header := table.Rows[0]
	if len(header.Cells) != 1 || header.Cells[0].Value != "label" {
		return nil, fmt.Errorf("expected table header 'label', got %v", headerValues(table))
	}

	labels := make([]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 1 {
			return nil, fmt.Errorf("expected 1 cell per row, got %d", len(row.Cells))
		}
		labels = append(labels, row.Cells[0].Value)
	}
	return labels, nil
}

func headerValues(table *godog.Table) []string {
	values := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		values[i] = cell.Value
	}
	return values
}
