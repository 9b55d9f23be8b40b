// Package inspect reports on header selector drift. The header can be
// located two ways: through the banner landmark and through a navbar CSS
// class. The suite itself standardizes on the landmark; this package
// compares both scopes against the live DOM so a selector that silently
// stopped matching shows up as a diff instead of a puzzling scenario
// failure.
package inspect

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/entrhq/sitecheck/pkg/browser"
)

// Link is one anchor found in a header scope.
type Link struct {
	Text string
	Href string
}

// Report compares the links found under each header selection strategy.
type Report struct {
	// LandmarkLinks were found under the banner landmark (<header> or
	// role="banner")
	LandmarkLinks []Link

	// ClassLinks were found under a "navbar" class scope
	ClassLinks []Link

	// OnlyInLandmark and OnlyInClass hold the disagreements
	OnlyInLandmark []Link
	OnlyInClass    []Link
}

// InAgreement reports whether both strategies found the same links.
func (r *Report) InAgreement() bool {
	return len(r.OnlyInLandmark) == 0 && len(r.OnlyInClass) == 0
}

// String renders the report for terminal output.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "banner landmark: %d links\n", len(r.LandmarkLinks))
	for _, link := range r.LandmarkLinks {
		fmt.Fprintf(&b, "  %-30s %s\n", link.Text, link.Href)
	}
	fmt.Fprintf(&b, "navbar class scope: %d links\n", len(r.ClassLinks))

	if r.InAgreement() {
		b.WriteString("both strategies agree\n")
		return b.String()
	}

	for _, link := range r.OnlyInLandmark {
		fmt.Fprintf(&b, "  only in landmark: %-30s %s\n", link.Text, link.Href)
	}
	for _, link := range r.OnlyInClass {
		fmt.Fprintf(&b, "  only in class scope: %-30s %s\n", link.Text, link.Href)
	}
	return b.String()
}

// Analyze parses rendered page HTML and compares the two header scopes.
func Analyze(rawHTML string) (*Report, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	report := &Report{}

	if landmark := findNode(doc, isBannerLandmark); landmark != nil {
		report.LandmarkLinks = collectLinks(landmark)
	}
	if classScope := findNode(doc, hasNavbarClass); classScope != nil {
		report.ClassLinks = collectLinks(classScope)
	}

	report.OnlyInLandmark = difference(report.LandmarkLinks, report.ClassLinks)
	report.OnlyInClass = difference(report.ClassLinks, report.LandmarkLinks)
	return report, nil
}

// FromSession grabs the session's rendered HTML and analyzes it.
func FromSession(session *browser.Session) (*Report, error) {
	content, err := session.Page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}
	return Analyze(content)
}

// isBannerLandmark matches a <header> element or any element with
// role="banner".
func isBannerLandmark(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if strings.EqualFold(n.Data, "header") {
		return true
	}
	return attrValue(n, "role") == "banner"
}

// hasNavbarClass matches the first element whose class list contains a
// token starting with "navbar".
func hasNavbarClass(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, class := range strings.Fields(attrValue(n, "class")) {
		if strings.HasPrefix(class, "navbar") {
			return true
		}
	}
	return false
}

// findNode walks the tree depth-first and returns the first matching node.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, match); found != nil {
			return found
		}
	}
	return nil
}

// collectLinks gathers every anchor with an href under the given subtree.
func collectLinks(root *html.Node) []Link {
	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			href := attrValue(n, "href")
			if href != "" {
				links = append(links, Link{
					Text: normalizeText(n),
					Href: href,
				})
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return links
}

// normalizeText extracts an element's text content with collapsed whitespace.
func normalizeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// attrValue returns the value of the named attribute, or empty.
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val
		}
	}
	return ""
}

// difference returns the links in a that are absent from b.
func difference(a, b []Link) []Link {
	seen := make(map[Link]bool, len(b))
	for _, link := range b {
		seen[link] = true
	}
	var out []Link
	for _, link := range a {
		if !seen[link] {
			out = append(out, link)
		}
	}
	return out
}
