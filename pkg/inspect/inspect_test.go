package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agreeingHTML = `
<html><body>
  <header class="navbar">
    <a href="/"><img src="/globalassets/images/5_logos/kainos_logo.png" alt="Kainos"></a>
    <nav>
      <a href="/workday">Workday</a>
      <a href="/careers">Careers</a>
    </nav>
  </header>
</body></html>`

const driftingHTML = `
<html><body>
  <header>
    <a href="/workday">Workday</a>
    <a href="/careers">Careers</a>
  </header>
  <div class="navbar-legacy">
    <a href="/workday">Workday</a>
    <a href="/about-us">About Us</a>
  </div>
</body></html>`

const roleBannerHTML = `
<html><body>
  <div role="banner">
    <a href="/insights">Insights</a>
  </div>
</body></html>`

func TestAnalyze_Agreement(t *testing.T) {
	report, err := Analyze(agreeingHTML)
	require.NoError(t, err)

	assert.True(t, report.InAgreement())
	require.Len(t, report.LandmarkLinks, 3)
	assert.Equal(t, Link{Text: "Workday", Href: "/workday"}, report.LandmarkLinks[1])
	assert.Equal(t, report.LandmarkLinks, report.ClassLinks)
}

func TestAnalyze_Drift(t *testing.T) {
	report, err := Analyze(driftingHTML)
	require.NoError(t, err)

	assert.False(t, report.InAgreement())

	require.Len(t, report.OnlyInLandmark, 1)
	assert.Equal(t, "Careers", report.OnlyInLandmark[0].Text)

	require.Len(t, report.OnlyInClass, 1)
	assert.Equal(t, "About Us", report.OnlyInClass[0].Text)
}

func TestAnalyze_RoleBannerCountsAsLandmark(t *testing.T) {
	report, err := Analyze(roleBannerHTML)
	require.NoError(t, err)

	require.Len(t, report.LandmarkLinks, 1)
	assert.Equal(t, Link{Text: "Insights", Href: "/insights"}, report.LandmarkLinks[0])
	assert.Empty(t, report.ClassLinks)
}

func TestAnalyze_NoHeaderAtAll(t *testing.T) {
	report, err := Analyze("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)

	assert.Empty(t, report.LandmarkLinks)
	assert.Empty(t, report.ClassLinks)
	assert.True(t, report.InAgreement())
}

func TestNormalizeTextCollapsesWhitespace(t *testing.T) {
	report, err := Analyze(`<header><a href="/x"><span>Digital</span>
		<span>Services</span></a></header>`)
	require.NoError(t, err)

	require.Len(t, report.LandmarkLinks, 1)
	assert.Equal(t, "Digital Services", report.LandmarkLinks[0].Text)
}

func TestReportString(t *testing.T) {
	report, err := Analyze(driftingHTML)
	require.NoError(t, err)

	out := report.String()
	assert.Contains(t, out, "only in landmark")
	assert.Contains(t, out, "only in class scope")

	agreed, err := Analyze(agreeingHTML)
	require.NoError(t, err)
	assert.Contains(t, agreed.String(), "both strategies agree")
}
