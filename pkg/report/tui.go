package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scenarioItem adapts a ScenarioResult to the list component.
type scenarioItem struct {
	result ScenarioResult
}

func (i scenarioItem) Title() string {
	badge := passStyle.Render("PASS")
	if !i.result.Passed {
		badge = failStyle.Render("FAIL")
	}
	return fmt.Sprintf("%s %s", badge, i.result.Name)
}

func (i scenarioItem) Description() string {
	return fmt.Sprintf("%s · %s", i.result.Feature, i.result.Duration.Round(time.Millisecond).String())
}

func (i scenarioItem) FilterValue() string {
	return i.result.Feature + " " + i.result.Name
}

// viewerModel is the interactive results browser: a scenario list with a
// step-detail pane for the selection.
type viewerModel struct {
	list       list.Model
	detail     viewport.Model
	showDetail bool
	ready      bool
	width      int
	height     int
}

func newViewerModel(summary Summary) viewerModel {
	items := make([]list.Item, 0, len(summary.Results))
	for _, result := range summary.Results {
		items = append(items, scenarioItem{result: result})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("sitecheck results: %d passed, %d failed", summary.Passed, summary.Failed)
	l.SetShowStatusBar(false)

	return viewerModel{list: l}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.detail = viewport.New(msg.Width, msg.Height-2)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if !m.showDetail {
				if item, ok := m.list.SelectedItem().(scenarioItem); ok {
					m.detail.SetContent(renderScenarioDetail(item.result))
					m.showDetail = true
				}
				return m, nil
			}
		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.showDetail {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return "loading results..."
	}
	if m.showDetail {
		hint := dimStyle.Render("esc: back · q: quit")
		return lipgloss.JoinVertical(lipgloss.Left, m.detail.View(), hint)
	}
	return m.list.View()
}

// renderScenarioDetail renders the step-by-step outcome of one scenario.
func renderScenarioDetail(result ScenarioResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(result.Feature+" › "+result.Name) + "\n")
	if len(result.Tags) > 0 {
		b.WriteString(dimStyle.Render(strings.Join(result.Tags, " ")) + "\n")
	}
	b.WriteString("\n")

	for _, step := range result.Steps {
		var badge string
		switch step.Result.Status {
		case StatusPassed:
			badge = passStyle.Render("✓")
		case StatusFailed:
			badge = failStyle.Render("✗")
		default:
			badge = dimStyle.Render("-")
		}
		b.WriteString(fmt.Sprintf("  %s %s%s\n", badge, step.Keyword, step.Name))
	}

	if result.Error != "" {
		b.WriteString("\n" + errorBoxStyle.Render(strings.TrimSpace(result.Error)) + "\n")
	}
	if result.Screenshots > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n%d screenshot attached\n", result.Screenshots)))
	}

	return b.String()
}

// RunViewer opens the interactive results browser for a run summary.
func RunViewer(summary Summary) error {
	program := tea.NewProgram(newViewerModel(summary), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("results viewer failed: %w", err)
	}
	return nil
}
