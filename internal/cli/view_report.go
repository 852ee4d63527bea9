package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focustally/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Title and status bar each take a text line plus a separator line.
const pagerChromeHeight = 4

// reportPager is a full-screen scrollable view over a report rendered from
// markdown. The markdown is re-rendered whenever the width changes.
type reportPager struct {
	title    string
	markdown string
	vp       viewport.Model
	width    int
	ready    bool
}

func newReportPager(title, markdown string) reportPager {
	return reportPager{title: title, markdown: markdown}
}

// renderMarkdown renders md for the given terminal width. The raw markdown
// is returned if rendering fails.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// pagerKeyMap keeps vim-style keys alongside arrows and paging keys.
func pagerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (m reportPager) Init() tea.Cmd { return nil }

func (m reportPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-pagerChromeHeight, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.KeyMap = pagerKeyMap()
			m.vp.MouseWheelEnabled = true
			m.vp.MouseWheelDelta = 3
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		m.vp.SetContent(renderMarkdown(m.markdown, msg.Width))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m reportPager) View() string {
	if !m.ready {
		return "Loading..."
	}

	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(m.width, 20)))
	title := formatter.StyleHeader.Render(m.title) + "  " +
		formatter.Dim(fmt.Sprintf("%d lines", m.vp.TotalLineCount()))

	hints := strings.Join([]string{
		scrollIndicator(m.vp),
		formatter.Dim("↑↓ j/k: scroll"),
		formatter.Dim("g/G: top/end"),
		formatter.Dim("q: quit"),
	}, "  ")

	return title + "\n" + sep + "\n" + m.vp.View() + "\n" + sep + "\n" + hints
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

func browseReport(title, markdown string) error {
	_, err := tea.NewProgram(newReportPager(title, markdown), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
