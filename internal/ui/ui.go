package ui

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hldk/underdown/internal/config"
	"github.com/hldk/underdown/internal/markdown"
)

// previewModel is the live preview TUI: markdown in the editor pane,
// converted HTML in the preview pane, re-parsed on every edit.
type previewModel struct {
	editor  textarea.Model
	preview viewport.Model
	parser  *markdown.Parser
	editing bool // editor pane focused
	width   int
	height  int
	ready   bool
}

func newPreviewModel(initial string) previewModel {
	ta := textarea.New()
	ta.Placeholder = "Type markdown here..."
	ta.SetValue(initial)
	ta.Focus()

	p := markdown.NewParser()
	p.SetDiagnostics(io.Discard) // stderr writes would tear the TUI

	return previewModel{
		editor:  ta,
		parser:  p,
		editing: true,
	}
}

func (m previewModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.editing = !m.editing
			if m.editing {
				return m, m.editor.Focus()
			}
			m.editor.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.editing {
		m.editor, cmd = m.editor.Update(msg)
		m.refreshPreview()
	} else {
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// layout sizes both panes from the current window dimensions
func (m *previewModel) layout() {
	leftWidth, rightWidth := paneWidths(m.width, config.GetPreviewGap())

	paneHeight := m.height - 4 // title row, pane borders, help line
	if paneHeight < 1 {
		paneHeight = 1
	}

	m.editor.SetWidth(leftWidth)
	m.editor.SetHeight(paneHeight)
	m.preview = viewport.New(rightWidth, paneHeight)
}

// refreshPreview re-parses the editor content into the preview pane
func (m *previewModel) refreshPreview() {
	html := m.parser.Parse(m.editor.Value())
	m.preview.SetContent(styles.HTML.Render(formatHTML(html)))
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	editorPane := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Markdown"),
		m.paneStyle(m.editing).Render(m.editor.View()))
	previewPane := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("HTML"),
		m.paneStyle(!m.editing).Render(m.preview.View()))

	gap := strings.Repeat(" ", config.GetPreviewGap())
	help := styles.Help.Render("tab: switch pane • esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, editorPane, gap, previewPane),
		help)
}

func (m previewModel) paneStyle(focused bool) lipgloss.Style {
	if focused {
		return styles.FocusedBorder
	}
	return styles.Border
}

var blockEndRe = regexp.MustCompile(`</(?:p|ul|h\d+)>`)

// formatHTML breaks the parser's single-line output into one top-level
// block per line so the preview pane stays readable. List items stay on
// their list's line.
func formatHTML(html string) string {
	return strings.TrimRight(blockEndRe.ReplaceAllString(html, "$0\n"), "\n")
}

// paneWidths splits the window into two equal panes, accounting for the
// gap between them and one cell of border on each pane side
func paneWidths(total, gap int) (int, int) {
	usable := total - gap - 4
	if usable < 2 {
		usable = 2
	}
	left := usable / 2
	return left, usable - left
}

// Run launches the live preview TUI seeded with initial markdown
func Run(initial string) error {
	RefreshStyles()

	p := tea.NewProgram(newPreviewModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
