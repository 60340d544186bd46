package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hldk/underdown/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Pane content styles
	Markdown lipgloss.Style
	HTML     lipgloss.Style

	// Chrome styles
	Title         lipgloss.Style
	Border        lipgloss.Style
	FocusedBorder lipgloss.Style
	Help          lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Markdown:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		HTML:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Border:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		FocusedBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	markdownColor := parseANSIColor(config.GetColorMarkdown())
	htmlColor := parseANSIColor(config.GetColorHTML())
	borderColor := lipgloss.Color(config.GetColorBorder())
	titleColor := lipgloss.Color(config.GetColorTitle())

	s.Markdown = lipgloss.NewStyle().Foreground(markdownColor)
	s.HTML = lipgloss.NewStyle().Foreground(htmlColor)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.FocusedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(titleColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
