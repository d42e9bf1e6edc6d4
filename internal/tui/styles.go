package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-comp/internal/view"
)

var (
	normalStyle      = lipgloss.NewStyle()
	highlightedStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	playingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00af00")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d7af00"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	rowStyles = map[view.Style]lipgloss.Style{
		view.StyleNormal:              normalStyle,
		view.StyleHighlighted:         highlightedStyle,
		view.StyleError:               errorStyle,
		view.StyleErrorHighlighted:    errorStyle.Reverse(true),
		view.StylePlaying:             playingStyle,
		view.StylePlayingHighlighted:  playingStyle.Reverse(true),
		view.StyleSelected:            selectedStyle,
		view.StyleSelectedHighlighted: selectedStyle.Reverse(true),
		view.StyleHeader:              headerStyle,
		view.StyleFooter:              footerStyle,
	}
)

// paint оформляет строку экрана по ее классу
func paint(style view.Style, line string) string {
	s, ok := rowStyles[style]
	if !ok {
		return line
	}
	return s.Render(line)
}
