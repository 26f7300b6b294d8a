package slash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFB454")).
			Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	descStyle     = lipgloss.NewStyle().Faint(true)
)

// View renders the menu box. Empty when closed or nothing matches.
func (s *State) View(width int) string {
	if !s.Open() || len(s.matches) == 0 {
		return ""
	}
	inner := width - 4
	if inner < 16 {
		inner = 16
	}
	lines := make([]string, 0, len(s.matches))
	for i, m := range s.matches {
		name := m.Command.Name
		if i == s.selected {
			name = selectedStyle.Render("› " + name)
		} else {
			name = "  " + name
		}
		desc := truncate(m.Command.Description, inner-runewidth.StringWidth(m.Command.Name)-4)
		lines = append(lines, name+"  "+descStyle.Render(desc))
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
