package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	composerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7A85")).
			Padding(0, 1)
	typingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("#FFB454"))
)

func (m *Model) View() string {
	banner := bannerStyle.Width(maxInt(20, m.width-2)).
		Render(fmt.Sprintf(">_ banter — chatting with %s", m.displayBotName()))

	typing := ""
	if m.pendingEchoes > 0 {
		typing = typingStyle.Render(m.spin.View() + m.displayBotName() + " is typing…")
	}

	composer := composerStyle.Width(maxInt(20, m.width-2)).Render(m.textarea.View())
	content := lipgloss.JoinVertical(lipgloss.Left,
		banner,
		m.viewport.View(),
		typing,
		composer,
		m.statusLine(),
		m.hintsLine(),
	)

	if m.picking {
		return lipgloss.JoinVertical(lipgloss.Left, content, modalStyle.Render(m.reactions.View()))
	}
	if menu := m.slash.View(m.width); menu != "" {
		return lipgloss.JoinVertical(lipgloss.Left, content, menu)
	}
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, content, modalStyle.Render(helpText))
	}
	return content
}

const helpText = "Enter send • Alt+Enter newline • Ctrl+R react • Ctrl+Y copy\n" +
	"Alt+↑/↓ select message • ↑/↓ input history • PgUp/PgDn scroll\n" +
	"/pause /resume bot • Ctrl+C quit"

func (m *Model) statusLine() string {
	state := "stopped"
	if m.responder != nil && m.responder.Armed() {
		state = "armed"
	}
	parts := []string{
		fmt.Sprintf("messages: %d", m.store.Len()),
		fmt.Sprintf("bot: %s", state),
	}
	if m.selected >= 0 {
		parts = append(parts, fmt.Sprintf("selected: %d", m.selected))
	}
	if m.statusNote != "" {
		parts = append(parts, m.statusNote)
	}
	if m.err != nil {
		parts = append(parts, fmt.Sprintf("error: %v", m.err))
	}
	return statusStyle.Width(maxInt(20, m.width)).Render(strings.Join(parts, " • "))
}

func (m *Model) hintsLine() string {
	return statusStyle.Width(maxInt(20, m.width)).
		Render("Enter send • Ctrl+R react • / commands • ? via /help • Ctrl+C quit")
}

func (m *Model) displayBotName() string {
	if m.botName != "" {
		return m.botName
	}
	return "Bot"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
