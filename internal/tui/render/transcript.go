package render

import (
	"strings"

	"banter-cli/internal/chat"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	userBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	botBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472")).
			Padding(0, 1)
	selectedBubbleStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FFB454")).
				Padding(0, 1)
	metaStyle      = lipgloss.NewStyle().Faint(true)
	reactionsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454"))
)

// TranscriptOptions controls bubble layout.
type TranscriptOptions struct {
	Width    int
	Selected int // index of the highlighted message, -1 for none
	UserName string
	BotName  string
}

// Transcript renders the message sequence as chat bubbles: user messages
// right-aligned, bot messages left-aligned, reaction tags on a line under
// the bubble. The output goes straight into the transcript viewport.
func Transcript(msgs []chat.Message, opts TranscriptOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	blocks := make([]string, 0, len(msgs))
	for i, msg := range msgs {
		blocks = append(blocks, renderBubble(msg, i == opts.Selected, width, opts))
	}
	return strings.Join(blocks, "\n")
}

func renderBubble(msg chat.Message, selected bool, width int, opts TranscriptOptions) string {
	// Bubbles take at most two thirds of the pane so the sender side always
	// reads from the alignment.
	maxBody := width*2/3 - 4
	if maxBody < 10 {
		maxBody = width - 4
	}
	if maxBody < 1 {
		maxBody = 1
	}

	lines := WrapText(msg.Content, maxBody)
	body := strings.Join(lines, "\n")

	style := lo.Ternary(msg.FromUser, userBubbleStyle, botBubbleStyle)
	if selected {
		style = selectedBubbleStyle
	}
	bubble := style.Width(MaxLineWidth(lines) + 2).Render(body)

	meta := metaStyle.Render(senderName(msg, opts) + " · " + msg.SentAt.Format("15:04"))
	parts := []string{meta, bubble}
	if len(msg.Reactions) > 0 {
		parts = append(parts, reactionsStyle.Render(strings.Join(msg.Reactions, " ")))
	}
	block := lipgloss.JoinVertical(lo.Ternary(msg.FromUser, lipgloss.Right, lipgloss.Left), parts...)

	align := lo.Ternary(msg.FromUser, lipgloss.Right, lipgloss.Left)
	return lipgloss.PlaceHorizontal(width, align, block)
}

func senderName(msg chat.Message, opts TranscriptOptions) string {
	if msg.FromUser {
		if opts.UserName != "" {
			return opts.UserName
		}
		return "You"
	}
	if opts.BotName != "" {
		return opts.BotName
	}
	return "Bot"
}
