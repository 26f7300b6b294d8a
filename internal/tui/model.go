package tui

import (
	"fmt"
	"strings"
	"time"

	"banter-cli/internal/bot"
	"banter-cli/internal/chat"
	"banter-cli/internal/history"
	"banter-cli/internal/logger"
	"banter-cli/internal/tui/render"
	"banter-cli/internal/tui/slash"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Store       *chat.Store
	Responder   *bot.Responder
	History     *history.Store // nil disables persisted input recall
	UserName    string
	BotName     string
	BotDisabled bool
}

// botTickMsg is a periodic-trigger fire. Ticks carry the generation they
// were scheduled under; the responder rejects stale ones after a stop/start.
type botTickMsg struct {
	gen int
}

// echoReplyMsg is a one-shot echo-reply fire. Never cancelled: each user
// message gets its acknowledgement even if more were sent in between.
type echoReplyMsg struct{}

type Model struct {
	textarea  textarea.Model
	viewport  viewport.Model
	reactions list.Model
	spin      spinner.Model

	store     *chat.Store
	responder *bot.Responder
	histStore *history.Store
	prompts   inputHistory
	slash     *slash.State

	userName    string
	botName     string
	botDisabled bool

	selected      int // highlighted message index, -1 follows the newest
	picking       bool
	showHelp      bool
	pendingEchoes int
	botGen        int
	width         int
	height        int
	statusNote    string
	err           error
	log           *logger.LogEntry
}

func New(opts Options) *Model {
	ti := textarea.New()
	ti.Placeholder = "Say something…"
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.SetWidth(80)
	ti.SetHeight(1)
	ti.ShowLineNumbers = false
	ti.Focus()

	vp := viewport.New(80, 16)

	items := make([]list.Item, 0, len(chat.ReactionChoices))
	for _, r := range chat.ReactionChoices {
		items = append(items, reactionItem(r))
	}
	reactions := list.New(items, list.NewDefaultDelegate(), 36, 12)
	reactions.Title = "React with"
	reactions.SetShowStatusBar(false)
	reactions.SetFilteringEnabled(false)
	reactions.DisableQuitKeybindings()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	m := &Model{
		textarea:    ti,
		viewport:    vp,
		reactions:   reactions,
		spin:        spin,
		store:       opts.Store,
		responder:   opts.Responder,
		histStore:   opts.History,
		slash:       slash.NewState(),
		userName:    opts.UserName,
		botName:     opts.BotName,
		botDisabled: opts.BotDisabled,
		selected:    -1,
		width:       80,
		height:      24,
		log:         logger.Named("tui"),
	}
	if opts.History != nil {
		if texts, err := opts.History.LoadTexts(); err != nil {
			m.log.WithField("path", opts.History.Path).Warnf("load input history: %v", err)
		} else {
			m.prompts.Set(texts)
		}
	}
	m.refreshTranscript(true)
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, textarea.Blink}
	if cmd := m.armResponder(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// armResponder starts the periodic trigger and schedules its first tick.
func (m *Model) armResponder() tea.Cmd {
	if m.botDisabled || m.responder == nil {
		return nil
	}
	gen, err := m.responder.Start()
	if err != nil {
		m.err = err
		return nil
	}
	m.botGen = gen
	return m.scheduleBotTick()
}

func (m *Model) scheduleBotTick() tea.Cmd {
	gen := m.botGen
	return tea.Tick(m.responder.Interval(), func(time.Time) tea.Msg {
		return botTickMsg{gen: gen}
	})
}

func (m *Model) scheduleEcho() tea.Cmd {
	return tea.Tick(m.responder.EchoDelay(), func(time.Time) tea.Msg {
		return echoReplyMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case botTickMsg:
		// Stale generations die here; only the armed generation re-arms.
		if !m.responder.Accept(msg.gen) {
			return m, nil
		}
		m.store.Append(m.responder.ComposeRandom(time.Now()))
		m.log.WithField("len", m.store.Len()).Info("periodic message appended")
		m.refreshTranscript(true)
		return m, m.scheduleBotTick()
	case echoReplyMsg:
		if m.pendingEchoes > 0 {
			m.pendingEchoes--
		}
		m.store.Append(m.responder.ComposeEcho(time.Now()))
		m.log.WithField("len", m.store.Len()).Info("echo reply appended")
		m.refreshTranscript(true)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picking {
		return m.handlePickerKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.slash.Open() {
		switch msg.String() {
		case "up":
			m.slash.Move(-1)
			return m, nil
		case "down":
			m.slash.Move(1)
			return m, nil
		case "tab", "enter":
			if cmd, ok := m.slash.Selected(); ok {
				m.textarea.Reset()
				m.slash.Close()
				return m, m.runCommand(cmd.Name)
			}
			m.slash.Close()
			return m, nil
		case "esc":
			m.slash.Close()
			return m, nil
		}
	}

	if msg.Type == tea.KeyEnter && msg.Alt {
		// Alt+Enter inserts a newline via the textarea below.
		return m.updateComposer(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "enter":
		return m, m.submit()
	case "ctrl+r":
		m.openPicker()
		return m, nil
	case "ctrl+y":
		m.copySelected()
		return m, nil
	case "alt+up":
		m.moveSelection(-1)
		return m, nil
	case "alt+down":
		m.moveSelection(1)
		return m, nil
	case "esc":
		m.selected = -1
		m.refreshTranscript(true)
		return m, nil
	case "pgup":
		m.viewport.ViewUp()
		return m, nil
	case "pgdown":
		m.viewport.ViewDown()
		return m, nil
	case "home":
		m.viewport.GotoTop()
		return m, nil
	case "end":
		m.viewport.GotoBottom()
		return m, nil
	case "up":
		if m.textarea.Line() == 0 {
			if text, ok := m.prompts.Prev(m.textarea.Value()); ok {
				m.setComposerText(text)
				return m, nil
			}
		}
	case "down":
		if m.textarea.Line() >= m.textarea.LineCount()-1 && m.prompts.Browsing() {
			if text, ok := m.prompts.Next(); ok {
				m.setComposerText(text)
				return m, nil
			}
		}
	}

	return m.updateComposer(msg)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if item, ok := m.reactions.SelectedItem().(reactionItem); ok {
			index := m.effectiveSelected()
			if err := m.store.AttachReaction(index, item.Tag); err != nil {
				m.err = err
				m.log.Warnf("attach reaction: %v", err)
			} else {
				m.statusNote = fmt.Sprintf("reacted %s to message %d", item.Tag, index)
				m.log.WithField("index", index).WithField("tag", item.Tag).Info("reaction attached")
			}
		}
		m.picking = false
		m.refreshTranscript(false)
		return m, nil
	case "esc", "ctrl+c":
		m.picking = false
		return m, nil
	}
	var cmd tea.Cmd
	m.reactions, cmd = m.reactions.Update(msg)
	return m, cmd
}

func (m *Model) updateComposer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.setComposerHeight()
	m.slash.SyncInput(m.textarea.Value())
	return m, cmd
}

// submit handles the text-submission action: empty input is a validation
// no-op, anything else is appended as a user message and schedules the echo
// reply.
func (m *Model) submit() tea.Cmd {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return nil
	}
	if strings.HasPrefix(input, "/") {
		name := strings.Fields(input)[0]
		m.textarea.Reset()
		m.setComposerHeight()
		m.slash.Close()
		return m.runCommand(name)
	}

	m.textarea.Reset()
	m.setComposerHeight()
	m.prompts.Add(input)
	if m.histStore != nil {
		if err := m.histStore.Append(input); err != nil {
			m.log.Warnf("persist input history: %v", err)
		}
	}

	m.store.Append(chat.NewMessage(input, true, time.Now()))
	m.log.WithField("len", m.store.Len()).Info("user message appended")
	m.statusNote = ""
	m.err = nil
	m.refreshTranscript(true)

	if m.botDisabled || m.responder == nil {
		return nil
	}
	m.pendingEchoes++
	return m.scheduleEcho()
}

func (m *Model) runCommand(name string) tea.Cmd {
	switch name {
	case "/quit":
		return m.quit()
	case "/help":
		m.showHelp = true
	case "/status":
		state := "stopped"
		if m.responder != nil && m.responder.Armed() {
			state = "armed"
		}
		m.statusNote = fmt.Sprintf("messages=%d responder=%s selected=%d", m.store.Len(), state, m.effectiveSelected())
	case "/react":
		m.openPicker()
	case "/copy":
		m.copySelected()
	case "/pause":
		if err := m.responder.Stop(); err != nil {
			m.statusNote = "bot is already paused"
		} else {
			m.statusNote = "bot paused"
		}
	case "/resume":
		if cmd := m.armResponder(); cmd != nil {
			m.statusNote = "bot resumed"
			return cmd
		}
		m.statusNote = "bot is already running"
		m.err = nil
	default:
		m.statusNote = fmt.Sprintf("unknown command %s", name)
	}
	return nil
}

// quit is the "became inactive" transition: stop the periodic trigger, then
// leave. Pending echo replies simply die with the program.
func (m *Model) quit() tea.Cmd {
	if m.responder != nil && m.responder.Armed() {
		if err := m.responder.Stop(); err != nil {
			m.log.Warnf("stop responder: %v", err)
		}
	}
	return tea.Quit
}

func (m *Model) openPicker() {
	if m.store.Len() == 0 {
		m.statusNote = "nothing to react to"
		return
	}
	m.selected = m.effectiveSelected()
	m.picking = true
	m.reactions.Select(0)
	m.refreshTranscript(false)
}

func (m *Model) copySelected() {
	msg, err := m.store.At(m.effectiveSelected())
	if err != nil {
		m.err = err
		return
	}
	if err := clipboard.WriteAll(msg.Content); err != nil {
		m.statusNote = fmt.Sprintf("clipboard unavailable: %v", err)
		return
	}
	m.statusNote = fmt.Sprintf("copied message %d", m.effectiveSelected())
}

// effectiveSelected resolves -1 to the newest message.
func (m *Model) effectiveSelected() int {
	if m.selected >= 0 && m.selected < m.store.Len() {
		return m.selected
	}
	return m.store.Len() - 1
}

func (m *Model) moveSelection(delta int) {
	if m.store.Len() == 0 {
		return
	}
	cur := m.effectiveSelected() + delta
	if cur < 0 {
		cur = 0
	}
	if cur >= m.store.Len()-1 {
		m.selected = -1 // back to following the newest
	} else {
		m.selected = cur
	}
	m.refreshTranscript(false)
}

// refreshTranscript re-renders the viewport. jump forces scroll-to-bottom,
// used whenever the sequence length changed.
func (m *Model) refreshTranscript(jump bool) {
	m.viewport.SetContent(render.Transcript(m.store.Messages(), render.TranscriptOptions{
		Width:    m.viewport.Width,
		Selected: m.selected,
		UserName: m.userName,
		BotName:  m.botName,
	}))
	if jump || m.selected == -1 {
		m.viewport.GotoBottom()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	bannerHeight := 3
	typingHeight := 1
	composerHeight := m.textarea.Height() + 2
	statusHeight := 1
	hintsHeight := 1
	vpHeight := height - bannerHeight - typingHeight - composerHeight - statusHeight - hintsHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.textarea.SetWidth(width - 2)
	m.refreshTranscript(true)
}

func (m *Model) setComposerHeight() {
	lines := strings.Count(m.textarea.Value(), "\n") + 1
	if lines > 6 {
		lines = 6
	}
	if m.textarea.Height() != lines {
		m.textarea.SetHeight(lines)
		m.resize(m.width, m.height)
	}
}

func (m *Model) setComposerText(text string) {
	m.textarea.SetValue(text)
	m.setComposerHeight()
	m.slash.SyncInput(text)
}

type reactionItem chat.Reaction

func (i reactionItem) FilterValue() string { return i.Name }
func (i reactionItem) Title() string       { return i.Tag + "  " + i.Name }
func (i reactionItem) Description() string { return "" }
