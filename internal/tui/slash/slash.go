// Package slash implements the "/" command menu: as soon as the composer's
// first character is a slash, the menu opens and fuzzy-filters the command
// list while the user types.
package slash

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Command is one entry in the menu.
type Command struct {
	Name        string
	Description string
}

// Commands is the fixed menu, in display order.
var Commands = []Command{
	{Name: "/help", Description: "show key bindings and commands"},
	{Name: "/status", Description: "show responder state and message count"},
	{Name: "/react", Description: "open the reaction picker for the selected message"},
	{Name: "/copy", Description: "copy the selected message to the clipboard"},
	{Name: "/pause", Description: "stop the periodic bot messages"},
	{Name: "/resume", Description: "restart the periodic bot messages"},
	{Name: "/quit", Description: "leave the chat"},
}

// Match pairs a command with its fuzzy-highlight positions.
type Match struct {
	Command    Command
	Highlights []int
}

// State tracks the open/filter/selection state of the menu.
type State struct {
	matches  []Match
	selected int
	open     bool
}

// NewState returns a closed menu.
func NewState() *State {
	return &State{}
}

// Open reports whether the menu is showing.
func (s *State) Open() bool {
	return s != nil && s.open
}

// SyncInput refilters against the composer text. The menu is open exactly
// while the text is a single line starting with "/" and without arguments
// yet (a trailing space closes it so argument typing is unobstructed).
func (s *State) SyncInput(value string) {
	if s == nil {
		return
	}
	token, ok := commandToken(value)
	if !ok {
		s.open = false
		s.matches = nil
		s.selected = 0
		return
	}
	s.open = true
	s.matches = filter(token)
	if s.selected >= len(s.matches) {
		s.selected = 0
	}
}

// Move shifts the selection by delta, clamped.
func (s *State) Move(delta int) {
	if s == nil || len(s.matches) == 0 {
		return
	}
	s.selected += delta
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= len(s.matches) {
		s.selected = len(s.matches) - 1
	}
}

// Selected returns the highlighted command, if any.
func (s *State) Selected() (Command, bool) {
	if s == nil || !s.open || s.selected < 0 || s.selected >= len(s.matches) {
		return Command{}, false
	}
	return s.matches[s.selected].Command, true
}

// Matches returns the current filtered list.
func (s *State) Matches() []Match {
	if s == nil {
		return nil
	}
	return s.matches
}

// SelectedIndex returns the highlight position within Matches.
func (s *State) SelectedIndex() int {
	if s == nil {
		return 0
	}
	return s.selected
}

// Close hides the menu.
func (s *State) Close() {
	if s == nil {
		return
	}
	s.open = false
	s.matches = nil
	s.selected = 0
}

func commandToken(value string) (string, bool) {
	if strings.Contains(value, "\n") {
		return "", false
	}
	if !strings.HasPrefix(value, "/") {
		return "", false
	}
	if strings.Contains(value, " ") {
		return "", false
	}
	return value, true
}

func filter(token string) []Match {
	if token == "/" {
		out := make([]Match, 0, len(Commands))
		for _, c := range Commands {
			out = append(out, Match{Command: c})
		}
		return out
	}
	names := make([]string, len(Commands))
	for i, c := range Commands {
		names[i] = c.Name
	}
	results := fuzzy.Find(token, names)
	out := make([]Match, 0, len(results))
	for _, r := range results {
		out = append(out, Match{Command: Commands[r.Index], Highlights: r.MatchedIndexes})
	}
	return out
}
