package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run wraps the Bubble Tea entry point. When the program returns, the
// responder is guaranteed stopped (the "became inactive" transition), even
// if the UI exited through an error path.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := program.Run()
	if opts.Responder != nil && opts.Responder.Armed() {
		if stopErr := opts.Responder.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	if err != nil {
		return err
	}
	if _, ok := final.(*Model); !ok {
		return errors.New("unexpected tui model")
	}
	return nil
}
