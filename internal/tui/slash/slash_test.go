package slash

import (
	"strings"
	"testing"
)

func TestMenuOpensOnSlash(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.Open() {
		t.Fatal("new state should be closed")
	}

	s.SyncInput("/")
	if !s.Open() {
		t.Fatal("menu should open on /")
	}
	if len(s.Matches()) != len(Commands) {
		t.Fatalf("bare slash should list all %d commands, got %d", len(Commands), len(s.Matches()))
	}

	s.SyncInput("plain text")
	if s.Open() {
		t.Fatal("menu should close on non-slash input")
	}
}

func TestMenuClosesOnArgumentsAndNewlines(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SyncInput("/react ")
	if s.Open() {
		t.Fatal("trailing space should close the menu")
	}
	s.SyncInput("/rea\nct")
	if s.Open() {
		t.Fatal("multiline input should close the menu")
	}
}

func TestFuzzyFilter(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SyncInput("/pa")
	if !s.Open() {
		t.Fatal("menu should stay open while filtering")
	}
	cmd, ok := s.Selected()
	if !ok {
		t.Fatal("no selection after filtering")
	}
	if cmd.Name != "/pause" {
		t.Fatalf("top match=%q want /pause", cmd.Name)
	}

	s.SyncInput("/zzzz")
	if _, ok := s.Selected(); ok {
		t.Fatal("no command should match /zzzz")
	}
}

func TestSelectionMoveClamped(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SyncInput("/")
	s.Move(-5)
	if s.SelectedIndex() != 0 {
		t.Fatalf("selected=%d want 0", s.SelectedIndex())
	}
	s.Move(1)
	if s.SelectedIndex() != 1 {
		t.Fatalf("selected=%d want 1", s.SelectedIndex())
	}
	s.Move(100)
	if s.SelectedIndex() != len(Commands)-1 {
		t.Fatalf("selected=%d want %d", s.SelectedIndex(), len(Commands)-1)
	}
}

func TestViewRendersCommands(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SyncInput("/")
	out := s.View(80)
	if !strings.Contains(out, "/help") || !strings.Contains(out, "/react") {
		t.Fatalf("view missing commands:\n%s", out)
	}

	s.Close()
	if s.View(80) != "" {
		t.Fatal("closed menu should render empty")
	}
}
