package chat

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestStoreAppendPreservesOrder(t *testing.T) {
	t.Parallel()

	s := NewStore()
	now := time.Now()
	var want []string
	for i := 0; i < 20; i++ {
		content := fmt.Sprintf("msg-%d", i)
		idx := s.Append(NewMessage(content, i%2 == 0, now))
		if idx != i {
			t.Fatalf("Append returned index %d, want %d", idx, i)
		}
		want = append(want, content)
	}

	got := s.Messages()
	if len(got) != len(want) {
		t.Fatalf("Messages len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i].Content != want[i] {
			t.Fatalf("Messages[%d].Content=%q want=%q", i, got[i].Content, want[i])
		}
	}
}

func TestAttachReactionAppendsLast(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(NewMessage("hello", true, time.Now()))

	for _, tag := range []string{"👍", "❤️", "👍"} {
		if err := s.AttachReaction(0, tag); err != nil {
			t.Fatalf("AttachReaction(%q): %v", tag, err)
		}
	}

	msg, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	want := []string{"👍", "❤️", "👍"}
	if len(msg.Reactions) != len(want) {
		t.Fatalf("Reactions=%v want=%v", msg.Reactions, want)
	}
	for i := range want {
		if msg.Reactions[i] != want[i] {
			t.Fatalf("Reactions[%d]=%q want=%q", i, msg.Reactions[i], want[i])
		}
	}
}

func TestAttachReactionInvalidIndex(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(NewMessage("only", false, time.Now()))

	for _, idx := range []int{-1, 1, 99} {
		err := s.AttachReaction(idx, "👍")
		if !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("AttachReaction(%d) err=%v, want ErrInvalidIndex", idx, err)
		}
	}
	if msg, _ := s.At(0); len(msg.Reactions) != 0 {
		t.Fatalf("store mutated by failed attach: %v", msg.Reactions)
	}
}

func TestMessagesReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(NewMessage("a", true, time.Now()))
	if err := s.AttachReaction(0, "👍"); err != nil {
		t.Fatalf("AttachReaction: %v", err)
	}

	snapshot := s.Messages()
	snapshot[0].Reactions = append(snapshot[0].Reactions, "😂")
	snapshot[0].Content = "mutated"

	msg, _ := s.At(0)
	if msg.Content != "a" || len(msg.Reactions) != 1 {
		t.Fatalf("snapshot mutation leaked into store: %+v", msg)
	}
}

func TestSeedScenario(t *testing.T) {
	t.Parallel()

	// A clean 14-message fixture, no pre-seeded reactions, so reaction
	// isolation can be asserted exactly.
	s := NewStore()
	now := time.Now()
	for i := 0; i < 14; i++ {
		s.Append(NewMessage(fmt.Sprintf("historical-%d", i), i%2 == 1, now.Add(time.Duration(i)*time.Minute)))
	}

	if err := s.AttachReaction(1, "👍"); err != nil {
		t.Fatalf("AttachReaction(1): %v", err)
	}
	if err := s.AttachReaction(3, "❤️"); err != nil {
		t.Fatalf("AttachReaction(3): %v", err)
	}

	for i, msg := range s.Messages() {
		switch i {
		case 1:
			if len(msg.Reactions) != 1 || msg.Reactions[0] != "👍" {
				t.Fatalf("message 1 reactions=%v want [👍]", msg.Reactions)
			}
		case 3:
			if len(msg.Reactions) != 1 || msg.Reactions[0] != "❤️" {
				t.Fatalf("message 3 reactions=%v want [❤️]", msg.Reactions)
			}
		default:
			if len(msg.Reactions) != 0 {
				t.Fatalf("message %d reactions=%v want empty", i, msg.Reactions)
			}
		}
	}
}

func TestSeedConversation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	msgs := Seed(now)
	if len(msgs) != 14 {
		t.Fatalf("Seed len=%d want 14", len(msgs))
	}
	seen := map[string]bool{}
	for i, m := range msgs {
		if m.ID == "" || seen[m.ID] {
			t.Fatalf("Seed[%d] id=%q not unique", i, m.ID)
		}
		seen[m.ID] = true
		if !m.SentAt.Before(now) {
			t.Fatalf("Seed[%d] SentAt=%v not before now", i, m.SentAt)
		}
		if i > 0 && msgs[i-1].SentAt.After(m.SentAt) {
			t.Fatalf("Seed[%d] out of chronological order", i)
		}
	}
}
