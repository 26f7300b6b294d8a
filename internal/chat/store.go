package chat

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrInvalidIndex reports a reaction attach against a position that does not
// exist in the store.
var ErrInvalidIndex = errors.New("chat: invalid message index")

// Store is the append-only ordered message sequence. It is the sole piece of
// mutable conversation state; all mutation happens on the UI event loop, so no
// locking is needed. Messages are never removed or reordered.
type Store struct {
	messages []Message
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds msg to the end of the sequence and returns its index. It never
// fails.
func (s *Store) Append(msg Message) int {
	s.messages = append(s.messages, msg)
	return len(s.messages) - 1
}

// AttachReaction appends tag to the reaction list of the message at index.
// Positions outside the current sequence report ErrInvalidIndex; the store is
// left untouched.
func (s *Store) AttachReaction(index int, tag string) error {
	if index < 0 || index >= len(s.messages) {
		return fmt.Errorf("%w: %d (len %d)", ErrInvalidIndex, index, len(s.messages))
	}
	s.messages[index].Reactions = append(s.messages[index].Reactions, tag)
	return nil
}

// At returns the message at index.
func (s *Store) At(index int) (Message, error) {
	if index < 0 || index >= len(s.messages) {
		return Message{}, fmt.Errorf("%w: %d (len %d)", ErrInvalidIndex, index, len(s.messages))
	}
	return s.messages[index], nil
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// Messages returns a copy of the sequence in insertion order. Reaction slices
// are copied too so callers cannot grow them behind the store's back.
func (s *Store) Messages() []Message {
	return lo.Map(s.messages, func(m Message, _ int) Message {
		m.Reactions = append([]string(nil), m.Reactions...)
		return m
	})
}
