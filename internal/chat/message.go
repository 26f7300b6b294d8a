package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat entry. Everything except Reactions is immutable after
// creation; Reactions grows only by append.
type Message struct {
	ID        string
	Content   string
	FromUser  bool
	SentAt    time.Time
	Reactions []string
}

// NewMessage assigns a fresh id and stamps the creation time.
func NewMessage(content string, fromUser bool, at time.Time) Message {
	return Message{
		ID:       uuid.NewString(),
		Content:  content,
		FromUser: fromUser,
		SentAt:   at,
	}
}

// Reaction is one of the fixed picker choices.
type Reaction struct {
	Name string
	Tag  string
}

// ReactionChoices is the fixed set offered by the picker. Order matters: it is
// the display order.
var ReactionChoices = []Reaction{
	{Name: "love", Tag: "❤️"},
	{Name: "like", Tag: "👍"},
	{Name: "laugh", Tag: "😂"},
	{Name: "surprise", Tag: "😮"},
}
