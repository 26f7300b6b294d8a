package bot

import "math/rand"

// DefaultPool holds the canned sentences the periodic trigger draws from.
var DefaultPool = []string{
	"Oh interesting, tell me more!",
	"I was just thinking the same thing.",
	"Wait, really? 😮",
	"Ha! Classic.",
	"Okay okay, but hear me out…",
	"Did you see the forecast for the weekend?",
	"I still can't believe last Tuesday.",
	"Sorry, got distracted — what were you saying?",
	"That reminds me of a podcast I heard.",
	"Brb, kettle's boiling.",
}

// EchoReply is the fixed acknowledgement appended after each user message.
const EchoReply = "Got it! 👌"

// Picker selects canned sentences from a pool using an injected random
// source, so tests can pin the sequence.
type Picker struct {
	pool []string
	rng  *rand.Rand
}

// NewPicker copies pool. A nil rng panics on first Pick; callers always pass
// one (production wires a time-seeded source in main).
func NewPicker(pool []string, rng *rand.Rand) *Picker {
	return &Picker{pool: append([]string(nil), pool...), rng: rng}
}

// Pick returns one entry uniformly at random. Empty pools return "".
func (p *Picker) Pick() string {
	if len(p.pool) == 0 {
		return ""
	}
	return p.pool[p.rng.Intn(len(p.pool))]
}
