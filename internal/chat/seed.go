package chat

import "time"

type seedEntry struct {
	content   string
	fromUser  bool
	agoMin    int
	reactions []string
}

// The fixed historical conversation shown on startup. Offsets are minutes
// before the seed time so the transcript always looks recent.
var seedScript = []seedEntry{
	{"Hey! Did you make it back from the airport okay?", false, 58, nil},
	{"Just walked in the door. Traffic was brutal though", true, 56, []string{"😮"}},
	{"Ouch. The M4 again?", false, 55, nil},
	{"Yep. Forty minutes at a standstill near the bridge", true, 53, nil},
	{"That bridge is cursed, I swear", false, 52, []string{"😂"}},
	{"Anyway — I brought you something from the trip", true, 49, nil},
	{"No way. Is it the coffee??", false, 48, nil},
	{"Two bags. The dark roast you liked and a new one", true, 47, []string{"❤️", "👍"}},
	{"You are officially my favorite person", false, 45, nil},
	{"Ha, tell that to my plants. They did not survive the week", true, 43, nil},
	{"RIP the basil 🪦", false, 42, []string{"😂"}},
	{"It had a good life. Mostly.", true, 40, nil},
	{"Dinner later? I want the full trip report", false, 12, nil},
	{"Deal. Usual place at 7?", true, 10, []string{"👍"}},
}

// Seed returns the fixed 14-message startup conversation with timestamps
// anchored to now.
func Seed(now time.Time) []Message {
	msgs := make([]Message, 0, len(seedScript))
	for _, e := range seedScript {
		m := NewMessage(e.content, e.fromUser, now.Add(-time.Duration(e.agoMin)*time.Minute))
		m.Reactions = append([]string(nil), e.reactions...)
		msgs = append(msgs, m)
	}
	return msgs
}
