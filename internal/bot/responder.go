package bot

import (
	"time"

	"banter-cli/internal/chat"
	"banter-cli/internal/logger"

	"github.com/qmuntal/stateless"
)

// Responder states. Armed means the periodic trigger is accepting fires;
// stopped means fires are discarded. There are no other states.
var (
	StateStopped stateless.State = "stopped"
	StateArmed   stateless.State = "armed"
)

// Responder triggers.
var (
	TriggerStart stateless.Trigger = "start"
	TriggerStop  stateless.Trigger = "stop"
)

// Responder owns the two bot triggers: the one-shot echo reply after each
// user message, and the repeating randomized-message timer. It carries no
// timers itself — the UI loop schedules ticks and asks the responder whether
// a fire is still valid — so all store mutation stays on the event loop.
type Responder struct {
	machine    *stateless.StateMachine
	picker     *Picker
	echoDelay  time.Duration
	interval   time.Duration
	generation int
	log        *logger.LogEntry
}

// NewResponder builds a stopped responder.
func NewResponder(picker *Picker, echoDelay, interval time.Duration) *Responder {
	r := &Responder{
		picker:    picker,
		echoDelay: echoDelay,
		interval:  interval,
		log:       logger.Named("bot"),
	}
	m := stateless.NewStateMachine(StateStopped)
	m.Configure(StateStopped).Permit(TriggerStart, StateArmed)
	m.Configure(StateArmed).Permit(TriggerStop, StateStopped)
	r.machine = m
	return r
}

// Start arms the periodic trigger and returns the new tick generation. Ticks
// scheduled under an older generation are ignored by Accept, so a
// stop/start cycle never double-fires.
func (r *Responder) Start() (int, error) {
	if err := r.machine.Fire(TriggerStart); err != nil {
		return r.generation, err
	}
	r.generation++
	r.log.WithField("generation", r.generation).Info("responder armed")
	return r.generation, nil
}

// Stop cancels the periodic trigger. Pending echo replies are deliberately
// left alone: they fire on the same event loop, which outlives them only
// while the view does.
func (r *Responder) Stop() error {
	if err := r.machine.Fire(TriggerStop); err != nil {
		return err
	}
	r.log.Info("responder stopped")
	return nil
}

// Armed reports whether the periodic trigger is accepting fires.
func (r *Responder) Armed() bool {
	return r.machine.MustState() == StateArmed
}

// Accept reports whether a periodic tick carrying generation gen should
// append. Stale generations and stopped state both reject.
func (r *Responder) Accept(gen int) bool {
	return r.Armed() && gen == r.generation
}

// Generation returns the current tick generation.
func (r *Responder) Generation() int {
	return r.generation
}

// EchoDelay returns the delay before the scripted acknowledgement.
func (r *Responder) EchoDelay() time.Duration {
	return r.echoDelay
}

// Interval returns the periodic trigger's repeat interval.
func (r *Responder) Interval() time.Duration {
	return r.interval
}

// ComposeRandom draws one canned sentence and wraps it as a bot message.
func (r *Responder) ComposeRandom(now time.Time) chat.Message {
	return chat.NewMessage(r.picker.Pick(), false, now)
}

// ComposeEcho wraps the fixed acknowledgement as a bot message.
func (r *Responder) ComposeEcho(now time.Time) chat.Message {
	return chat.NewMessage(EchoReply, false, now)
}
