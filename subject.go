package subject

import (
	"fmt"
	"log/slog"

	"github.com/saylorsolutions/subject/assert"
	"github.com/saylorsolutions/subject/structures/fifoset"
)

// FiringMode governs what happens when an event is fired on a [Subject].
type FiringMode int

const (
	// Enabled delivers every fire immediately to all subscribers.
	Enabled FiringMode = iota
	// SuspendedQueueing records fires and coalesces them for delivery on resume.
	SuspendedQueueing
	// SuspendedDropping records each event's latest parameters but never delivers them.
	SuspendedDropping
)

func (m FiringMode) String() string {
	switch m {
	case Enabled:
		return "enabled"
	case SuspendedQueueing:
		return "suspended-queueing"
	case SuspendedDropping:
		return "suspended-dropping"
	default:
		return "unknown"
	}
}

// Subject owns a set of named events, the firing mode, and the queue of
// events pending delivery while suspended.
//
// The zero value is ready to use, so event source types can embed a Subject
// directly and declare their events at construction time. A Subject and
// everything it dispatches belongs to a single goroutine; see the package
// documentation for the concurrency contract.
type Subject struct {
	events  map[string]*Event
	mode    FiringMode
	pending fifoset.Set[*Event]
	logger  *slog.Logger
}

// SetLogger enables Debug-level tracing of dispatches and mode transitions.
// Passing nil turns tracing off.
func (s *Subject) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Subject) addEvent(e *Event) {
	if _, ok := s.events[e.name]; ok {
		panic(fmt.Sprintf("event '%s' is already declared on this subject", e.name))
	}
	if s.events == nil {
		s.events = map[string]*Event{}
	}
	s.events[e.name] = e
	s.trace("event declared", slog.String("event", e.name), slog.Int("arity", e.arity), slog.Bool("bound", e.resolve != nil))
}

// EventNamed returns the event declared under the given name, or nil if no
// such event exists.
func (s *Subject) EventNamed(name string) *Event {
	return s.events[name]
}

// Mode returns the current firing mode.
func (s *Subject) Mode() FiringMode {
	return s.mode
}

// Suspended reports whether event delivery is currently suspended.
func (s *Subject) Suspended() bool {
	return s.mode != Enabled
}

// Fire fires the named event with the given parameters, subject to the
// current firing mode. It returns [ErrUnknownEvent] if no such event is
// declared, or [ErrArityMismatch] if the parameter count doesn't match the
// event's declaration. See [Event.Fire].
func (s *Subject) Fire(name string, params ...Param) error {
	e := s.events[name]
	if e == nil {
		return fmt.Errorf("%w: '%s'", ErrUnknownEvent, name)
	}
	return e.Fire(params...)
}

// Subscribe registers a dynamic handler for the named event under the given
// owner identity. See [Event.Subscribe] for the dedup and bound-event rules.
func (s *Subject) Subscribe(name string, owner any, fn func(params ...Param)) error {
	e := s.events[name]
	if e == nil {
		return fmt.Errorf("%w: '%s'", ErrUnknownEvent, name)
	}
	e.Subscribe(owner, fn)
	return nil
}

// Unsubscribe removes the owner's handler from the named event.
// Unknown owners are silently ignored; unknown event names are reported.
func (s *Subject) Unsubscribe(name string, owner any) error {
	e := s.events[name]
	if e == nil {
		return fmt.Errorf("%w: '%s'", ErrUnknownEvent, name)
	}
	e.Unsubscribe(owner)
	return nil
}

// UnsubscribeAll removes the owner's handlers from every event on the
// subject. Observers should call this, or unsubscribe per event, before they
// are discarded, since the engine performs no lifetime tracking of its own.
func (s *Subject) UnsubscribeAll(owner any) {
	for _, e := range s.events {
		e.Unsubscribe(owner)
	}
}

// SuspendEvents suspends event delivery.
//
// With queueing, fired events are coalesced for delivery on resume: the
// queue holds each event at most once, and only its most recent parameters
// survive. Without queueing, fired values are recorded as each event's
// latest parameters but are never delivered, and anything already queued is
// discarded.
//
// Suspending into the current mode is a no-op, and switching from dropping
// to queueing does not recover values dropped before the switch.
func (s *Subject) SuspendEvents(queueing bool) {
	prev := s.mode
	if queueing {
		s.mode = SuspendedQueueing
	} else {
		s.mode = SuspendedDropping
		s.pending.Clear()
	}
	s.trace("events suspended", slog.String("from", prev.String()), slog.String("to", s.mode.String()))
}

// ResumeEvents returns the subject to [Enabled].
// Leaving [SuspendedQueueing] first delivers each queued event exactly once,
// in the order the events were first fired while suspended, using each
// event's most recent parameters. Resuming while already enabled is a no-op.
func (s *Subject) ResumeEvents() {
	if s.mode == Enabled {
		return
	}
	prev := s.mode
	// Flip the mode before draining so a handler that fires mid-drain
	// dispatches immediately instead of growing a queue nobody drains.
	s.mode = Enabled
	queued := s.pending.Drain()
	s.trace("events resumed", slog.String("from", prev.String()), slog.Int("delivered", len(queued)))
	for _, e := range queued {
		e.fireAll()
	}
}

// dispatch applies the firing mode to an already arity-checked fire.
func (s *Subject) dispatch(e *Event, params []Param) {
	e.setParams(params)
	switch s.mode {
	case Enabled:
		assert.True("no pending events while enabled", s.pending.Len() == 0)
		s.trace("event fired", slog.String("event", e.name), slog.Int("subscribers", len(e.callbacks)))
		e.fireAll()
	case SuspendedQueueing:
		added := s.pending.Push(e)
		s.trace("event queued", slog.String("event", e.name), slog.Bool("coalesced", !added))
	case SuspendedDropping:
		s.trace("event dropped", slog.String("event", e.name))
	}
}

func (s *Subject) trace(msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, args...)
}
