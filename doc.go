/*
Package subject is an in-process publish/subscribe engine connecting event
sources (subjects) to event sinks (observers) with compile-time checked
handler signatures, suspend/resume with value coalescing, and bound events
that synchronize a new subscriber with current state at subscription time.

# Subjects and Events

A [Subject] owns a set of named events and the firing mode that governs their
delivery. The zero value of a Subject is ready to use, so an event source is
usually a struct embedding a Subject that declares its events at construction
time:

	type Person struct {
		subject.Subject
		AgeChanged *subject.Event1[int]
	}

	func NewPerson() *Person {
		p := &Person{}
		p.AgeChanged = subject.DefineEvent1[int](&p.Subject, "age-changed")
		return p
	}

Observers subscribe a handler under an owner identity, and the handler
signature is checked by the compiler against the event's declaration:

	p.AgeChanged.Subscribe(obs, obs.OnAgeChanged) // func(int)
	p.AgeChanged.Fire(42)

The owner identity is any comparable value, typically the observer pointer
itself. An owner holds at most one handler per event: subscribing twice is
silently ignored, as is unsubscribing an owner that was never registered.
For ad hoc closures with no natural identity, [NewToken] produces a unique
one.

Events are declared once, at subject construction time, and live exactly as
long as their subject. [DefineEvent1] through [DefineEvent4] declare typed
events of increasing arity; wider signatures should bundle values in a
struct parameter. [DefineEvent] declares a dynamic event whose handlers
receive untyped parameters, with arity validated when the event is fired
instead of at compile time. See [ParamAt] and [BindParams] for pulling
typed values out of a dynamic parameter list.

# Firing Modes

Firing an event delivers the given parameters to every subscriber in
registration order - immediately, while the subject is enabled. A subject
may also be suspended:

	s.SuspendEvents(true) // suspend, queueing fired events
	s.SuspendEvents(false) // suspend, dropping fired events
	s.ResumeEvents()

While suspended with queueing, fired events are coalesced: the queue holds
each event at most once, only the most recent parameters survive, and
resuming delivers each queued event exactly once, in the order the events
were first fired while suspended. While suspended with dropping, fired
values are recorded as the event's latest parameters but are never
delivered.

# Bound Events

A bound event carries a resolver that produces its current parameter values
from subject state. Subscribing to a bound event immediately delivers the
resolver's output to the new handler only, so a fresh observer starts out
consistent with the subject without the subject re-firing for its benefit.
Bound events may also be fired manually: explicit parameters override the
resolver for that call, and firing with no parameters delivers whatever the
resolver currently returns.

# Concurrency

The engine is single-goroutine by contract. Dispatch is synchronous and
runs to completion, including nested fires from inside handlers: a handler
may fire, subscribe, or unsubscribe on the subject that is currently
dispatching without corrupting the iteration. There is no internal locking,
no background goroutine, and no lifetime tracking of observers - an
observer must unsubscribe (see [Subject.UnsubscribeAll]) before it is
discarded, or later fires will still invoke its handlers. Handler panics
are not recovered; they propagate to the caller of the fire or resume that
triggered them, aborting the remaining deliveries of that pass.
*/
package subject
