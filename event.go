package subject

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrArityMismatch = errors.New("wrong number of event parameters")
	ErrUnknownEvent  = errors.New("unknown event")
)

// MaxArity bounds the number of parameters an event may declare.
// Wider signatures should bundle related values in a struct parameter.
const MaxArity = 4

// Param is a single event parameter as seen by the dynamic surface.
// The typed event wrappers pack and unpack these on behalf of their handlers.
type Param any

// Token is an opaque owner identity for subscribers that have no natural
// comparable identity of their own, such as ad hoc closures.
type Token string

// NewToken returns a unique [Token].
func NewToken() Token {
	return Token(uuid.NewString())
}

// callback binds one owner identity to one handler.
// Two callbacks are the same subscription when their owners are equal,
// regardless of the handler either one carries.
type callback struct {
	owner  any
	invoke func(params []Param)
}

// Event is one named signal on a [Subject] with a fixed parameter arity.
// It keeps its subscribers in registration order, along with a snapshot of
// the most recently set parameters, which is what subscribers receive
// whenever the event is delivered.
//
// This is the dynamic form: handlers receive untyped parameters and arity is
// validated when the event is fired. The typed wrappers ([Event1] and
// friends) move that check to compile time and are usually what callers
// want. An Event is declared once, at subject construction time, and lives
// exactly as long as its [Subject].
type Event struct {
	sub       *Subject
	name      string
	arity     int
	resolve   func() []Param // nil for unbound events
	callbacks []callback
	last      []Param
}

// DefineEvent declares a new dynamic event on the given [Subject].
// It panics if the name is already declared on the subject, or if arity is
// negative or greater than [MaxArity]; both are programming errors.
func DefineEvent(s *Subject, name string, arity int) *Event {
	if arity < 0 || arity > MaxArity {
		panic(fmt.Sprintf("event '%s' arity %d is outside [0,%d]", name, arity, MaxArity))
	}
	e := &Event{sub: s, name: name, arity: arity}
	s.addEvent(e)
	return e
}

// DefineBoundEvent declares a dynamic event whose parameters can be resolved
// from subject state at any time. A newly subscribed handler immediately
// receives the resolver's current output, and firing the event with no
// parameters falls back to the resolver as well.
// The resolver must return exactly arity values.
func DefineBoundEvent(s *Subject, name string, arity int, resolve func() []Param) *Event {
	if resolve == nil {
		panic(fmt.Sprintf("bound event '%s' requires a resolver", name))
	}
	e := DefineEvent(s, name, arity)
	e.resolve = resolve
	return e
}

// Name returns the event's name, unique within its [Subject].
func (e *Event) Name() string {
	return e.name
}

// Arity returns the declared parameter count.
func (e *Event) Arity() int {
	return e.arity
}

// Bound reports whether the event has a state resolver attached.
func (e *Event) Bound() bool {
	return e.resolve != nil
}

// Subscribers returns the number of registered handlers.
func (e *Event) Subscribers() int {
	return len(e.callbacks)
}

// Subscribe registers fn under the given owner identity, which must be a
// comparable value. Subscribing an owner that is already registered is
// silently ignored, so an owner holds at most one handler per event.
//
// If the event is bound, the newly registered handler is immediately invoked
// with the resolver's current output. That initial delivery goes only to the
// new handler, and happens regardless of the subject's firing mode.
func (e *Event) Subscribe(owner any, fn func(params ...Param)) {
	if e.subscribed(owner) {
		return
	}
	e.callbacks = append(e.callbacks, callback{
		owner:  owner,
		invoke: func(params []Param) { fn(params...) },
	})
	if e.resolve != nil {
		e.setParams(e.resolve())
		e.fireOne(owner)
	}
}

// Unsubscribe removes the owner's handler, if any.
// Unknown owners are silently ignored.
func (e *Event) Unsubscribe(owner any) {
	e.callbacks = slices.DeleteFunc(e.callbacks, func(cb callback) bool {
		return cb.owner == owner
	})
}

// Fire fires the event through its subject's current firing mode.
// The parameter count must match the declared arity, except that a bound
// event may be fired with no parameters to deliver its resolver's output.
func (e *Event) Fire(params ...Param) error {
	if len(params) == 0 && e.resolve != nil {
		params = e.resolve()
	}
	if len(params) != e.arity {
		return fmt.Errorf("%w: event '%s' declares %d, got %d", ErrArityMismatch, e.name, e.arity, len(params))
	}
	e.sub.dispatch(e, params)
	return nil
}

func (e *Event) subscribed(owner any) bool {
	return slices.ContainsFunc(e.callbacks, func(cb callback) bool {
		return cb.owner == owner
	})
}

func (e *Event) setParams(params []Param) {
	e.last = params
}

// fireAll invokes every handler in registration order with the parameters
// set when the iteration starts. Handlers may subscribe or unsubscribe on
// this event mid-delivery: additions are not seen until the next delivery,
// and removed callbacks are skipped.
func (e *Event) fireAll() {
	params := e.last
	for _, cb := range slices.Clone(e.callbacks) {
		if !e.subscribed(cb.owner) {
			continue
		}
		cb.invoke(params)
	}
}

// fireOne invokes only the owner's handler with the last-set parameters.
// Unknown owners are ignored.
func (e *Event) fireOne(owner any) {
	for _, cb := range e.callbacks {
		if cb.owner == owner {
			cb.invoke(e.last)
			return
		}
	}
}
