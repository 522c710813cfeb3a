package subject

// Event0 is a typed event with no parameters.
type Event0 struct {
	ev *Event
}

// DefineEvent0 declares a parameterless event on the given [Subject].
func DefineEvent0(s *Subject, name string) *Event0 {
	return &Event0{ev: DefineEvent(s, name, 0)}
}

// Raw returns the dynamic event backing this wrapper.
func (e *Event0) Raw() *Event {
	return e.ev
}

// Subscribe registers handler under the given owner identity.
// Subscribing an owner that is already registered is silently ignored.
func (e *Event0) Subscribe(owner any, handler func()) {
	e.ev.Subscribe(owner, func(_ ...Param) {
		handler()
	})
}

// Unsubscribe removes the owner's handler, if any.
func (e *Event0) Unsubscribe(owner any) {
	e.ev.Unsubscribe(owner)
}

// Fire fires the event through the subject's current firing mode.
func (e *Event0) Fire() {
	_ = e.ev.Fire()
}

// Event1 is a typed event with a single parameter.
type Event1[A any] struct {
	ev *Event
}

// DefineEvent1 declares a single-parameter event on the given [Subject].
func DefineEvent1[A any](s *Subject, name string) *Event1[A] {
	return &Event1[A]{ev: DefineEvent(s, name, 1)}
}

// Raw returns the dynamic event backing this wrapper.
func (e *Event1[A]) Raw() *Event {
	return e.ev
}

// Subscribe registers handler under the given owner identity.
// Subscribing an owner that is already registered is silently ignored.
func (e *Event1[A]) Subscribe(owner any, handler func(A)) {
	e.ev.Subscribe(owner, func(params ...Param) {
		handler(params[0].(A))
	})
}

// Unsubscribe removes the owner's handler, if any.
func (e *Event1[A]) Unsubscribe(owner any) {
	e.ev.Unsubscribe(owner)
}

// Fire fires the event through the subject's current firing mode.
func (e *Event1[A]) Fire(a A) {
	_ = e.ev.Fire(a)
}

// Event2 is a typed event with two parameters.
type Event2[A, B any] struct {
	ev *Event
}

// DefineEvent2 declares a two-parameter event on the given [Subject].
func DefineEvent2[A, B any](s *Subject, name string) *Event2[A, B] {
	return &Event2[A, B]{ev: DefineEvent(s, name, 2)}
}

// Raw returns the dynamic event backing this wrapper.
func (e *Event2[A, B]) Raw() *Event {
	return e.ev
}

// Subscribe registers handler under the given owner identity.
// Subscribing an owner that is already registered is silently ignored.
func (e *Event2[A, B]) Subscribe(owner any, handler func(A, B)) {
	e.ev.Subscribe(owner, func(params ...Param) {
		handler(params[0].(A), params[1].(B))
	})
}

// Unsubscribe removes the owner's handler, if any.
func (e *Event2[A, B]) Unsubscribe(owner any) {
	e.ev.Unsubscribe(owner)
}

// Fire fires the event through the subject's current firing mode.
func (e *Event2[A, B]) Fire(a A, b B) {
	_ = e.ev.Fire(a, b)
}

// Event3 is a typed event with three parameters.
type Event3[A, B, C any] struct {
	ev *Event
}

// DefineEvent3 declares a three-parameter event on the given [Subject].
func DefineEvent3[A, B, C any](s *Subject, name string) *Event3[A, B, C] {
	return &Event3[A, B, C]{ev: DefineEvent(s, name, 3)}
}

// Raw returns the dynamic event backing this wrapper.
func (e *Event3[A, B, C]) Raw() *Event {
	return e.ev
}

// Subscribe registers handler under the given owner identity.
// Subscribing an owner that is already registered is silently ignored.
func (e *Event3[A, B, C]) Subscribe(owner any, handler func(A, B, C)) {
	e.ev.Subscribe(owner, func(params ...Param) {
		handler(params[0].(A), params[1].(B), params[2].(C))
	})
}

// Unsubscribe removes the owner's handler, if any.
func (e *Event3[A, B, C]) Unsubscribe(owner any) {
	e.ev.Unsubscribe(owner)
}

// Fire fires the event through the subject's current firing mode.
func (e *Event3[A, B, C]) Fire(a A, b B, c C) {
	_ = e.ev.Fire(a, b, c)
}

// Event4 is a typed event with four parameters, the widest declarable
// signature. The first parameter is conventionally the sender.
type Event4[A, B, C, D any] struct {
	ev *Event
}

// DefineEvent4 declares a four-parameter event on the given [Subject].
func DefineEvent4[A, B, C, D any](s *Subject, name string) *Event4[A, B, C, D] {
	return &Event4[A, B, C, D]{ev: DefineEvent(s, name, 4)}
}

// Raw returns the dynamic event backing this wrapper.
func (e *Event4[A, B, C, D]) Raw() *Event {
	return e.ev
}

// Subscribe registers handler under the given owner identity.
// Subscribing an owner that is already registered is silently ignored.
func (e *Event4[A, B, C, D]) Subscribe(owner any, handler func(A, B, C, D)) {
	e.ev.Subscribe(owner, func(params ...Param) {
		handler(params[0].(A), params[1].(B), params[2].(C), params[3].(D))
	})
}

// Unsubscribe removes the owner's handler, if any.
func (e *Event4[A, B, C, D]) Unsubscribe(owner any) {
	e.ev.Unsubscribe(owner)
}

// Fire fires the event through the subject's current firing mode.
func (e *Event4[A, B, C, D]) Fire(a A, b B, c C, d D) {
	_ = e.ev.Fire(a, b, c, d)
}

// BoundEvent1 is a single-parameter event whose value is resolved from
// subject state. A new subscriber immediately receives the resolver's
// current output, delivered only to that subscriber.
type BoundEvent1[A any] struct {
	Event1[A]
}

// DefineBoundEvent1 declares a bound single-parameter event on the given
// [Subject], with resolve producing the current value from subject state.
func DefineBoundEvent1[A any](s *Subject, name string, resolve func() A) *BoundEvent1[A] {
	ev := DefineBoundEvent(s, name, 1, func() []Param {
		return []Param{resolve()}
	})
	return &BoundEvent1[A]{Event1[A]{ev: ev}}
}

// FireCurrent fires with the resolver's current output.
// An explicit value can still be delivered with [Event1.Fire].
func (e *BoundEvent1[A]) FireCurrent() {
	_ = e.ev.Fire()
}

// BoundEvent2 is a two-parameter bound event, conventionally carrying the
// sender as its first parameter. A new subscriber immediately receives the
// resolver's current output, delivered only to that subscriber.
type BoundEvent2[S, A any] struct {
	Event2[S, A]
}

// DefineBoundEvent2 declares a bound two-parameter event on the given
// [Subject], with resolve producing the sender and current value.
func DefineBoundEvent2[S, A any](s *Subject, name string, resolve func() (S, A)) *BoundEvent2[S, A] {
	ev := DefineBoundEvent(s, name, 2, func() []Param {
		sender, val := resolve()
		return []Param{sender, val}
	})
	return &BoundEvent2[S, A]{Event2[S, A]{ev: ev}}
}

// FireCurrent fires with the resolver's current output.
// Explicit values can still be delivered with [Event2.Fire].
func (e *BoundEvent2[S, A]) FireCurrent() {
	_ = e.ev.Fire()
}
