// Command subject-demo walks through the engine's behaviors: plain and typed
// events, bound events syncing new subscribers, and suspend/resume with
// value coalescing or dropping.
package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/saylorsolutions/subject"
)

func main() {
	var (
		drop    = flag.Bool("drop", false, "Suspend in dropping mode instead of queueing")
		verbose = flag.BoolP("verbose", "v", false, "Enable Debug-level dispatch tracing")
	)
	flag.Parse()

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fmt.Println("Simple Demo:")
	simple := NewSimpleSubject()
	simple.Subject.SetLogger(logger)
	simpleObs := NewSimpleObserver(simple)
	simple.FireEvents()
	simpleObs.Close()

	fmt.Println("\nComplex Demo:")
	complexSub := NewComplexSubject()
	complexSub.Subject.SetLogger(logger)

	fmt.Println("Bound events that fired upon subscribe:")
	complexObs := NewComplexObserver(complexSub)
	derived := NewDerivedObserver(complexSub)

	complexSub.SuspendEvents(!*drop)
	complexSub.FireEvents()

	if *drop {
		fmt.Println("\nNormal Events (these were dropped):")
	} else {
		fmt.Println("\nNormal Events (these were queued):")
	}
	complexSub.ResumeEvents()

	fmt.Println("\nBound events fired manually:")
	complexSub.FireBoundEvents()

	derived.Close()
	complexObs.Close()
}

// SimpleSubject declares a single one-parameter event.
type SimpleSubject struct {
	subject.Subject
	AgeChanged *subject.Event1[int]
}

func NewSimpleSubject() *SimpleSubject {
	s := &SimpleSubject{}
	s.AgeChanged = subject.DefineEvent1[int](&s.Subject, "age-changed")
	return s
}

func (s *SimpleSubject) FireEvents() {
	s.AgeChanged.Fire(69)
}

// SimpleObserver subscribes one handler and unsubscribes on Close.
type SimpleObserver struct {
	sub *SimpleSubject
}

func NewSimpleObserver(sub *SimpleSubject) *SimpleObserver {
	o := &SimpleObserver{sub: sub}
	sub.AgeChanged.Subscribe(o, o.OnAgeChanged)
	return o
}

func (o *SimpleObserver) OnAgeChanged(age int) {
	fmt.Println("SimpleObserver.OnAgeChanged with", age)
}

func (o *SimpleObserver) Close() {
	o.sub.UnsubscribeAll(o)
}

// Size is a struct parameter carried by pointer through an event.
type Size struct {
	Width  int
	Height int
}

// ComplexSubject exercises every event shape: parameterless, single
// parameter, sender-carrying wide signature, struct parameter, and two
// bound events resolved from a getter and a field.
type ComplexSubject struct {
	subject.Subject
	NoParams    *subject.Event0
	AgeChanged  *subject.Event1[int]
	Quad        *subject.Event4[*ComplexSubject, int, int, bool]
	SizeChanged *subject.Event1[*Size]
	NameChanged *subject.BoundEvent1[string]
	CityChanged *subject.BoundEvent2[*ComplexSubject, string]

	size Size
	city string
}

func NewComplexSubject() *ComplexSubject {
	s := &ComplexSubject{
		size: Size{Width: 100, Height: 10},
		city: "London",
	}
	s.NoParams = subject.DefineEvent0(&s.Subject, "no-params")
	s.AgeChanged = subject.DefineEvent1[int](&s.Subject, "age-changed")
	s.Quad = subject.DefineEvent4[*ComplexSubject, int, int, bool](&s.Subject, "quad")
	s.SizeChanged = subject.DefineEvent1[*Size](&s.Subject, "size-changed")
	s.NameChanged = subject.DefineBoundEvent1(&s.Subject, "name-changed", s.Name)
	s.CityChanged = subject.DefineBoundEvent2(&s.Subject, "city-changed", func() (*ComplexSubject, string) {
		return s, s.city
	})
	return s
}

func (s *ComplexSubject) Name() string {
	return "Crazy!"
}

func (s *ComplexSubject) FireEvents() {
	s.NoParams.Fire()
	s.AgeChanged.Fire(76)
	// If events are queued this is the only age to be delivered; the
	// previous one is coalesced away.
	s.AgeChanged.Fire(12)
	s.Quad.Fire(s, 11, 22, true)
	s.SizeChanged.Fire(&s.size)
}

func (s *ComplexSubject) FireBoundEvents() {
	// Bound events can be fired without parameters...
	s.NameChanged.FireCurrent()
	// ...but also with them.
	s.NameChanged.Fire("Daisy!")
}

// ComplexObserver subscribes to every event on a [ComplexSubject], including
// one duplicate subscription that the engine ignores.
type ComplexObserver struct {
	sub *ComplexSubject
}

func NewComplexObserver(sub *ComplexSubject) *ComplexObserver {
	o := &ComplexObserver{sub: sub}
	sub.NoParams.Subscribe(o, o.OnNoParams)
	sub.AgeChanged.Subscribe(o, o.OnAgeChanged)
	sub.Quad.Subscribe(o, o.OnQuad)

	sub.SizeChanged.Subscribe(o, o.OnSize)
	sub.SizeChanged.Subscribe(o, o.OnSize) // Ignored, already subscribed.

	sub.NameChanged.Subscribe(o, o.OnName)
	sub.CityChanged.Subscribe(o, o.OnCity)
	return o
}

func (o *ComplexObserver) OnNoParams() {
	fmt.Println("ComplexObserver.OnNoParams")
}

func (o *ComplexObserver) OnAgeChanged(age int) {
	fmt.Println("ComplexObserver.OnAgeChanged with", age)
}

func (o *ComplexObserver) OnQuad(_ *ComplexSubject, x, y int, b bool) {
	fmt.Printf("ComplexObserver.OnQuad (%d, %d, %t)\n", x, y, b)
}

func (o *ComplexObserver) OnSize(size *Size) {
	fmt.Printf("ComplexObserver.OnSize (%d, %d)\n", size.Width, size.Height)
}

func (o *ComplexObserver) OnName(name string) {
	fmt.Println("ComplexObserver.OnName with:", name)
}

func (o *ComplexObserver) OnCity(_ *ComplexSubject, city string) {
	fmt.Println("ComplexObserver.OnCity with:", city)
}

func (o *ComplexObserver) Close() {
	o.sub.UnsubscribeAll(o)
}

// BaseObserver holds the subscription plumbing for observers that embed it.
// It deliberately does not subscribe in its constructor: a method value
// binds its concrete receiver, so the embedding type must subscribe itself
// after construction to route deliveries to its own handler instead of the
// embedded one.
type BaseObserver struct {
	sub *ComplexSubject
}

func NewBaseObserver(sub *ComplexSubject) *BaseObserver {
	return &BaseObserver{sub: sub}
}

func (o *BaseObserver) OnName(name string) {
	fmt.Println("BaseObserver.OnName with:", name)
}

func (o *BaseObserver) Close() {
	o.sub.UnsubscribeAll(o)
}

// DerivedObserver shadows OnName and subscribes itself once fully
// constructed, so the shadowing handler receives deliveries, including the
// bound event's initial sync.
type DerivedObserver struct {
	*BaseObserver
}

func NewDerivedObserver(sub *ComplexSubject) *DerivedObserver {
	o := &DerivedObserver{BaseObserver: NewBaseObserver(sub)}
	sub.NameChanged.Subscribe(o, o.OnName)
	return o
}

func (o *DerivedObserver) OnName(name string) {
	fmt.Println("DerivedObserver.OnName with:", name)
}

func (o *DerivedObserver) Close() {
	o.sub.UnsubscribeAll(o)
}
