package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Subject
	ageChanged  *Event1[int]
	nameChanged *BoundEvent1[string]

	name string
}

func newPerson() *person {
	p := &person{name: "Crazy!"}
	p.ageChanged = DefineEvent1[int](&p.Subject, "age-changed")
	p.nameChanged = DefineBoundEvent1(&p.Subject, "name-changed", func() string {
		return p.name
	})
	return p
}

func TestSubject_DedupOnSubscribe(t *testing.T) {
	p := newPerson()
	obs := NewToken()
	var calls int
	p.ageChanged.Subscribe(obs, func(int) {
		calls++
	})
	p.ageChanged.Subscribe(obs, func(int) {
		calls += 100
	})
	p.ageChanged.Fire(5)
	assert.Equal(t, 1, calls, "Second subscription of the same owner should be ignored")
	assert.Equal(t, 1, p.ageChanged.Raw().Subscribers())
}

func TestSubject_BoundEventInitialSync(t *testing.T) {
	p := newPerson()
	var (
		got   []string
		other []string
	)
	first := NewToken()
	p.nameChanged.Subscribe(first, func(name string) {
		other = append(other, name)
	})
	other = nil // Discard the first subscriber's own initial sync.

	p.nameChanged.Subscribe(NewToken(), func(name string) {
		got = append(got, name)
	})
	assert.Equal(t, []string{"Crazy!"}, got, "New subscriber should be synced immediately")
	assert.Empty(t, other, "Initial sync should not reach earlier subscribers")
}

func TestSubject_SuspendQueueCoalescing(t *testing.T) {
	p := newPerson()
	var got []int
	p.ageChanged.Subscribe(NewToken(), func(age int) {
		got = append(got, age)
	})

	p.SuspendEvents(true)
	p.ageChanged.Fire(76)
	p.ageChanged.Fire(12)
	assert.Empty(t, got, "Nothing should be delivered while suspended")

	p.ResumeEvents()
	assert.Equal(t, []int{12}, got, "Only the last value fired while suspended should be delivered")
	assert.Equal(t, Enabled, p.Mode())
}

func TestSubject_SuspendDropDiscards(t *testing.T) {
	p := newPerson()
	var got []int
	p.ageChanged.Subscribe(NewToken(), func(age int) {
		got = append(got, age)
	})

	p.SuspendEvents(false)
	p.ageChanged.Fire(5)
	p.ResumeEvents()
	assert.Empty(t, got, "Values fired while dropping should never be delivered")

	p.ageChanged.Fire(6)
	assert.Equal(t, []int{6}, got, "Delivery should work normally after resume")
}

func TestSubject_DropClearsQueue(t *testing.T) {
	p := newPerson()
	var got []int
	p.ageChanged.Subscribe(NewToken(), func(age int) {
		got = append(got, age)
	})

	p.SuspendEvents(true)
	p.ageChanged.Fire(76)
	p.SuspendEvents(false)
	assert.Equal(t, SuspendedDropping, p.Mode())
	p.ResumeEvents()
	assert.Empty(t, got, "Switching to dropping should discard the queue")
}

func TestSubject_DropToQueueingKeepsNothing(t *testing.T) {
	p := newPerson()
	var got []int
	p.ageChanged.Subscribe(NewToken(), func(age int) {
		got = append(got, age)
	})

	p.SuspendEvents(false)
	p.ageChanged.Fire(76)
	p.SuspendEvents(true)
	p.ageChanged.Fire(12)
	p.ResumeEvents()
	assert.Equal(t, []int{12}, got, "Values dropped before the switch should not be recovered")
}

func TestSubject_ResumeWhileEnabled(t *testing.T) {
	p := newPerson()
	var calls int
	p.ageChanged.Subscribe(NewToken(), func(int) {
		calls++
	})
	p.ResumeEvents()
	assert.Equal(t, 0, calls)
	assert.Equal(t, Enabled, p.Mode())
	assert.False(t, p.Suspended())
}

func TestSubject_UnsubscribeStopsDelivery(t *testing.T) {
	p := newPerson()
	obs := NewToken()
	var calls int
	p.ageChanged.Subscribe(obs, func(int) {
		calls++
	})
	p.ageChanged.Fire(1)
	p.ageChanged.Unsubscribe(obs)
	p.ageChanged.Fire(2)

	p.SuspendEvents(true)
	p.ageChanged.Fire(3)
	p.ResumeEvents()
	assert.Equal(t, 1, calls, "No deliveries should happen after unsubscribing, in any mode")
}

func TestSubject_CrossEventQueueOrdering(t *testing.T) {
	p := newPerson()
	var order []string
	p.ageChanged.Subscribe(NewToken(), func(int) {
		order = append(order, "age")
	})
	p.nameChanged.Subscribe(NewToken(), func(string) {
		order = append(order, "name")
	})
	order = nil // Discard the bound event's initial sync.

	p.SuspendEvents(true)
	p.ageChanged.Fire(1)
	p.nameChanged.Fire("Bob")
	p.ageChanged.Fire(2)
	p.ResumeEvents()
	assert.Equal(t, []string{"age", "name"}, order,
		"Events should drain in first-fired order, once each")
}

func TestSubject_ManualBoundFire(t *testing.T) {
	p := newPerson()
	var got []string
	p.nameChanged.Subscribe(NewToken(), func(name string) {
		got = append(got, name)
	})
	got = nil

	p.nameChanged.Fire("Daisy!")
	assert.Equal(t, []string{"Daisy!"}, got, "Explicit parameters should override the resolver")

	p.nameChanged.FireCurrent()
	assert.Equal(t, []string{"Daisy!", "Crazy!"}, got, "FireCurrent should deliver the resolver's output")
}

func TestSubject_BoundSyncIgnoresFiringMode(t *testing.T) {
	p := newPerson()
	p.SuspendEvents(true)

	var got []string
	p.nameChanged.Subscribe(NewToken(), func(name string) {
		got = append(got, name)
	})
	assert.Equal(t, []string{"Crazy!"}, got, "Initial sync should bypass suspension")

	p.ResumeEvents()
	assert.Equal(t, []string{"Crazy!"}, got, "Initial sync should not have queued anything")
}

func TestSubject_UnsubscribeAll(t *testing.T) {
	p := newPerson()
	obs := NewToken()
	var calls int
	p.ageChanged.Subscribe(obs, func(int) {
		calls++
	})
	p.nameChanged.Subscribe(obs, func(string) {
		calls++
	})
	calls = 0

	p.UnsubscribeAll(obs)
	p.ageChanged.Fire(1)
	p.nameChanged.FireCurrent()
	assert.Equal(t, 0, calls)
}

func TestSubject_FireByName(t *testing.T) {
	p := newPerson()
	var got []int
	require.NoError(t, p.Subscribe("age-changed", NewToken(), func(params ...Param) {
		age, err := ParamAt[int](params, 0)
		require.NoError(t, err)
		got = append(got, age)
	}))
	require.NoError(t, p.Fire("age-changed", 33))
	assert.Equal(t, []int{33}, got)

	err := p.Fire("no-such-event", 1)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.ErrorIs(t, p.Subscribe("no-such-event", NewToken(), func(...Param) {}), ErrUnknownEvent)
	assert.ErrorIs(t, p.Unsubscribe("no-such-event", NewToken()), ErrUnknownEvent)
	assert.ErrorIs(t, p.Fire("age-changed", 1, 2), ErrArityMismatch)
}

func TestSubject_ReentrantUnsubscribe(t *testing.T) {
	p := newPerson()
	var (
		first  = NewToken()
		second = NewToken()
		calls  []string
	)
	p.ageChanged.Subscribe(first, func(int) {
		calls = append(calls, "first")
		p.ageChanged.Unsubscribe(second)
	})
	p.ageChanged.Subscribe(second, func(int) {
		calls = append(calls, "second")
	})
	p.ageChanged.Fire(1)
	assert.Equal(t, []string{"first"}, calls, "Handlers removed mid-delivery should be skipped")
}

func TestSubject_ReentrantSubscribe(t *testing.T) {
	p := newPerson()
	var calls int
	p.ageChanged.Subscribe(NewToken(), func(int) {
		calls++
		if calls == 1 {
			p.ageChanged.Subscribe(NewToken(), func(int) {
				calls += 10
			})
		}
	})
	p.ageChanged.Fire(1)
	assert.Equal(t, 1, calls, "Handlers added mid-delivery should wait for the next fire")
	p.ageChanged.Fire(2)
	assert.Equal(t, 12, calls)
}

func TestSubject_ReentrantFireDuringDrain(t *testing.T) {
	p := newPerson()
	var got []int
	obs := NewToken()
	p.ageChanged.Subscribe(obs, func(age int) {
		got = append(got, age)
		if age == 1 {
			p.ageChanged.Fire(2)
		}
	})
	p.SuspendEvents(true)
	p.ageChanged.Fire(1)
	p.ResumeEvents()
	assert.Equal(t, []int{1, 2}, got, "A fire from a draining handler should dispatch immediately")
	assert.Equal(t, Enabled, p.Mode())
}

func TestFiringMode_String(t *testing.T) {
	assert.Equal(t, "enabled", Enabled.String())
	assert.Equal(t, "suspended-queueing", SuspendedQueueing.String())
	assert.Equal(t, "suspended-dropping", SuspendedDropping.String())
	assert.Equal(t, "unknown", FiringMode(42).String())
}
