// Package fifoset provides an insertion-ordered set: values come back out in
// the order they were first added, and adding a value that is already present
// leaves the set unchanged.
package fifoset

import (
	"iter"
	"slices"
)

// Set is an insertion-ordered set of comparable values.
// The zero value is ready to use. A Set is not concurrency safe.
type Set[T comparable] struct {
	order   []T
	present map[T]struct{}
}

// New creates a [Set] from the given values, keeping first-add order.
func New[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range vals {
		s.Push(v)
	}
	return s
}

// Push adds a value at the tail of the set.
// It reports whether the value was newly added; pushing a value that is
// already present keeps its original position and returns false.
func (s *Set[T]) Push(val T) bool {
	if s.Has(val) {
		return false
	}
	if s.present == nil {
		s.present = map[T]struct{}{}
	}
	s.present[val] = struct{}{}
	s.order = append(s.order, val)
	return true
}

// Has determines if the value is present in the [Set].
func (s *Set[T]) Has(val T) bool {
	_, ok := s.present[val]
	return ok
}

// Remove removes the value, keeping the order of the rest, and reports
// whether it was present.
func (s *Set[T]) Remove(val T) bool {
	if !s.Has(val) {
		return false
	}
	delete(s.present, val)
	s.order = slices.DeleteFunc(s.order, func(v T) bool {
		return v == val
	})
	return true
}

// Len gets the number of values in the [Set].
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Values returns the values in first-add order without modifying the set.
func (s *Set[T]) Values() []T {
	if len(s.order) == 0 {
		return nil
	}
	return slices.Clone(s.order)
}

// Drain returns the values in first-add order and clears the set.
func (s *Set[T]) Drain() []T {
	vals := s.order
	s.order = nil
	s.present = nil
	return vals
}

// Clear removes all values from the [Set].
func (s *Set[T]) Clear() {
	s.order = nil
	s.present = nil
}

// All returns an iterator over the values in first-add order.
// The set must not be mutated during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}
