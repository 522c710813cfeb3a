//go:build noassert

// Package assert provides development-time invariant checks that panic with
// the violated condition and its call site. Build with the 'noassert' tag to
// compile the checks out entirely.
package assert

// True will panic with the label and call site if result is not true.
func True(label string, result bool) {
	// No op
}

// TrueFunc will panic with the label and call site if check returns false.
// Use this when evaluating the condition is expensive enough that it should
// be skipped entirely in 'noassert' builds.
func TrueFunc(label string, check func() bool) {
	// No op
}
