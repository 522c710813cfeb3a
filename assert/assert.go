//go:build !noassert

// Package assert provides development-time invariant checks that panic with
// the violated condition and its call site. Build with the 'noassert' tag to
// compile the checks out entirely.
package assert

import (
	"fmt"
	"runtime"
)

// True will panic with the label and call site if result is not true.
func True(label string, result bool) {
	if result {
		return
	}
	panic(fmt.Sprintf("invariant '%s' violated at %s", label, callerDetails()))
}

// TrueFunc will panic with the label and call site if check returns false.
// Use this when evaluating the condition is expensive enough that it should
// be skipped entirely in 'noassert' builds.
func TrueFunc(label string, check func() bool) {
	if check() {
		return
	}
	panic(fmt.Sprintf("invariant '%s' violated at %s", label, callerDetails()))
}

func callerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}
