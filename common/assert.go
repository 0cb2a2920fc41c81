package common

import "fmt"

// Assert panics when an internal invariant is broken. Contract violations
// that a caller can provoke are reported as errors, not asserts.
func Assert(condition bool, format string, a ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(format, a...))
	}
}
