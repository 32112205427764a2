// Package must asserts program invariants.
// A violated invariant is a bug in the program, so it panics.
package must

import "fmt"

// NotErrorf panics if err is non-nil.
// The message describes the operation that was not expected to fail.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("%v: unexpected error: %v", fmt.Sprintf(format, args...), err))
	}
}
