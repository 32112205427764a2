// Package errdefer runs deferred operations that can fail,
// joining their errors into the error returned by the function.
//
// Each function here is meant to be used in a defer statement
// with a named error return.
package errdefer

import (
	"errors"
	"io"
)

// Close closes closer and joins its error into err.
func Close(err *error, closer io.Closer) {
	Do(err, closer.Close)
}

// Do runs fn and joins its error into err.
//
//	bw := bufio.NewWriter(w)
//	defer errdefer.Do(&err, bw.Flush)
func Do(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
