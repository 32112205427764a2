// Package iotest provides io helpers for tests.
package iotest

import (
	"io"
	"testing"

	"go.abhg.dev/fielddoc/internal/linebuf"
)

// Writer builds an io.Writer that logs each line written to it
// to the given testing.TB.
//
// Partial lines are flushed when the test finishes.
func Writer(t testing.TB) io.Writer {
	w := linebuf.NewWriter(func(line []byte) {
		t.Logf("%s", line)
	})
	t.Cleanup(w.Flush)
	return w
}
