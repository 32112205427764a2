// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that calls a function
// once for each complete line written to it.
// Lines are delivered without their trailing newline.
//
// Text after the last newline is held until more input arrives
// or Flush is called.
// Writer is safe for concurrent use.
type Writer struct {
	writeLine func([]byte)

	mu   sync.Mutex
	buff bytes.Buffer // partial line from a prior write
}

// NewWriter builds a Writer that sends lines to fn.
func NewWriter(fn func(line []byte)) *Writer {
	return &Writer{writeLine: fn}
}

// Write splits bs on newlines and delivers all complete lines.
// It always consumes all of bs.
func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx], bs[idx+1:]
		if w.buff.Len() == 0 {
			w.writeLine(line)
			continue
		}

		w.buff.Write(line)
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return total, nil
}

// Flush delivers any buffered partial line.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
}
