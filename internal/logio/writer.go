// Package logio bridges line-oriented log output and printf-style functions.
package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer that forwards each completed line to Logf,
// and remembers every line it has forwarded. Either may be used alone: a nil
// Logf only records.
type Writer struct {
	Logf func(string, ...interface{})

	mu    sync.Mutex
	buf   bytes.Buffer
	lines []string
}

// Write buffers p and flushes any completed lines. It is safe to call from
// multiple goroutines and never fails.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync flushes any trailing partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

// Lines returns a copy of every line flushed so far, without newlines.
func (lw *Writer) Lines() []string {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return append([]string(nil), lw.lines...)
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		var line []byte
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			line = lw.buf.Next(i)
			lw.buf.Next(1)
		} else if all {
			line = lw.buf.Next(lw.buf.Len())
		} else {
			break
		}
		lw.lines = append(lw.lines, string(line))
		if lw.Logf != nil {
			lw.Logf("%s", line)
		}
	}
}
