// Package writer provides an output Sink that writes discovered
// patterns to a file, buffering a configurable number of lines before
// each flush rather than writing one line per pattern.
package writer

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"ffspm"
)

// DefaultBufferSize is the number of pattern lines buffered before a
// flush, matching the original miner's write-buffering width.
const DefaultBufferSize = 200

// PatternWriter is a ffspm.Sink that appends one line per pattern
// ("item1.R1 item2.R2 … itemK.RK : sumIUtil") to an underlying file,
// flushing every BufferSize lines and on Close.
type PatternWriter struct {
	mu         sync.Mutex
	file       *os.File
	buf        *bufio.Writer
	bufSize    int
	sinceFlush int
}

// New opens path for writing (truncating any existing content) and
// returns a PatternWriter that buffers bufSize lines before flushing.
// bufSize <= 0 uses DefaultBufferSize.
func New(path string, bufSize int) (*PatternWriter, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, ffspm.NewError(ffspm.InputUnavailable, "writer.New", err)
	}
	return &PatternWriter{
		file:    f,
		buf:     bufio.NewWriter(f),
		bufSize: bufSize,
	}, nil
}

// Emit implements ffspm.Sink.
func (w *PatternWriter) Emit(p ffspm.Pattern) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintln(w.buf, p.String())
	w.sinceFlush++
	if w.sinceFlush >= w.bufSize {
		w.buf.Flush()
		w.sinceFlush = 0
	}
}

// Close flushes any buffered lines and closes the underlying file.
func (w *PatternWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return ffspm.NewError(ffspm.InputUnavailable, "PatternWriter.Close", err)
	}
	return w.file.Close()
}
