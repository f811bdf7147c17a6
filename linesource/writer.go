package linesource

import (
	"bufio"
	"io"
)

type flusher interface {
	Flush() error
}

// Writer buffers output and pushes it to the underlying writer on Flush.
type Writer struct {
	dst io.Writer
	w   *bufio.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: w, w: bufio.NewWriter(w)}
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Flush writes buffered output. If the underlying writer can itself be flushed, it is flushed too.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	if f, ok := w.dst.(flusher); ok {
		return f.Flush()
	}
	return nil
}
