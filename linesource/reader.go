package linesource

import (
	"bufio"
	"bytes"
	"io"
)

// Reader reads newline-terminated lines from an io.Reader.
// Not safe for concurrent use.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator.
// io.EOF is returned only when no bytes remain.
func (r *Reader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return trimEOL(line), nil
		}
		return nil, err
	}
	return trimEOL(line), nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// Lines is an in-memory line source returning each entry once, then io.EOF.
type Lines struct {
	lines [][]byte
}

// NewLines creates a Lines source from text lines.
func NewLines(lines ...string) *Lines {
	l := &Lines{lines: make([][]byte, len(lines))}
	for i, line := range lines {
		l.lines[i] = []byte(line)
	}
	return l
}

// ReadLine returns the next entry, or io.EOF when exhausted.
func (l *Lines) ReadLine() ([]byte, error) {
	if len(l.lines) == 0 {
		return nil, io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

// Remaining reports how many entries have not been read.
func (l *Lines) Remaining() int {
	return len(l.lines)
}
