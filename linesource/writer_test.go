package linesource

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFlusher struct {
	bytes.Buffer
	flushes int
}

func (c *countingFlusher) Flush() error {
	c.flushes++
	return nil
}

func TestWriter_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write([]byte("Please input a value: "))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "output should be buffered before Flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, "Please input a value: ", buf.String())
}

func TestWriter_FlushesUnderlyingFlusher(t *testing.T) {
	dst := &countingFlusher{}
	w := NewWriter(dst)

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, "x", dst.String())
	assert.Equal(t, 1, dst.flushes)
}
