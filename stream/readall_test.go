package stream_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/streamio/stream"
)

// chunkReader doles out source bytes at most chunk at a time.
type chunkReader struct {
	rest  string
	chunk int
}

func (cr *chunkReader) Read(p []byte) (int, error) {
	if len(cr.rest) == 0 {
		return 0, io.EOF
	}
	n := cr.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(cr.rest) {
		n = len(cr.rest)
	}
	copy(p, cr.rest[:n])
	cr.rest = cr.rest[n:]
	return n, nil
}

func TestReadAll_chunking(t *testing.T) {
	src := strings.Repeat("0123456789", 1000)
	for _, chunk := range []int{1, 7, 4096} {
		b, err := ReadAll(&chunkReader{rest: src, chunk: chunk})
		require.NoError(t, err, "chunk:%d", chunk)
		assert.Equal(t, src, string(b), "chunk:%d", chunk)
	}
}

func TestReadAll_empty(t *testing.T) {
	b, err := ReadAll(&chunkReader{})
	require.NoError(t, err)
	assert.Empty(t, b)
}

type errAfterReader struct {
	rest string
	err  error
}

func (er *errAfterReader) Read(p []byte) (int, error) {
	if len(er.rest) == 0 {
		return 0, er.err
	}
	n := copy(p, er.rest)
	er.rest = er.rest[n:]
	return n, nil
}

func TestReadAll_partialWithError(t *testing.T) {
	bad := errors.New("cable unplugged")
	b, err := ReadAll(&errAfterReader{rest: "partial content", err: bad})
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, "partial content", string(b),
		"accumulated bytes returned alongside the error")
}

func TestReadAll_finalPartialFill(t *testing.T) {
	// sources may return n>0 together with EOF
	b, err := ReadAll(&eofWithDataReader{data: "tail bytes"})
	require.NoError(t, err)
	assert.Equal(t, "tail bytes", string(b))
}

type eofWithDataReader struct {
	data string
	done bool
}

func (er *eofWithDataReader) Read(p []byte) (int, error) {
	if er.done {
		return 0, io.EOF
	}
	er.done = true
	return copy(p, er.data), io.EOF
}
