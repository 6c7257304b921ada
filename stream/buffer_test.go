package stream_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/streamio/stream"
)

func TestBuffer(t *testing.T) {
	var b Buffer

	n, err := b.WriteString("hello ")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, err = b.Write([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 11, b.Len())

	var p [5]byte
	n, err = b.Read(p[:])
	require.NoError(t, err)
	assert.Equal(t, "hello", string(p[:n]))
	assert.Equal(t, 6, b.Len())

	rest, err := ReadAll(&b)
	require.NoError(t, err)
	assert.Equal(t, " world", string(rest))

	_, err = b.Read(p[:])
	assert.Equal(t, io.EOF, err)

	// writing after drain revives the stream
	_, err = b.WriteString("more")
	require.NoError(t, err)
	n, err = b.Read(p[:])
	require.NoError(t, err)
	assert.Equal(t, "more", string(p[:n]))
}

func TestBuffer_reset(t *testing.T) {
	b := NewBufferString("content")
	_, err := ReadAll(b)
	require.NoError(t, err)
	b.Reset()
	assert.Zero(t, b.Len())
	_, err = b.WriteString("fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(b.Bytes()))
}

func TestBuffer_emptyRead(t *testing.T) {
	var b Buffer
	n, err := b.Read(nil)
	assert.Zero(t, n)
	assert.NoError(t, err, "zero-length read reports nothing either way")
	var p [1]byte
	_, err = b.Read(p[:])
	assert.Equal(t, io.EOF, err)
}
