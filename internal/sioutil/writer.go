// Package sioutil provides write-side stream helpers shared by streamio
// commands and tests.
package sioutil

import (
	"bytes"
	"io"

	"github.com/jcorbin/streamio/stream"
)

// WriteFull writes all of p into w, enforcing the writable stream contract:
// a short write without an accompanying error is reported as
// io.ErrShortWrite rather than silently accepted.
func WriteFull(w stream.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// ErrWriter wraps a writer, tracking its last error, and preventing future
// writes after a non-nil. It is the write-side mirror of a scanner's sticky
// error state.
type ErrWriter struct {
	stream.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// WriteBuffer combines a byte buffer with a destination stream and a flush
// policy. Example use:
//
//	var buf WriteBuffer
//	buf.To = stream.Stdout()
//	for thing := range things {
//		fmt.Fprint(&buf, thing)
//		buf.MaybeFlush() // TODO errcheck
//	}
//	buf.Flush() // TODO errcheck
type WriteBuffer struct {
	FlushPolicy
	To stream.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible anonymous function.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function pointer.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a chunk as
// possible, through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// Flush writes all of the receiver buffer contents, regardless of the
// FlushPolicy. Should be called after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes N bytes into To if FlushPolicy returns N > 0.
// The bytes written are then discarded from the receiver buffer.
// If FlushPolicy is nil, it defaults to FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// Prefixer is a writer that prepends a prefix string before every line
// written through it. The caller SHOULD close it to flush any partial final
// line.
type Prefixer struct {
	buf WriteBuffer

	// Prefix is prepended to every line; it may be changed between writes.
	Prefix string

	// Skip suppresses the prefix before the next written line.
	Skip bool
}

// PrefixWriter returns a Prefixer around the given prefix and destination.
func PrefixWriter(prefix string, w stream.Writer) *Prefixer {
	p := &Prefixer{Prefix: prefix}
	p.buf.To = w
	return p
}

// Close flushes any remaining buffered bytes.
func (p *Prefixer) Close() error { return p.buf.Flush() }

// Flush flushes any remaining buffered bytes.
func (p *Prefixer) Flush() error { return p.buf.Flush() }

// Write buffers p, prepending Prefix after every newline, flushing complete
// lines through to the destination.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if i := p.buf.Len() - 1; i < 0 || p.buf.Bytes()[i] == '\n' {
			if p.Skip {
				p.Skip = false
			} else {
				p.buf.WriteString(p.Prefix)
			}
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.buf.MaybeFlush()
}
