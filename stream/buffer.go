package stream

import "io"

// Buffer is an in-memory stream: writes append to an internal byte arena,
// reads drain from a cursor over previously written bytes. The zero Buffer
// is ready to use.
//
// Like every other stream in this package it is single-owner; it does no
// internal locking.
type Buffer struct {
	buf []byte
	off int // read cursor within buf
}

// NewBuffer returns a buffer whose initial unread content is b.
// The buffer takes ownership of b.
func NewBuffer(b []byte) *Buffer { return &Buffer{buf: b} }

// NewBufferString returns a buffer whose initial unread content is s.
func NewBufferString(s string) *Buffer { return &Buffer{buf: []byte(s)} }

// Write appends p to the buffer contents. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffer contents. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Read fills p with unread bytes, advancing the read cursor.
// Returns io.EOF once all written bytes have been consumed.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= len(b.buf) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.off:])
	b.off += n
	return n, nil
}

// Bytes returns the unread portion of the buffer. The slice aliases internal
// storage and is only valid until the next Write.
func (b *Buffer) Bytes() []byte { return b.buf[b.off:] }

// Len reports how many bytes remain unread.
func (b *Buffer) Len() int { return len(b.buf) - b.off }

// Reset discards all content, retaining internal storage for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

var _ ReadWriter = &Buffer{}
