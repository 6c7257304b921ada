package scan

import (
	"errors"
	"unicode/utf8"
)

// SplitFunc decides token boundaries over currently buffered stream data.
//
// data is the unconsumed buffer contents; atEOF reports that no more bytes
// will ever arrive. The returned advance is how many prefix bytes of data
// the Scanner must discard before the next call; token, if non-nil, is the
// next token, and may be a window into data, only valid until the next call.
//
// A SplitFunc must be pure and stateless over its arguments, and must
// satisfy: advance >= 0 and advance <= len(data); a non-nil token returned
// with zero advance is only legal when atEOF, and ends the scan after that
// final token. When no boundary can be determined yet and !atEOF, request
// more data by returning (0, nil, nil).
//
// Returning a non-nil error halts the scan; the error is sticky on the
// Scanner.
type SplitFunc func(data []byte, atEOF bool) (advance int, token []byte, err error)

// ErrMalformedRune is returned by ScanRunes when the stream contains an
// invalid UTF-8 encoding.
var ErrMalformedRune = errors.New("scan: malformed UTF-8 encoding")

// dropCR strips one trailing carriage return from data, if present.
func dropCR(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\r' {
		return data[:n-1]
	}
	return data
}

// ScanLines is a SplitFunc tokenizing lines: each token ends at the first
// "\n", with a preceding "\r" stripped if present; neither terminator byte
// appears in the token. At final EOF any remaining bytes with no trailing
// newline form one last token.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, c := range data {
		if c == '\n' {
			return i + 1, dropCR(data[:i]), nil
		}
	}
	if atEOF {
		return len(data), dropCR(data), nil
	}
	return 0, nil, nil
}

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ScanWords is a SplitFunc tokenizing space-separated words: leading
// whitespace is skipped, and each token is a maximal run of non-whitespace
// bytes. Runs of repeated whitespace never produce empty tokens.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for ; start < len(data); start++ {
		if !isSpace(data[start]) {
			break
		}
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// request more data, consuming any whitespace scanned so far
	return start, nil, nil
}

// ScanBytes is a SplitFunc tokenizing individual bytes.
func ScanBytes(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	return 1, data[:1], nil
}

// ScanRunes is a SplitFunc tokenizing individual UTF-8 encoded characters:
// each token is the complete multi-byte encoding of one rune. A malformed
// encoding halts the scan with ErrMalformedRune rather than silently
// advancing past it.
func ScanRunes(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	// fast path for ASCII
	if data[0] < utf8.RuneSelf {
		return 1, data[:1], nil
	}

	r, n := utf8.DecodeRune(data)
	if r != utf8.RuneError {
		return n, data[:n], nil
	}
	if !atEOF && !utf8.FullRune(data) {
		// may yet complete with more input
		return 0, nil, nil
	}
	return 0, nil, ErrMalformedRune
}
