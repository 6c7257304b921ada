/* Package scan implements pull-based tokenization of byte streams.

A Scanner wraps a stream.Reader with one growable internal buffer and a
pluggable SplitFunc, exposing a simple advance/current-token loop:

	sc := scan.NewScanner(src)
	sc.Split(scan.ScanWords)
	for sc.Scan() {
		use(sc.Bytes())
	}
	if err := sc.Err(); err != nil {
		// source read error, split error, or over-long token
	}

Tokens are borrowed views into the internal buffer: a token returned by one
Scan call is only valid until the next, since the buffer may be shifted or
regrown between calls. Copy a token out to retain it.

A Scanner is single-owner and does no internal locking. Any terminal
condition is sticky: once the source errors, a split function errors, or a
token outgrows the configured maximum, every later Scan returns false
without consulting the source again.
*/
package scan

import (
	"errors"
	"io"

	"github.com/jcorbin/streamio/stream"
)

const (
	// MaxTokenSize is the default bound on buffer growth: a single token
	// exceeding it stops the scan with ErrTooLong rather than growing
	// without limit. Override with Buffer.
	MaxTokenSize = 64 * 1024

	// startBufSize is the initial allocation when no buffer was provided.
	startBufSize = 4096

	// maxEmptyReads bounds how many consecutive 0-byte nil-error reads the
	// source may return before the Scanner gives up on it.
	maxEmptyReads = 100
)

var (
	// ErrTooLong stops a scan whose next token cannot fit the configured
	// maximum buffer size.
	ErrTooLong = errors.New("scan: token too long")

	// ErrFinalIncomplete reports trailing bytes the split function never
	// resolved into a token before end of stream. Only surfaced under
	// StrictEnd; the default policy discards such a partial silently.
	ErrFinalIncomplete = errors.New("scan: stream ended with incomplete final token")

	// ErrNegativeAdvance, ErrAdvanceTooFar, and ErrNoProgress report a
	// SplitFunc that broke its contract; treat them as programming errors
	// in the supplied split function.
	ErrNegativeAdvance = errors.New("scan: split function returned negative advance")
	ErrAdvanceTooFar   = errors.New("scan: split function advanced beyond buffered data")
	ErrNoProgress      = errors.New("scan: split function returned token without advancing")

	// errStalledRead reports a source that keeps returning no data and no
	// error.
	errStalledRead = errors.New("scan: too many reads without data or error")
)

// Scanner reads tokens from a stream through a bounded, re-growable internal
// buffer. The zero value is not usable; construct with NewScanner.
type Scanner struct {
	src   stream.Reader
	split SplitFunc
	max   int

	buf        []byte
	start, end int // unconsumed bytes live in buf[start:end]

	token   []byte
	err     error
	sawEOF  bool // source signaled end of stream
	done    bool // terminal: no further tokens will be produced
	started bool // Scan has been called
	strict  bool // surface ErrFinalIncomplete instead of discarding
}

// NewScanner returns a Scanner pulling from src, splitting lines until Split
// is told otherwise.
func NewScanner(src stream.Reader) *Scanner {
	return &Scanner{
		src:   src,
		split: ScanLines,
		max:   MaxTokenSize,
	}
}

// Split sets the scanner's split function. Panics if scanning has started.
func (sc *Scanner) Split(split SplitFunc) {
	if sc.started {
		panic("scan: Split called after Scan")
	}
	sc.split = split
}

// Buffer sets an initial buffer and the maximum buffer size, and so the
// maximum token size. The scanner grows the buffer on demand up to max,
// or cap(buf) if that is larger. Panics if scanning has started.
func (sc *Scanner) Buffer(buf []byte, max int) {
	if sc.started {
		panic("scan: Buffer called after Scan")
	}
	sc.buf = buf[0:cap(buf)]
	sc.max = max
	if sc.max <= 0 {
		sc.max = MaxTokenSize
	}
	if sc.max < cap(buf) {
		sc.max = cap(buf)
	}
}

// StrictEnd sets the end-of-stream policy for a trailing partial token: when
// strict, bytes that the split function never resolved before end of stream
// surface as ErrFinalIncomplete; otherwise (the default) they are discarded
// silently. Panics if scanning has started.
func (sc *Scanner) StrictEnd(strict bool) {
	if sc.started {
		panic("scan: StrictEnd called after Scan")
	}
	sc.strict = strict
}

// Bytes returns the token produced by the last true-returning Scan. The
// returned slice aliases the internal buffer and is only valid until the
// next Scan call.
func (sc *Scanner) Bytes() []byte { return sc.token }

// Text returns the last token as a freshly allocated string.
func (sc *Scanner) Text() string { return string(sc.token) }

// Err returns the sticky error that stopped the scan, if any. A clean end
// of stream is not an error: Err returns nil after the source was fully
// drained and tokenized.
func (sc *Scanner) Err() error { return sc.err }

// Scan advances to the next token, reading from the source as needed,
// reporting whether one is available via Bytes. It returns false at end of
// stream or on any terminal error; afterwards every call returns false
// without consulting the source again.
func (sc *Scanner) Scan() bool {
	sc.started = true
	if sc.done {
		return false
	}

	emptyReads := 0
	for {
		// tokenize buffered data, once at EOF even if empty
		if sc.end > sc.start || sc.sawEOF {
			advance, token, err := sc.split(sc.buf[sc.start:sc.end], sc.sawEOF)
			if err != nil {
				sc.stop(err)
				return false
			}
			if advance < 0 {
				sc.stop(ErrNegativeAdvance)
				return false
			}
			if advance > sc.end-sc.start {
				sc.stop(ErrAdvanceTooFar)
				return false
			}
			if token != nil && advance == 0 && !sc.sawEOF {
				sc.stop(ErrNoProgress)
				return false
			}
			sc.start += advance

			if token != nil {
				sc.token = token
				if sc.sawEOF && advance == 0 {
					// a zero-advance token at EOF is by definition final
					sc.done = true
				}
				return true
			}

			if sc.sawEOF {
				// final split call already made with atEOF; any
				// unresolved remainder is a trailing partial token
				sc.done = true
				if sc.strict && sc.end > sc.start {
					sc.err = ErrFinalIncomplete
				}
				return false
			}

			if advance > 0 {
				continue
			}
		}

		// more data needed: compact, grow if already full, then read once

		if sc.start > 0 && (sc.end == len(sc.buf) || sc.start == sc.end) {
			copy(sc.buf, sc.buf[sc.start:sc.end])
			sc.end -= sc.start
			sc.start = 0
		}

		if sc.end == len(sc.buf) {
			if len(sc.buf) >= sc.max {
				// the buffer is at its limit with no token resolved; only
				// a source at EOF can still finish an exactly-max token
				if !sc.probeEOF() {
					return false
				}
				continue
			}
			size := len(sc.buf) * 2
			if size == 0 {
				size = startBufSize
			}
			if size > sc.max {
				size = sc.max
			}
			buf := make([]byte, size)
			sc.end = copy(buf, sc.buf[sc.start:sc.end])
			sc.start = 0
			sc.buf = buf
		}

		n, err := sc.src.Read(sc.buf[sc.end:])
		if n < 0 || n > len(sc.buf)-sc.end {
			sc.stop(errBadReadCount)
			return false
		}
		sc.end += n
		if err == io.EOF {
			sc.sawEOF = true
			continue
		}
		if err != nil {
			sc.stop(err)
			return false
		}
		if n == 0 {
			if emptyReads++; emptyReads >= maxEmptyReads {
				sc.stop(errStalledRead)
				return false
			}
			continue
		}
		emptyReads = 0
	}
}

var errBadReadCount = errors.New("scan: source returned impossible read count")

// probeEOF reads one byte into a side buffer to learn whether a source whose
// data already fills the maximum-sized buffer is exhausted. At EOF the split
// function gets its final atEOF call over the full buffer, so a token of
// exactly the maximum size still fits; any further byte proves the token
// exceeds the maximum, which stops the scan with ErrTooLong. Reports whether
// scanning may proceed.
func (sc *Scanner) probeEOF() bool {
	var p [1]byte
	for i := 0; i < maxEmptyReads; i++ {
		n, err := sc.src.Read(p[:])
		if n > 0 {
			// the probed byte is dropped, but the scan is terminal anyway
			sc.stop(ErrTooLong)
			return false
		}
		if err == io.EOF {
			sc.sawEOF = true
			return true
		}
		if err != nil {
			sc.stop(err)
			return false
		}
	}
	sc.stop(errStalledRead)
	return false
}

// stop makes the scanner terminal with the given sticky error.
func (sc *Scanner) stop(err error) {
	sc.done = true
	sc.err = err
	sc.token = nil
}
