/* Package stream defines small byte stream capability contracts, along with
concrete implementations backed by files and in-memory buffers.

The contracts are structurally identical to their io package counterparts, so
that any io.Reader, net.Conn, or similar may be passed where a stream.Reader
is wanted. The point of naming them here is that streamio constructors always
hand back a concrete implementation chosen at construction time (a *File, a
*Buffer), rather than asking callers to discover capabilities after the fact.

Every stream handle is single-owner: concurrent calls on one handle without
external synchronization are undefined. Read and Write may block on the
underlying resource; this layer provides no timeout or cancellation of its
own, any deadline must be applied to the underlying resource itself.

The owner that opens a stream must close it exactly once, on every exit path;
no implicit finalization is guaranteed.
*/
package stream

import "io"

// Reader is the readable stream capability: Read fills at most len(p) bytes
// into p, returning how many were actually filled. Partial reads are legal
// and expected, not an error.
//
// End of stream is signaled by io.EOF, either as (0, io.EOF) or along with a
// final partial fill as (n > 0, io.EOF); callers must handle both. Any other
// error is terminal for the stream and must be surfaced, not retried here.
type Reader interface {
	Read(p []byte) (n int, err error)
}

// Writer is the writable stream capability: Write consumes and durably hands
// off exactly n <= len(p) bytes. A short write without an accompanying error
// is a contract violation; callers should detect it (see sioutil.WriteFull)
// and either retry with the remainder or treat it as a fault.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Closer releases a stream's underlying resource. It is the opener's
// responsibility to call it exactly once per handle.
type Closer interface {
	Close() error
}

// ReadWriter combines the Reader and Writer capabilities.
type ReadWriter interface {
	Reader
	Writer
}

// ReadCloser combines the Reader and Closer capabilities.
type ReadCloser interface {
	Reader
	Closer
}

// WriteCloser combines the Writer and Closer capabilities.
type WriteCloser interface {
	Writer
	Closer
}

// ReadWriteCloser combines all three stream capabilities.
type ReadWriteCloser interface {
	Reader
	Writer
	Closer
}

var (
	_ Reader = io.Reader(nil)
	_ Writer = io.Writer(nil)
)
