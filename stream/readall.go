package stream

import "io"

// readAllMinGrow is the initial capacity ReadAll allocates; growth from there
// is geometric, keeping total cost linear in the number of bytes read.
const readAllMinGrow = 512

// ReadAll pulls from r until end of stream, returning everything read.
//
// End of stream is success, not an error: a nil error means the stream was
// fully drained. Any other read error aborts and is returned together with
// the bytes accumulated so far; both may be non-empty.
func ReadAll(r Reader) ([]byte, error) {
	buf := make([]byte, 0, readAllMinGrow)
	for {
		if len(buf) == cap(buf) {
			// grow by appending past length, then reslice back
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
	}
}
