package scan

import "github.com/jcorbin/streamio/stream"

// Copy scans all tokens from src, writing their bytes into the dst stream.
// Stops on first non-nil write error, returning the number of bytes written
// into dst and any error.
func Copy(dst stream.Writer, src Tokens) (n int64, err error) {
	for err == nil && src.Scan() {
		var m int
		m, err = dst.Write(src.Bytes())
		n += int64(m)
	}
	if err == nil {
		err = ScanError(src)
	}
	return n, err
}

// CopyWith scans all tokens from src, writing their bytes into the dst
// stream with sep bytes between every token. Does not write a final ending
// separator. Stops on first non-nil write error, returning the number of
// bytes written into dst and any error.
func CopyWith(dst stream.Writer, src Tokens, sep []byte) (n int64, err error) {
	first := true
	for err == nil && src.Scan() {
		var m int
		if first {
			first = false
		} else {
			m, err = dst.Write(sep)
			n += int64(m)
			if err != nil {
				break
			}
		}
		m, err = dst.Write(src.Bytes())
		n += int64(m)
	}
	if err == nil {
		err = ScanError(src)
	}
	return n, err
}
