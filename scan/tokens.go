package scan

// Tokens is the minimal pull interface a token source must satisfy: Scan
// advances to the next token and reports whether one is available through
// Bytes. Scanner is the canonical implementation; Copy and CopyWith consume
// any Tokens.
type Tokens interface {
	Scan() bool
	Bytes() []byte
}

// ErrTokens marks a token source that can explain why it stopped, whether a
// failed source read, a split fault, or an over-long token. A nil Err after
// Scan goes false means the stream simply ran out.
type ErrTokens interface {
	Tokens
	Err() error
}

// ScanError asks src why it stopped, when it can say. Sources without the
// ErrTokens extension are assumed to have ended cleanly.
func ScanError(src Tokens) (err error) {
	if esc, ok := src.(ErrTokens); ok {
		err = esc.Err()
	}
	return err
}

var _ ErrTokens = &Scanner{}
