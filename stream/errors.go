package stream

import "fmt"

// ConfigError reports an invalid or ambiguous open mode or flag combination.
// It is always detected and returned before any OS call is attempted.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "stream config: " + e.Reason
	}
	return fmt.Sprintf("stream config %q: %s", e.Path, e.Reason)
}

// ResourceError reports a failure at the OS boundary: open, read, write, or
// close against the underlying resource. It carries the underlying cause,
// typically an *fs.PathError, so errors.Is(err, fs.ErrNotExist) and friends
// keep working through it.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("stream %s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ResourceError) Unwrap() error { return e.Err }

func resourceErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ResourceError{Op: op, Path: path, Err: err}
}
