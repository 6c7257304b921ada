package stream

import "os"

// The standard streams are pre-opened handles supplied by the hosting
// process environment, conventionally numbered 0/1/2. They are ordinary
// Readable/Writable streams with no special-cased behavior here.
//
// NOTE terminal-backed input may perform its own line-oriented buffering
// before bytes ever reach this layer; that is a quirk of the external
// system, not a guarantee of this one.

// Stdin returns the process standard input stream.
func Stdin() ReadCloser { return &File{f: os.Stdin, path: "stdin"} }

// Stdout returns the process standard output stream.
func Stdout() WriteCloser { return &File{f: os.Stdout, path: "stdout"} }

// Stderr returns the process standard error stream.
func Stderr() WriteCloser { return &File{f: os.Stderr, path: "stderr"} }
