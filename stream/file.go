package stream

import (
	"io"
	"io/fs"
	"os"
)

// Mode selects file stream access: exactly one of ReadOnly, WriteOnly, or
// ReadWrite must be given to OpenFile.
type Mode int

// Access modes. The zero Mode is invalid, forcing callers to choose.
const (
	ReadOnly Mode = iota + 1
	WriteOnly
	ReadWrite
)

func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	}
	return "invalid"
}

// Flag is a set of independent open modifiers, combinable with bitwise or.
type Flag int

const (
	// CreateIfMissing makes OpenFile create the file if it does not exist,
	// using the given permissions.
	CreateIfMissing Flag = 1 << iota

	// CreateExclusive makes creation mandatory: open fails if the file
	// already exists. Only meaningful combined with CreateIfMissing.
	CreateExclusive

	// Truncate empties an existing file on open.
	Truncate

	// Append atomically relocates every write to the current end of the
	// file, regardless of stream position, even under concurrent writers
	// from independent processes. This is delegated to the platform's
	// O_APPEND primitive, never emulated with separate seek+write calls.
	Append

	// SyncDurable requires every write to reach stable storage before
	// returning (O_SYNC).
	SyncDurable

	flagMask = CreateIfMissing | CreateExclusive | Truncate | Append | SyncDurable
)

// File is a stream backed by a named on-disk resource. It implements Reader,
// Writer, and Closer; which of Read and Write are usable is governed by the
// Mode it was opened under.
type File struct {
	f    *os.File
	path string
}

// OpenFile opens the named file under the given access mode and modifier
// flags. perm only applies when a new file is created, and is otherwise
// ignored.
//
// Mode and flag validation happens before any OS call: an unspecified or
// ambiguous mode, an unknown flag bit, or CreateExclusive without
// CreateIfMissing all return a *ConfigError. Failures from the OS itself
// (permission denied, not found without CreateIfMissing, already exists
// under CreateExclusive, ...) return a *ResourceError wrapping the
// underlying cause.
func OpenFile(path string, mode Mode, flags Flag, perm os.FileMode) (*File, error) {
	sysflag, err := sysFlags(path, mode, flags)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, sysflag, perm)
	if err != nil {
		return nil, resourceErr("open", path, err)
	}
	return &File{f: f, path: path}, nil
}

func sysFlags(path string, mode Mode, flags Flag) (int, error) {
	var sysflag int
	switch mode {
	case ReadOnly:
		sysflag = os.O_RDONLY
	case WriteOnly:
		sysflag = os.O_WRONLY
	case ReadWrite:
		sysflag = os.O_RDWR
	case 0:
		return 0, &ConfigError{Path: path, Reason: "no access mode specified"}
	default:
		return 0, &ConfigError{Path: path, Reason: "invalid access mode"}
	}

	if flags&^flagMask != 0 {
		return 0, &ConfigError{Path: path, Reason: "unknown flag bits"}
	}
	if flags&CreateExclusive != 0 && flags&CreateIfMissing == 0 {
		return 0, &ConfigError{Path: path, Reason: "create-exclusive requires create"}
	}

	if flags&CreateIfMissing != 0 {
		sysflag |= os.O_CREATE
	}
	if flags&CreateExclusive != 0 {
		sysflag |= os.O_EXCL
	}
	if flags&Truncate != 0 {
		sysflag |= os.O_TRUNC
	}
	if flags&Append != 0 {
		sysflag |= os.O_APPEND
	}
	if flags&SyncDurable != 0 {
		sysflag |= os.O_SYNC
	}
	return sysflag, nil
}

// Open opens the named file for reading, with no modifier flags.
func Open(path string) (*File, error) {
	return OpenFile(path, ReadOnly, 0, 0)
}

// Create opens the named file for reading and writing, creating it if
// necessary and truncating any prior content.
func Create(path string) (*File, error) {
	return OpenFile(path, ReadWrite, CreateIfMissing|Truncate, 0666)
}

// Read fills p from the file at the stream's current position.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	if err != nil && err != io.EOF {
		err = resourceErr("read", f.path, err)
	}
	return n, err
}

// Write consumes p into the file, at the current position, or at end of file
// when opened with Append.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.f.Write(p)
	return n, resourceErr("write", f.path, err)
}

// Close releases the file handle. The opener must call it exactly once.
func (f *File) Close() error {
	return resourceErr("close", f.path, f.f.Close())
}

// Name returns the path the file was opened under.
func (f *File) Name() string { return f.path }

// Stat reports metadata for the open file.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.f.Stat()
	return info, resourceErr("stat", f.path, err)
}

var _ ReadWriteCloser = &File{}
