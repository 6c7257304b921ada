package stream_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/streamio/stream"
)

func TestOpenFile_configErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untouched")
	for _, tc := range []struct {
		name   string
		mode   Mode
		flags  Flag
		reason string
	}{
		{"no mode", 0, 0, "no access mode specified"},
		{"bogus mode", Mode(42), 0, "invalid access mode"},
		{"exclusive without create", WriteOnly, CreateExclusive, "create-exclusive requires create"},
		{"unknown flag bits", ReadWrite, Flag(1 << 30), "unknown flag bits"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OpenFile(path, tc.mode, tc.flags, 0666)
			var cfg *ConfigError
			require.ErrorAs(t, err, &cfg)
			assert.Equal(t, tc.reason, cfg.Reason)
		})
	}

	// config validation must precede any OS attempt
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "no file should have been created")
}

func TestOpenFile_resourceErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("not found without create", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "missing"))
		var res *ResourceError
		require.ErrorAs(t, err, &res)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("create exclusive on existing", func(t *testing.T) {
		path := filepath.Join(dir, "already")
		f, err := Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = OpenFile(path, WriteOnly, CreateIfMissing|CreateExclusive, 0666)
		assert.ErrorIs(t, err, fs.ErrExist)
	})
}

func TestFile_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	f, err := Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("first line\nsecond line\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, r.Close()) }()

	b, err := ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\n", string(b))
}

func TestFile_createIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh")

	f, err := OpenFile(path, WriteOnly, CreateIfMissing, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("born"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// reopening with the flag must not disturb existing content
	f, err = OpenFile(path, ReadOnly, CreateIfMissing, 0644)
	require.NoError(t, err)
	b, err := ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "born", string(b))
}

func TestFile_truncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc")

	f, err := Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("a much longer original content"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenFile(path, WriteOnly, Truncate, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte("short"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(b))
}

func TestFile_appendInterleaving(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applog")
	f, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// two independent handles, both in append mode
	a, err := OpenFile(path, WriteOnly, Append, 0)
	require.NoError(t, err)
	b, err := OpenFile(path, WriteOnly, Append, 0)
	require.NoError(t, err)

	_, err = a.Write([]byte("A"))
	require.NoError(t, err)
	_, err = b.Write([]byte("B"))
	require.NoError(t, err)
	_, err = a.Write([]byte("A"))
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, b.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ABA", string(got),
		"appends relocate to end of file regardless of handle position")
}

func TestFile_syncDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable")
	f, err := OpenFile(path, WriteOnly, CreateIfMissing|SyncDurable, 0666)
	require.NoError(t, err)
	_, err = f.Write([]byte("fsynced"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fsynced", string(got))
}

func TestReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap")
	require.NoError(t, Replace(path, []byte("v1"), 0644))
	require.NoError(t, Replace(path, []byte("version two"), 0644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version two", string(got))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "read-only", ReadOnly.String())
	assert.Equal(t, "write-only", WriteOnly.String())
	assert.Equal(t, "read-write", ReadWrite.String())
	assert.Equal(t, "invalid", Mode(0).String())
}
