package stream

import (
	"os"

	"github.com/google/renameio"
)

// Replace atomically rewrites the named file to contain exactly data: the
// bytes land in a temp file first, which then renames over path, so readers
// observe either the old content or the new, never a torn mix. perm applies
// to the replacement file.
//
// This is the whole-file counterpart to Append's cross-process write
// guarantee: use Append to interleave records, Replace to swap content.
func Replace(path string, data []byte, perm os.FileMode) error {
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return resourceErr("replace", path, err)
	}
	return nil
}
