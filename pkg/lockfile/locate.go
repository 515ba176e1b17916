package lockfile

import (
	"os"
	"path/filepath"

	"github.com/pindex-dev/pindex/pkg/errors"
)

// Locate walks upward from dir looking for recognized dependency files.
//
// At each directory level every recognized file name is checked; the first
// level with at least one match returns all matches found there, so files
// nearer to dir shadow files in ancestor directories. The walk examines the
// filesystem root before stopping.
//
// dir must be absolute; a relative path fails with
// [errors.ErrCodeInvalidInput] before any filesystem access. Finding
// nothing anywhere up the tree is not an error: the result is (nil, nil).
//
// Locate only reads the filesystem and repeated calls with the same
// arguments return the same result.
func Locate(dir string) ([]File, error) {
	if !filepath.IsAbs(dir) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "directory must be absolute: %q", dir)
	}

	dir = filepath.Clean(dir)
	for {
		var found []File
		for _, t := range Types() {
			path := filepath.Join(dir, t.FileName())
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				found = append(found, File{Type: t, Path: path})
			}
		}
		if len(found) > 0 {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root examined; nothing found.
			return nil, nil
		}
		dir = parent
	}
}
