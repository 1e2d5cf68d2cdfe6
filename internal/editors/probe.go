package editors

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// pathExists reports whether an entry exists at path. A missing entry yields
// (false, nil); any other stat failure is returned to the caller.
func pathExists(fsys afero.Fs, path string) (bool, error) {
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
