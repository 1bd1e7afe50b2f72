package argtypes

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// NonexistentOrEmptyDirectory accepts a path that does not exist yet, or an
// existing directory with no entries. It is meant for output directories the
// caller will create or fill.
func NonexistentOrEmptyDirectory() Handler[Path] {
	return func(arg string) (Path, error) {
		p := NewPath(arg)

		ok, err := Exists(p)
		if err != nil {
			return "", accessError(p, err)
		}
		if !ok {
			return p, nil
		}

		ok, err = IsDir(p)
		if err != nil {
			return "", accessError(p, err)
		}
		if !ok {
			return "", newArgError(nil, `"%s" must be a directory.`, p)
		}

		empty, err := dirIsEmpty(p)
		if err != nil {
			return "", accessError(p, err)
		}
		if !empty {
			return "", newArgError(nil, `"%s" must be an empty directory.`, p)
		}

		return p, nil
	}
}

// dirIsEmpty reads at most one entry.
func dirIsEmpty(p Path) (bool, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return false, errors.Wrap(err, "opening directory")
	}
	defer f.Close()

	_, err = f.ReadDir(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "reading directory")
	}
	return false, nil
}
