package argtypes

import (
	"slices"
)

// PathCheck names a path handler factory.
type PathCheck struct {
	// Name is a short identifier suitable for the command line.
	Name string

	// Description says what the handler accepts.
	Description string

	// New builds the handler.
	New func() Handler[Path]
}

var pathChecks = []PathCheck{
	{"file", "an existing regular file", ExistingFile},
	{"directory", "an existing directory", ExistingDirectory},
	{"mount", "an existing mount point", ExistingMount},
	{"fifo", "an existing FIFO", ExistingFifo},
	{"block-device", "an existing block device", ExistingBlockDevice},
	{"char-device", "an existing character device", ExistingCharDevice},
	{"socket", "an existing unix socket", ExistingSocket},
	{"symlink", "a symbolic link, dangling or not", ExistingSymlink},
	{"empty-dir", "a missing path or an empty directory", NonexistentOrEmptyDirectory},
}

// PathChecks returns every path handler in a stable order.
func PathChecks() []PathCheck {
	return slices.Clone(pathChecks)
}

// LookupPathCheck returns the path handler registered under name.
func LookupPathCheck(name string) (PathCheck, bool) {
	i := slices.IndexFunc(pathChecks, func(c PathCheck) bool { return c.Name == name })
	if i < 0 {
		return PathCheck{}, false
	}
	return pathChecks[i], true
}
