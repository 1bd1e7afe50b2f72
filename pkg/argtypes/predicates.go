package argtypes

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/cockroachdb/errors"
)

// Predicate tests a property of the filesystem entry at a path.
// A missing entry yields false with a nil error; any other stat failure is
// returned as an error.
type Predicate func(Path) (bool, error)

// Exists reports whether the path exists, following symbolic links.
// A dangling symlink does not exist.
func Exists(p Path) (bool, error) {
	_, err := os.Stat(string(p))
	return statResult(err)
}

// LExists reports whether the path exists without following a final
// symbolic link.
func LExists(p Path) (bool, error) {
	_, err := os.Lstat(string(p))
	return statResult(err)
}

// IsRegular reports whether the path is a regular file.
func IsRegular(p Path) (bool, error) {
	return modeMatches(p, os.Stat, func(m fs.FileMode) bool { return m.IsRegular() })
}

// IsDir reports whether the path is a directory.
func IsDir(p Path) (bool, error) {
	return modeMatches(p, os.Stat, fs.FileMode.IsDir)
}

// IsFifo reports whether the path is a named pipe.
func IsFifo(p Path) (bool, error) {
	return modeMatches(p, os.Stat, func(m fs.FileMode) bool { return m&fs.ModeNamedPipe != 0 })
}

// IsBlockDevice reports whether the path is a block device.
func IsBlockDevice(p Path) (bool, error) {
	return modeMatches(p, os.Stat, func(m fs.FileMode) bool {
		return m&fs.ModeDevice != 0 && m&fs.ModeCharDevice == 0
	})
}

// IsCharDevice reports whether the path is a character device.
func IsCharDevice(p Path) (bool, error) {
	return modeMatches(p, os.Stat, func(m fs.FileMode) bool { return m&fs.ModeCharDevice != 0 })
}

// IsSocket reports whether the path is a unix domain socket.
func IsSocket(p Path) (bool, error) {
	return modeMatches(p, os.Stat, func(m fs.FileMode) bool { return m&fs.ModeSocket != 0 })
}

// IsSymlink reports whether the path itself is a symbolic link.
func IsSymlink(p Path) (bool, error) {
	return modeMatches(p, os.Lstat, func(m fs.FileMode) bool { return m&fs.ModeSymlink != 0 })
}

func modeMatches(p Path, stat func(string) (fs.FileInfo, error), match func(fs.FileMode) bool) (bool, error) {
	info, err := stat(string(p))
	if err != nil {
		return statResult(err)
	}
	return match(info.Mode()), nil
}

// statResult maps a stat error onto the predicate contract. ENOTDIR and ELOOP
// mean the entry cannot exist at that path, so they count as missing.
func statResult(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ELOOP),
		errors.Is(err, syscall.ENAMETOOLONG):
		return false, nil
	default:
		return false, err
	}
}
