//go:build unix

package argtypes

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// IsMount reports whether the path is a mount point: it is not a symbolic
// link, and it either lives on a different device than its parent or shares
// its parent's inode (the filesystem root).
func IsMount(p Path) (bool, error) {
	var st unix.Stat_t
	if err := unix.Lstat(string(p), &st); err != nil {
		return statResult(err)
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false, nil
	}

	// Resolve ".." physically so a symlinked ancestor doesn't fool the check.
	var parent unix.Stat_t
	if err := unix.Lstat(string(p)+"/..", &parent); err != nil {
		if ok, err := statResult(err); err != nil {
			return ok, errors.Wrapf(err, "stat parent of %s", p)
		}
		return false, nil
	}

	if st.Dev != parent.Dev {
		return true, nil
	}
	return st.Ino == parent.Ino, nil
}
