//go:build !unix

package argtypes

// IsMount always reports false on platforms without POSIX device numbers.
func IsMount(p Path) (bool, error) {
	if _, err := LExists(p); err != nil {
		return false, err
	}
	return false, nil
}
