package argtypes

import (
	"os"
	"path/filepath"
	"strings"
)

// Path is a normalized filesystem location.
type Path string

// NewPath converts a string or an existing Path into a normalized Path.
//
// Repeated separators, "." elements and trailing separators are dropped.
// ".." elements are kept as written: collapsing them by text would name a
// different entry when the preceding element is a symbolic link. An empty
// input yields ".".
func NewPath[S ~string](s S) Path {
	return Path(normalize(string(s)))
}

func normalize(s string) string {
	vol := filepath.VolumeName(s)
	rest := s[len(vol):]
	rooted := rest != "" && os.IsPathSeparator(rest[0])

	elems := strings.FieldsFunc(rest, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
	kept := elems[:0]
	for _, e := range elems {
		if e != "." {
			kept = append(kept, e)
		}
	}

	out := strings.Join(kept, string(filepath.Separator))
	if rooted {
		out = string(filepath.Separator) + out
	}
	out = vol + out
	if out == "" {
		return "."
	}
	return out
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Join appends path elements and returns the normalized result.
func (p Path) Join(elem ...string) Path {
	return NewPath(strings.Join(append([]string{string(p)}, elem...), string(filepath.Separator)))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Ext returns the file name extension, including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}
