package argtypes

import (
	"slices"
	"strings"
)

// Format describes a content loader.
type Format struct {
	// Name is the short format name, e.g. "json".
	Name string

	// Extensions lists the lower-case file extensions, dot included, that
	// ConfigFile maps to this format.
	Extensions []string

	// New builds the loader.
	New func(opts ...Option) Handler[any]
}

// formats is only appended to from init functions.
var formats []Format

func registerFormat(f Format) {
	formats = append(formats, f)
}

// Formats returns the loaders compiled into this build, sorted by name.
func Formats() []Format {
	out := slices.Clone(formats)
	slices.SortFunc(out, func(a, b Format) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// LookupFormat returns the loader registered under name.
func LookupFormat(name string) (Format, bool) {
	name = strings.ToLower(name)
	for _, f := range formats {
		if f.Name == name {
			return f, true
		}
	}
	return Format{}, false
}

func formatForExt(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	for _, f := range formats {
		if slices.Contains(f.Extensions, ext) {
			return f, true
		}
	}
	return Format{}, false
}

// ConfigFile returns a handler that loads a file with the loader matching its
// extension. Extensions are matched case-insensitively.
func ConfigFile(opts ...Option) Handler[any] {
	check := ExistingFile()

	handlers := make(map[string]Handler[any], len(formats))
	for _, f := range formats {
		handlers[f.Name] = f.New(opts...)
	}

	return func(arg string) (any, error) {
		p, err := check(arg)
		if err != nil {
			return nil, err
		}

		f, ok := formatForExt(p.Ext())
		if !ok {
			return nil, newArgError(nil, `unsupported config file format "%s" for "%s"`, p.Ext(), p)
		}
		return handlers[f.Name](string(p))
	}
}
