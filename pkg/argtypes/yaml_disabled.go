//go:build argtypes_noyaml

package argtypes

// YAMLAvailable reports whether YAML support is compiled in.
func YAMLAvailable() bool {
	return false
}
