// Package config manages the argtypes CLI's own settings.
//
// Settings come from, in increasing precedence: built-in defaults, a YAML
// file (./config.yaml, then ~/.config/argtypes/config.yaml, or the file given
// with --config), and ARGTYPES_* environment variables.
//
//	version: 1
//	output_format: yaml     # json | yaml | toml, used by "argtypes load"
//	yaml_loader: safe       # safe (yaml.v3) | goccy (goccy/go-yaml)
//	max_file_size: 16777216 # bytes read by content loaders
//	log_format: text        # text | json
//
// [Validate] reports every invalid field at once so users can fix them in a
// single pass.
package config
