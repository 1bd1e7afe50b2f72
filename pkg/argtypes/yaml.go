//go:build !argtypes_noyaml

package argtypes

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	goyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

func init() {
	registerFormat(Format{
		Name:       "yaml",
		Extensions: []string{".yaml", ".yml"},
		New:        YAMLFile,
	})
}

// YAMLAvailable reports whether YAML support is compiled in.
func YAMLAvailable() bool {
	return true
}

// SafeYAMLLoader decodes a single YAML document with gopkg.in/yaml.v3.
// Only plain data is produced; no tags can construct arbitrary types.
// A stream with more than one document is rejected.
func SafeYAMLLoader() Decoder {
	return DecoderFunc(func(data []byte) (any, error) {
		dec := yaml.NewDecoder(bytes.NewReader(data))

		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}

		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err != nil {
				return nil, err
			}
			return nil, errors.New("expected a single document in the stream")
		}
		return v, nil
	})
}

// GoccyYAMLLoader decodes with github.com/goccy/go-yaml, passing opts through
// to the decoder (for example goyaml.DisallowDuplicateKey()).
func GoccyYAMLLoader(opts ...goyaml.DecodeOption) Decoder {
	return DecoderFunc(func(data []byte) (any, error) {
		var v any
		if err := goyaml.UnmarshalWithOptions(data, &v, opts...); err != nil {
			return nil, err
		}
		return v, nil
	})
}

// WithYAMLLoader replaces the decoder used by YAMLFile. A nil decoder keeps
// SafeYAMLLoader.
func WithYAMLLoader(d Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.yamlDecoder = d
		}
	}
}

// YAMLFile returns a handler that loads an existing regular file as YAML.
// Parse failures read `unable to load YAML file "<path>": <cause>`.
func YAMLFile(opts ...Option) Handler[any] {
	o := newOptions(opts)
	dec := o.yamlDecoder
	if dec == nil {
		dec = SafeYAMLLoader()
	}

	return loadFile("yaml", o, func(p Path, data []byte) (any, error) {
		v, err := dec.Decode(data)
		if err != nil {
			return nil, newArgError(err, `unable to load YAML file "%s": %s`, p, err)
		}
		return v, nil
	})
}
