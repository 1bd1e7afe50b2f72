package argtypes

import (
	"github.com/pelletier/go-toml/v2"
)

func init() {
	registerFormat(Format{
		Name:       "toml",
		Extensions: []string{".toml"},
		New:        TOMLFile,
	})
}

// TOMLFile returns a handler that loads an existing regular file as TOML.
// Tables decode to map[string]any.
func TOMLFile(opts ...Option) Handler[any] {
	o := newOptions(opts)

	return loadFile("toml", o, func(p Path, data []byte) (any, error) {
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, newArgError(err, `unable to load TOML file "%s": %s`, p, err)
		}
		if v == nil {
			v = map[string]any{}
		}
		return v, nil
	})
}
